package telegram

import (
	"errors"
	"fmt"

	tb "gopkg.in/telebot.v3"
)

// ErrRecipientGone marks a structurally unreachable recipient: the chat
// blocked the bot, was removed or deactivated, or cannot receive messages at
// all. The worker reacts by unsubscribing the chat.
var ErrRecipientGone = errors.New("recipient gone")

// MigratedError reports that the recipient's chat id changed (group upgraded
// to a supergroup). The worker moves the subscriber to the new id; the
// current notification is retried against it on the next cycle.
type MigratedError struct {
	To int64
}

func (e MigratedError) Error() string {
	return fmt.Sprintf("chat migrated to %d", e.To)
}

// Telebot errors that mean the recipient is gone for good.
var permanentSendErrors = []*tb.Error{
	tb.ErrBlockedByUser,
	tb.ErrKickedFromGroup,
	tb.ErrKickedFromSuperGroup,
	tb.ErrKickedFromChannel,
	tb.ErrUserIsDeactivated,
	tb.ErrNotStartedByUser,
	tb.ErrChatNotFound,
}

// classifySendError translates telebot's native errors into the closed
// taxonomy the worker consumes. Telebot types never leak past this point:
// anything not permanent or a migration is transient by definition
// (rate limiting, network, Telegram hiccups).
func classifySendError(err error) error {
	if err == nil {
		return nil
	}

	var migrated tb.GroupError
	if errors.As(err, &migrated) {
		return MigratedError{To: migrated.MigratedTo}
	}

	for _, perm := range permanentSendErrors {
		if errors.Is(err, perm) {
			return fmt.Errorf("%w: %w", ErrRecipientGone, err)
		}
	}

	return err
}

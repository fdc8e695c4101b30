package telegram

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tb "gopkg.in/telebot.v3"
)

func TestClassifySendError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, classifySendError(nil))
	})

	t.Run("permanent", func(t *testing.T) {
		for _, err := range []error{
			tb.ErrBlockedByUser,
			tb.ErrKickedFromGroup,
			tb.ErrKickedFromSuperGroup,
			tb.ErrKickedFromChannel,
			tb.ErrUserIsDeactivated,
			tb.ErrNotStartedByUser,
			tb.ErrChatNotFound,
		} {
			classified := classifySendError(err)
			assert.ErrorIs(t, classified, ErrRecipientGone, "expected %v to classify as permanent", err)
		}
	})

	t.Run("migrated", func(t *testing.T) {
		classified := classifySendError(tb.GroupError{MigratedTo: -100123})

		var migrated MigratedError
		require.ErrorAs(t, classified, &migrated)
		assert.Equal(t, int64(-100123), migrated.To)
	})

	t.Run("transient_passes_through", func(t *testing.T) {
		err := fmt.Errorf("api error: %w", errors.New("gateway timeout"))

		classified := classifySendError(err)
		assert.Equal(t, err, classified)
		assert.NotErrorIs(t, classified, ErrRecipientGone)
	})

	t.Run("other_api_error_is_transient", func(t *testing.T) {
		classified := classifySendError(tb.ErrTooLarge)
		assert.NotErrorIs(t, classified, ErrRecipientGone)

		var migrated MigratedError
		assert.False(t, errors.As(classified, &migrated))
	})
}

package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tb "gopkg.in/telebot.v3"
)

// Launches within this window are sent right after a fresh subscription, so
// new subscribers are not left waiting for the next threshold crossing.
const subscribeNotifyWindow = 48 * time.Hour

const (
	msgSubscribed    = "Subscribed, standby for notifications!"
	msgUnsubscribed  = "Unsubscribed"
	msgNoLaunches    = "No upcoming launches known yet, check back later."
	msgErrSubscribe  = "Error subscribing, please try again later."
	msgErrGeneric    = "Something went wrong, please try again later."
	msgErrUnsubcribe = "Error unsubscribing, please try again later."
)

const helpText = `Commands:
/id - current chat id
/start - subscribe to launch notifications
/stop - unsubscribe from launch notifications
/launches - show launches
/next - show next launch
/help - help`

const adminHelpText = `Admin commands:
/subscribers_count - subscribers count`

type Subscriptions interface {
	Subscribe(chatID int64) error
	Unsubscribe(chatID int64) error
	Count() (int, error)
}

// LaunchMessages provides pre-rendered MarkdownV2 launch notifications for
// the command handlers; within <= 0 means no window restriction.
type LaunchMessages interface {
	Upcoming(within time.Duration) ([]string, error)
	Next() (string, bool, error)
}

type Bot struct {
	bot *tb.Bot

	subscriptions Subscriptions
	launches      LaunchMessages
	adminChats    map[int64]struct{}

	log *slog.Logger
}

func NewBot(token string, adminChats []int64, log *slog.Logger) (*Bot, error) {
	bot, err := tb.NewBot(tb.Settings{
		Token:  token,
		Poller: &tb.LongPoller{Timeout: 5 * time.Second}, //nolint:mnd
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	admins := make(map[int64]struct{}, len(adminChats))
	for _, id := range adminChats {
		admins[id] = struct{}{}
	}

	return &Bot{
		bot: bot,

		adminChats: admins,

		log: log.With("component", "bot"),
	}, nil
}

// Sender builds the outbound delivery capability over the same underlying
// bot connection.
func (b *Bot) Sender(log *slog.Logger) *Sender {
	return NewSender(b.bot, log)
}

// Start registers the command handlers and blocks polling until cancellation.
// Collaborators come in here rather than NewBot because the outbound Sender,
// which the launch services depend on, shares the bot connection.
func (b *Bot) Start(ctx context.Context, subscriptions Subscriptions, launches LaunchMessages) error {
	b.subscriptions = subscriptions
	b.launches = launches

	b.bot.Handle("/id", b.IDHandler)
	b.bot.Handle("/start", b.SubscribeHandler)
	b.bot.Handle("/stop", b.UnsubscribeHandler)
	b.bot.Handle("/launches", b.LaunchesHandler)
	b.bot.Handle("/next", b.NextHandler)
	b.bot.Handle("/help", b.HelpHandler)
	b.bot.Handle("/subscribers_count", b.SubscribersCountHandler)

	go func() {
		<-ctx.Done()
		b.log.Info("Stopping bot")
		b.bot.Stop()
	}()

	b.bot.Start()

	return nil
}

func (b *Bot) IDHandler(c tb.Context) error {
	return c.Reply(fmt.Sprintf("`%d`", c.Chat().ID), tb.ModeMarkdownV2)
}

func (b *Bot) SubscribeHandler(c tb.Context) error {
	chatID := c.Chat().ID

	if err := b.subscriptions.Subscribe(chatID); err != nil {
		b.log.Error("failed to subscribe", "chatID", chatID, "error", err)
		return c.Reply(msgErrSubscribe)
	}
	b.log.Info("subscribed", "chatID", chatID)

	if err := c.Reply(msgSubscribed); err != nil {
		return err
	}

	// show what is coming up soon so the subscription feels immediate
	messages, err := b.launches.Upcoming(subscribeNotifyWindow)
	if err != nil {
		b.log.Error("failed to render upcoming launches", "chatID", chatID, "error", err)
		return nil
	}
	for _, msg := range messages {
		if err := c.Send(msg, tb.ModeMarkdownV2, tb.NoPreview); err != nil {
			b.log.Warn("failed to send upcoming launch", "chatID", chatID, "error", err)
		}
	}
	return nil
}

func (b *Bot) UnsubscribeHandler(c tb.Context) error {
	chatID := c.Chat().ID

	if err := b.subscriptions.Unsubscribe(chatID); err != nil {
		b.log.Error("failed to unsubscribe", "chatID", chatID, "error", err)
		return c.Reply(msgErrUnsubcribe)
	}

	b.log.Info("unsubscribed", "chatID", chatID)
	return c.Reply(msgUnsubscribed)
}

func (b *Bot) LaunchesHandler(c tb.Context) error {
	messages, err := b.launches.Upcoming(0)
	if err != nil {
		b.log.Error("failed to render launches", "chatID", c.Chat().ID, "error", err)
		return c.Reply(msgErrGeneric)
	}
	if len(messages) == 0 {
		return c.Reply(msgNoLaunches)
	}

	for _, msg := range messages {
		if err := c.Send(msg, tb.ModeMarkdownV2, tb.NoPreview); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bot) NextHandler(c tb.Context) error {
	msg, found, err := b.launches.Next()
	if err != nil {
		b.log.Error("failed to render next launch", "chatID", c.Chat().ID, "error", err)
		return c.Reply(msgErrGeneric)
	}
	if !found {
		return c.Reply(msgNoLaunches)
	}
	return c.Reply(msg, tb.ModeMarkdownV2, tb.NoPreview)
}

func (b *Bot) HelpHandler(c tb.Context) error {
	if b.isAdmin(c.Chat().ID) {
		return c.Reply(strings.Join([]string{helpText, adminHelpText}, "\n\n"))
	}
	return c.Reply(helpText)
}

func (b *Bot) SubscribersCountHandler(c tb.Context) error {
	chatID := c.Chat().ID
	if !b.isAdmin(chatID) {
		b.log.Debug("ignoring admin command from non-admin chat", "chatID", chatID)
		return nil
	}

	count, err := b.subscriptions.Count()
	if err != nil {
		b.log.Error("failed to count subscribers", "chatID", chatID, "error", err)
		return c.Reply(msgErrGeneric)
	}
	return c.Reply(fmt.Sprintf("Total subscribers: %d", count))
}

func (b *Bot) isAdmin(chatID int64) bool {
	_, ok := b.adminChats[chatID]
	return ok
}

package telegram

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"
	tb "gopkg.in/telebot.v3"
)

// Telegram allows ~30 messages per second bot-wide; stay under it.
const sendRateLimit = 25

type (
	// SendFunc delivers one message to one chat. A nil error means the
	// delivery was acknowledged; other outcomes are the classified errors
	// from classify.go.
	SendFunc func(ctx context.Context, chatID int64, text string) error

	// SendMiddleware wraps a SendFunc. The chain is assembled once at
	// startup; composition order is a construction-time concern.
	SendMiddleware func(next SendFunc) SendFunc
)

// Chain applies middlewares so that the first listed one is outermost.
func Chain(base SendFunc, middlewares ...SendMiddleware) SendFunc {
	res := base
	for i := len(middlewares) - 1; i >= 0; i-- {
		res = middlewares[i](res)
	}
	return res
}

// Sender is the single outbound delivery capability exposed to the rest of
// the system: MarkdownV2 formatting at the base, then logging and throttling
// around it.
type Sender struct {
	send SendFunc
}

func NewSender(bot *tb.Bot, log *slog.Logger) *Sender {
	base := func(_ context.Context, chatID int64, text string) error {
		_, err := bot.Send(tb.ChatID(chatID), text, tb.ModeMarkdownV2, tb.NoPreview)
		return classifySendError(err)
	}

	return &Sender{
		send: Chain(base,
			WithSendLogging(log),
			WithThrottle(rate.NewLimiter(rate.Limit(sendRateLimit), 1)),
		),
	}
}

func (s *Sender) Send(ctx context.Context, chatID int64, text string) error {
	return s.send(ctx, chatID, text)
}

// WithThrottle delays sends to respect the bot-wide rate limit. The wait is
// cancellable through the context.
func WithThrottle(limiter *rate.Limiter) SendMiddleware {
	return func(next SendFunc) SendFunc {
		return func(ctx context.Context, chatID int64, text string) error {
			if err := limiter.Wait(ctx); err != nil {
				return err
			}
			return next(ctx, chatID, text)
		}
	}
}

// WithSendLogging records every delivery outcome.
func WithSendLogging(log *slog.Logger) SendMiddleware {
	log = log.With("component", "sender")
	return func(next SendFunc) SendFunc {
		return func(ctx context.Context, chatID int64, text string) error {
			err := next(ctx, chatID, text)
			if err != nil {
				log.WarnContext(ctx, "send failed", "chatID", chatID, "error", err)
				return err
			}
			log.DebugContext(ctx, "sent", "chatID", chatID, "length", len(text))
			return nil
		}
	}
}

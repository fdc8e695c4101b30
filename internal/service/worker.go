package service

import (
	"context"
	"log/slog"
	"time"

	"launchbot/internal/dal"
)

type (
	LaunchSource interface {
		Fetch(ctx context.Context) ([]dal.Launch, error)
	}

	LaunchNotifier interface {
		NotifyLaunches(ctx context.Context, launches []dal.Launch) error
	}

	CalendarSync interface {
		Sync(ctx context.Context, launches []dal.Launch) error
	}

	// Worker drives the fetch -> store -> notify cycle. Cycles wake at whole
	// minute boundaries; any cycle failure backs off a fixed delay before
	// retrying. Both waits race against cancellation, which is the only way
	// Run returns.
	Worker struct {
		source   LaunchSource
		launches LaunchesStore
		notifier LaunchNotifier
		calendar CalendarSync // optional, nil when sync is disabled
		clock    Clock
		backoff  time.Duration

		log *slog.Logger
	}
)

func NewWorker(
	source LaunchSource,
	launches LaunchesStore,
	notifier LaunchNotifier,
	calendar CalendarSync,
	clock Clock,
	backoff time.Duration,
	log *slog.Logger,
) *Worker {
	return &Worker{
		source:   source,
		launches: launches,
		notifier: notifier,
		calendar: calendar,
		clock:    clock,
		backoff:  backoff,

		log: log.With("component", "worker"),
	}
}

func (w *Worker) Run(ctx context.Context) {
	w.log.InfoContext(ctx, "starting poll worker")
	defer w.log.Info("stopped poll worker")

	for {
		err := w.run(ctx)
		if err == nil {
			return
		}

		w.log.ErrorContext(ctx, "poll cycle failed", "error", err)
		select {
		case <-ctx.Done():
			return
		case <-time.After(w.backoff):
		}
	}
}

// run loops poll cycles until cancellation (nil) or a cycle failure (the
// caller backs off and re-enters). A failed fetch or store leaves previous
// state untouched; a transient delivery failure surfaces here as well.
func (w *Worker) run(ctx context.Context) error {
	for {
		launches, err := w.source.Fetch(ctx)
		if err != nil {
			return err
		}

		if err := w.launches.PutLaunches(launches); err != nil {
			return err
		}

		if w.calendar != nil {
			// best-effort mirror; never fails the cycle
			if err := w.calendar.Sync(ctx, launches); err != nil {
				w.log.WarnContext(ctx, "calendar sync failed", "error", err)
			}
		}

		if err := w.notifier.NotifyLaunches(ctx, launches); err != nil {
			return err
		}

		wait := w.untilNextMinute()
		w.log.DebugContext(ctx, "cycle complete", "next_run_in", wait)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(wait):
		}
	}
}

// untilNextMinute returns the wait to the next whole-minute boundary, so
// notification latency stays aligned to the clock rather than drifting with
// cycle duration.
func (w *Worker) untilNextMinute() time.Duration {
	now := w.clock.Now()
	return now.Truncate(time.Minute).Add(time.Minute).Sub(now)
}

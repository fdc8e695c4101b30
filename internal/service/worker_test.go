package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"launchbot/internal/dal"
	"launchbot/internal/service"
	"launchbot/internal/service/mocks"
	"launchbot/pkg/clock"
)

func TestWorker_SingleCycleThenCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	launches := []dal.Launch{launchAt(1, now.Add(time.Hour))}

	source := mocks.NewMockLaunchSource(ctrl)
	source.EXPECT().Fetch(gomock.Any()).Return(launches, nil)

	store := mocks.NewMockLaunchesStore(ctrl)
	store.EXPECT().PutLaunches(launches).Return(nil)

	notifier := mocks.NewMockLaunchNotifier(ctrl)
	notifier.EXPECT().NotifyLaunches(gomock.Any(), launches).Return(nil)

	// the cycle runs to completion even with cancellation already pending,
	// then the post-cycle wait observes it
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	worker := service.NewWorker(source, store, notifier, nil, clock.NewMock(now), time.Minute, testLogger())
	worker.Run(ctx)
}

func TestWorker_FetchFailureBacksOffAndRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	launches := []dal.Launch{launchAt(1, now.Add(time.Hour))}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := mocks.NewMockLaunchSource(ctrl)
	gomock.InOrder(
		source.EXPECT().Fetch(gomock.Any()).Return(nil, errors.New("502 Bad Gateway")),
		source.EXPECT().Fetch(gomock.Any()).Return(launches, nil),
	)

	store := mocks.NewMockLaunchesStore(ctrl)
	store.EXPECT().PutLaunches(launches).Return(nil)

	notifier := mocks.NewMockLaunchNotifier(ctrl)
	notifier.EXPECT().NotifyLaunches(gomock.Any(), launches).
		DoAndReturn(func(context.Context, []dal.Launch) error {
			cancel()
			return nil
		})

	worker := service.NewWorker(source, store, notifier, nil, clock.NewMock(now), time.Millisecond, testLogger())

	done := make(chan struct{})
	go func() {
		worker.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop after retry and cancellation")
	}
}

func TestWorker_StoreFailureSkipsNotify(t *testing.T) {
	ctrl := gomock.NewController(t)
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	launches := []dal.Launch{launchAt(1, now.Add(time.Hour))}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := mocks.NewMockLaunchSource(ctrl)
	source.EXPECT().Fetch(gomock.Any()).Return(launches, nil)

	store := mocks.NewMockLaunchesStore(ctrl)
	store.EXPECT().PutLaunches(launches).Return(errors.New("disk full"))

	notifier := mocks.NewMockLaunchNotifier(ctrl)

	worker := service.NewWorker(source, store, notifier, nil, clock.NewMock(now), time.Minute, testLogger())
	worker.Run(ctx)
}

func TestWorker_CalendarSyncFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	launches := []dal.Launch{launchAt(1, now.Add(time.Hour))}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := mocks.NewMockLaunchSource(ctrl)
	source.EXPECT().Fetch(gomock.Any()).Return(launches, nil)

	store := mocks.NewMockLaunchesStore(ctrl)
	store.EXPECT().PutLaunches(launches).Return(nil)

	calendar := mocks.NewMockCalendarSync(ctrl)
	calendar.EXPECT().Sync(gomock.Any(), launches).Return(errors.New("googleapi: quota exceeded"))

	notifier := mocks.NewMockLaunchNotifier(ctrl)
	notifier.EXPECT().NotifyLaunches(gomock.Any(), launches).Return(nil)

	worker := service.NewWorker(source, store, notifier, calendar, clock.NewMock(now), time.Minute, testLogger())
	worker.Run(ctx)
	require.True(t, ctrl.Satisfied())
}

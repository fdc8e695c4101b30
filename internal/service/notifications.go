package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"launchbot/internal/dal"
	"launchbot/internal/schedule"
	"launchbot/internal/telegram"
)

//go:generate mockgen -package mocks -destination mocks/clients.go . Sender,LaunchSource,LaunchNotifier,CalendarSync

type (
	Clock interface {
		Now() time.Time
	}

	// Sender is the single outbound delivery capability. Errors are the
	// classified taxonomy from the telegram package: ErrRecipientGone,
	// MigratedError, or anything else for transient failures.
	Sender interface {
		Send(ctx context.Context, chatID int64, text string) error
	}

	SubscribersStore interface {
		GetAllSubscribers() ([]dal.Subscriber, error)
		RecordNotification(chatID, launchID, secondsLeft int64) error
		Unsubscribe(chatID int64) error
		MigrateSubscriber(oldChatID, newChatID int64) (bool, error)
	}

	LaunchesStore interface {
		PutLaunches(launches []dal.Launch) error
		GetLaunches() ([]dal.Launch, bool, error)
	}

	// Notifications decides who is due for a launch notification, delivers,
	// and records progress. It also renders launch messages for the command
	// front-end.
	Notifications struct {
		subscribers SubscribersStore
		launches    LaunchesStore
		sender      Sender
		tiers       schedule.Tiers
		clock       Clock

		log *slog.Logger
		mx  *sync.Mutex
	}
)

func NewNotifications(
	subscribers SubscribersStore,
	launches LaunchesStore,
	sender Sender,
	tiers schedule.Tiers,
	clock Clock,
	log *slog.Logger,
) *Notifications {
	return &Notifications{
		subscribers: subscribers,
		launches:    launches,
		sender:      sender,
		tiers:       tiers,
		clock:       clock,

		log: log.With("component", "service").With("service", "notifications"),
		mx:  &sync.Mutex{},
	}
}

// NotifyLaunches runs the notify phase of one poll cycle: for every launch
// with a known t0, deliver to every newly due subscriber. Permanent and
// migration failures are converted into registry mutations and do not abort
// the phase; a transient failure aborts the remainder (the cycle backs off),
// while notifications recorded before it stand.
func (s *Notifications) NotifyLaunches(ctx context.Context, launches []dal.Launch) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	for _, launch := range launches {
		if launch.T0 == nil {
			continue
		}

		due, err := s.DueSubscribers(launch.ID, launch.T0.Time)
		if err != nil {
			return fmt.Errorf("due subscribers for launchID=%d: %w", launch.ID, err)
		}

		for _, chatID := range due {
			if err := s.notify(ctx, chatID, launch); err != nil {
				return err
			}
		}
	}

	return nil
}

// DueSubscribers returns the chats due for a notification about the given
// launch at the current time: those whose recorded progress has not reached
// the coarsest threshold tier the countdown has entered.
func (s *Notifications) DueSubscribers(launchID int64, t0 time.Time) ([]int64, error) {
	subs, err := s.subscribers.GetAllSubscribers()
	if err != nil {
		return nil, fmt.Errorf("get subscribers: %w", err)
	}

	untilLaunch := t0.Unix() - s.clock.Now().Unix()

	var res []int64
	for _, sub := range subs {
		lastRecorded := schedule.NeverNotified
		if v, ok := sub.Progress[launchID]; ok {
			lastRecorded = v
		}
		if _, due := s.tiers.Due(lastRecorded, untilLaunch); due {
			res = append(res, sub.ChatID)
		}
	}

	return res, nil
}

func (s *Notifications) notify(ctx context.Context, chatID int64, launch dal.Launch) error {
	log := s.log.With("chatID", chatID, "launchID", launch.ID)
	now := s.clock.Now()

	err := s.sender.Send(ctx, chatID, renderLaunch(launch, now))
	if err == nil {
		secondsLeft := launch.T0.Unix() - now.Unix()
		if err := s.subscribers.RecordNotification(chatID, launch.ID, secondsLeft); err != nil {
			return fmt.Errorf("record notification chatID=%d launchID=%d: %w", chatID, launch.ID, err)
		}
		log.Info("notified", "secondsLeft", secondsLeft)
		return nil
	}

	var migrated telegram.MigratedError
	switch {
	case errors.Is(err, telegram.ErrRecipientGone):
		log.Warn("recipient gone, unsubscribing", "error", err)
		if err := s.subscribers.Unsubscribe(chatID); err != nil {
			return fmt.Errorf("unsubscribe chatID=%d: %w", chatID, err)
		}
		return nil
	case errors.As(err, &migrated):
		log.Warn("chat migrated", "newChatID", migrated.To)
		// progress moves along; the pending notification retries against the
		// new id on the next cycle
		if _, err := s.subscribers.MigrateSubscriber(chatID, migrated.To); err != nil {
			return fmt.Errorf("migrate chatID=%d to %d: %w", chatID, migrated.To, err)
		}
		return nil
	default:
		return fmt.Errorf("send to chatID=%d: %w", chatID, err)
	}
}

// Upcoming renders messages for stored launches with a known t0 within the
// given window; within <= 0 means no window restriction. Ordered by t0.
func (s *Notifications) Upcoming(within time.Duration) ([]string, error) {
	launches, _, err := s.launches.GetLaunches()
	if err != nil {
		return nil, fmt.Errorf("get launches: %w", err)
	}

	now := s.clock.Now()
	var selected []dal.Launch
	for _, launch := range launches {
		if launch.T0 == nil {
			continue
		}
		if within > 0 && launch.T0.After(now.Add(within)) {
			continue
		}
		selected = append(selected, launch)
	}
	sort.Slice(selected, func(i, j int) bool {
		return selected[i].T0.Before(selected[j].T0.Time)
	})

	messages := make([]string, 0, len(selected))
	for _, launch := range selected {
		messages = append(messages, renderLaunch(launch, now))
	}
	return messages, nil
}

// Next renders the soonest upcoming launch; found is false when nothing with
// a future t0 is stored.
func (s *Notifications) Next() (string, bool, error) {
	launches, _, err := s.launches.GetLaunches()
	if err != nil {
		return "", false, fmt.Errorf("get launches: %w", err)
	}

	now := s.clock.Now()
	var next *dal.Launch
	for i := range launches {
		launch := launches[i]
		if launch.T0 == nil || launch.T0.Before(now) {
			continue
		}
		if next == nil || launch.T0.Before(next.T0.Time) {
			next = &launches[i]
		}
	}
	if next == nil {
		return "", false, nil
	}

	return renderLaunch(*next, now), true, nil
}

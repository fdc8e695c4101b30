package service

import (
	"fmt"
	"log/slog"
)

//go:generate mockgen -package mocks -destination mocks/stores.go . SubscriptionsStore,SubscribersStore,LaunchesStore

type SubscriptionsStore interface {
	Subscribe(chatID int64) error
	Unsubscribe(chatID int64) error
	CountSubscribers() (int, error)
}

// Subscriptions backs the command front-end. It runs concurrently with the
// poll worker; races on a single chat resolve at the store's per-key
// atomicity.
type Subscriptions struct {
	store SubscriptionsStore

	log *slog.Logger
}

func NewSubscriptions(store SubscriptionsStore, log *slog.Logger) *Subscriptions {
	return &Subscriptions{
		store: store,
		log:   log.With("component", "service").With("service", "subscriptions"),
	}
}

func (s *Subscriptions) Subscribe(chatID int64) error {
	if err := s.store.Subscribe(chatID); err != nil {
		return fmt.Errorf("subscribe chatID=%d: %w", chatID, err)
	}
	s.log.Debug("subscribed", "chatID", chatID)
	return nil
}

func (s *Subscriptions) Unsubscribe(chatID int64) error {
	if err := s.store.Unsubscribe(chatID); err != nil {
		return fmt.Errorf("unsubscribe chatID=%d: %w", chatID, err)
	}
	s.log.Debug("unsubscribed", "chatID", chatID)
	return nil
}

func (s *Subscriptions) Count() (int, error) {
	count, err := s.store.CountSubscribers()
	if err != nil {
		return 0, fmt.Errorf("count subscribers: %w", err)
	}
	return count, nil
}

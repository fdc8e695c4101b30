package dal

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"
)

// Progress maps launch id to the seconds remaining until the launch at the
// time the last notification for it was sent. A launch absent from the map
// has never been notified for this subscriber.
type Progress map[int64]int64

type Subscriber struct {
	ChatID   int64
	Progress Progress
}

// Subscribe ensures a registry entry exists for chatID. Repeated calls are
// no-ops: existing progress is never reset.
func (s *BoltDB) Subscribe(chatID int64) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(subscribersBucket))

		id := i64tob(chatID)
		if b.Get(id) != nil {
			return nil
		}

		data, err := json.Marshal(Progress{})
		if err != nil {
			return fmt.Errorf("marshal progress for chatID=%d: %w", chatID, err)
		}
		if err := b.Put(id, data); err != nil {
			return fmt.Errorf("put progress for chatID=%d: %w", chatID, err)
		}

		return nil
	})

	return err
}

// Unsubscribe removes the subscriber and all its progress. Removing an
// absent subscriber is not an error.
func (s *BoltDB) Unsubscribe(chatID int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(subscribersBucket))

		if err := b.Delete(i64tob(chatID)); err != nil {
			return fmt.Errorf("delete subscriber with chatID=%d: %w", chatID, err)
		}

		return nil
	})
}

// RecordNotification merges {launchID: secondsLeft} into the subscriber's
// progress inside one update transaction, so concurrent notifications for
// different launches on the same chat cannot lose each other's entries.
// Values only ever decrease: a stored value smaller than secondsLeft wins,
// so an out-of-order completion cannot re-mark progress coarser than it is.
// A no-op when the subscriber is absent (unsubscribed mid-flight).
func (s *BoltDB) RecordNotification(chatID, launchID, secondsLeft int64) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(subscribersBucket))

		id := i64tob(chatID)
		data := b.Get(id)
		if data == nil {
			return nil
		}

		progress := s.decodeProgress(chatID, data)
		if cur, ok := progress[launchID]; !ok || secondsLeft < cur {
			progress[launchID] = secondsLeft
		}

		updated, err := json.Marshal(progress)
		if err != nil {
			return fmt.Errorf("marshal progress for chatID=%d: %w", chatID, err)
		}
		if err := b.Put(id, updated); err != nil {
			return fmt.Errorf("put progress for chatID=%d: %w", chatID, err)
		}

		return nil
	})

	return err
}

// MigrateSubscriber atomically moves progress from oldChatID to newChatID,
// merging with any progress already recorded at the destination (smaller
// seconds-remaining wins per launch). Reports whether the old entry existed.
func (s *BoltDB) MigrateSubscriber(oldChatID, newChatID int64) (bool, error) {
	migrated := false

	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(subscribersBucket))

		oldID := i64tob(oldChatID)
		oldData := b.Get(oldID)
		if oldData == nil {
			return nil
		}

		merged := s.decodeProgress(oldChatID, oldData)
		if newData := b.Get(i64tob(newChatID)); newData != nil {
			for launchID, secondsLeft := range s.decodeProgress(newChatID, newData) {
				if cur, ok := merged[launchID]; !ok || secondsLeft < cur {
					merged[launchID] = secondsLeft
				}
			}
		}

		data, err := json.Marshal(merged)
		if err != nil {
			return fmt.Errorf("marshal progress for chatID=%d: %w", newChatID, err)
		}
		if err := b.Put(i64tob(newChatID), data); err != nil {
			return fmt.Errorf("put progress for chatID=%d: %w", newChatID, err)
		}
		if err := b.Delete(oldID); err != nil {
			return fmt.Errorf("delete subscriber with chatID=%d: %w", oldChatID, err)
		}

		migrated = true
		return nil
	})

	return migrated, err
}

func (s *BoltDB) CountSubscribers() (int, error) {
	var res int
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(subscribersBucket))
		res = b.Stats().KeyN
		return nil
	})
	return res, err
}

// GetAllSubscribers returns every registry entry. A record that fails to
// decode does not abort the scan: its progress is treated as "no data", so
// the subscriber counts as never notified until the record is rewritten.
func (s *BoltDB) GetAllSubscribers() ([]Subscriber, error) {
	var res []Subscriber

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(subscribersBucket))
		c := b.Cursor()

		for k, v := c.First(); k != nil; k, v = c.Next() {
			var chatID int64
			if _, err := fmt.Sscanf(string(k), "%d", &chatID); err != nil {
				s.log.Warn("skipping subscriber with malformed key", "key", string(k), "error", err)
				continue
			}

			var progress Progress
			if err := json.Unmarshal(v, &progress); err != nil {
				s.log.Warn("malformed progress record, treating as empty", "chatID", chatID, "error", err)
				progress = Progress{}
			}

			res = append(res, Subscriber{ChatID: chatID, Progress: progress})
		}

		return nil
	})

	return res, err
}

// decodeProgress treats a malformed stored record as empty so one bad value
// cannot block further updates for that subscriber.
func (s *BoltDB) decodeProgress(chatID int64, data []byte) Progress {
	var progress Progress
	if err := json.Unmarshal(data, &progress); err != nil {
		s.log.Warn("malformed progress record, treating as empty", "chatID", chatID, "error", err)
		return Progress{}
	}
	if progress == nil {
		progress = Progress{}
	}
	return progress
}

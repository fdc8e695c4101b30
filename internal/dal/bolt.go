package dal

import (
	"fmt"
	"log/slog"

	"go.etcd.io/bbolt"
)

const subscribersBucket = "subscribers"
const launchesBucket = "launches"

// BoltDB is the durable store for the subscriber registry and the latest
// fetched launch batch. Every mutation runs inside a single bbolt update
// transaction, which is the only synchronization primitive the rest of the
// system relies on.
type BoltDB struct {
	db *bbolt.DB

	log *slog.Logger
}

func NewBoltDB(db *bbolt.DB, log *slog.Logger) (*BoltDB, error) {
	for _, bucket := range []string{subscribersBucket, launchesBucket} {
		exists := false
		err := db.View(func(tx *bbolt.Tx) error {
			exists = tx.Bucket([]byte(bucket)) != nil
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("check bucket %q: %w", bucket, err)
		}
		if !exists {
			return nil, fmt.Errorf("bucket %q not found: migrations not applied", bucket)
		}
	}

	return &BoltDB{
		db:  db,
		log: log.With("component", "dal"),
	}, nil
}

func (s *BoltDB) Close() error {
	return s.db.Close()
}

func i64tob(id int64) []byte {
	return []byte(fmt.Sprintf("%d", id))
}

package v1

import (
	"go.etcd.io/bbolt"
)

// MigrationV1 creates the subscribers bucket: one key per chat id holding the
// serialized per-launch notification progress map
type MigrationV1 struct{}

// Version returns the migration version
func (m *MigrationV1) Version() int {
	return 1
}

// Description returns a human-readable description of the migration
func (m *MigrationV1) Description() string {
	return "Create subscribers bucket for per-chat notification progress"
}

// Up performs the migration
func (m *MigrationV1) Up(db *bbolt.DB) error {
	return db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte("subscribers"))
		return err
	})
}

// New creates a new instance of MigrationV1
func New() *MigrationV1 {
	return &MigrationV1{}
}

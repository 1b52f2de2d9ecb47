package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/bloodlink/internal/crypto"
)

var (
	// BoltDB bucket names
	bucketAuth = []byte("auth")
)

// Storage represents the BoltDB credential store.
// It is the only durable client state: a single encrypted session token.
type Storage struct {
	db            *bbolt.DB
	encryptionKey []byte
}

// New creates a new BoltDB storage instance.
// dbPath is the path to the BoltDB database file, encryptionKey is the
// 32-byte device key used to encrypt the token at rest.
func New(ctx context.Context, dbPath string, encryptionKey []byte) (*Storage, error) {
	if len(encryptionKey) != crypto.KeySize {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", crypto.KeySize, len(encryptionKey))
	}

	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db, encryptionKey: encryptionKey}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketAuth); err != nil {
			return fmt.Errorf("failed to create auth bucket: %w", err)
		}
		return nil
	})
}

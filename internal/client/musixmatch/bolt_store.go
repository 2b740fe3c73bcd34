package musixmatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/oshokin/syncedlyrics/internal/constants"
)

const (
	tokenBucketName = "tokens"
	tokenKey        = "musixmatch"
	// boltOpenTimeout bounds the wait for the file lock held by another process.
	boltOpenTimeout = time.Second
)

// BoltTokenStore keeps the token in a bbolt database.
// The database is opened per operation so several processes can share it.
type BoltTokenStore struct {
	// path is the database file.
	path string
}

// NewBoltTokenStore creates a store backed by the bbolt database at path.
func NewBoltTokenStore(path string) *BoltTokenStore {
	return &BoltTokenStore{path: filepath.Clean(path)}
}

// Load reads the token from the database.
func (s *BoltTokenStore) Load(_ context.Context) (*SessionToken, error) {
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		return nil, ErrTokenNotCached
	}

	var data []byte

	err := s.withDB(true, func(db *bolt.DB) error {
		return db.View(func(tx *bolt.Tx) error {
			bucket := tx.Bucket([]byte(tokenBucketName))
			if bucket == nil {
				return ErrTokenNotCached
			}

			value := bucket.Get([]byte(tokenKey))
			if value == nil {
				return ErrTokenNotCached
			}

			// Values are only valid inside the transaction.
			data = append([]byte(nil), value...)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return decodeToken(data)
}

// Save writes the token into the database, creating it when needed.
func (s *BoltTokenStore) Save(_ context.Context, token *SessionToken) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(s.path), constants.DefaultFolderPermissions); err != nil {
		return fmt.Errorf("failed to create token database directory: %w", err)
	}

	return s.withDB(false, func(db *bolt.DB) error {
		return db.Update(func(tx *bolt.Tx) error {
			bucket, bucketErr := tx.CreateBucketIfNotExists([]byte(tokenBucketName))
			if bucketErr != nil {
				return bucketErr
			}

			return bucket.Put([]byte(tokenKey), data)
		})
	})
}

// Clear deletes the stored token.
func (s *BoltTokenStore) Clear(_ context.Context) error {
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return s.withDB(false, func(db *bolt.DB) error {
		return db.Update(func(tx *bolt.Tx) error {
			bucket := tx.Bucket([]byte(tokenBucketName))
			if bucket == nil {
				return nil
			}

			return bucket.Delete([]byte(tokenKey))
		})
	})
}

// Location returns the database path.
func (s *BoltTokenStore) Location() string {
	return s.path
}

func (s *BoltTokenStore) withDB(readOnly bool, fn func(db *bolt.DB) error) error {
	db, err := bolt.Open(s.path, constants.PrivateFilePermissions, &bolt.Options{
		Timeout:  boltOpenTimeout,
		ReadOnly: readOnly,
	})
	if err != nil {
		return fmt.Errorf("failed to open token database: %w", err)
	}

	defer db.Close() //nolint:errcheck // Error on close is not critical here.

	return fn(db)
}

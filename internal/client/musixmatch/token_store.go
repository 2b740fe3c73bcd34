package musixmatch

//go:generate $MOCKGEN -source=token_store.go -destination=mocks/token_store_mock.go

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oshokin/syncedlyrics/internal/constants"
	"github.com/oshokin/syncedlyrics/internal/utils"
)

// TokenStore persists a session token between runs.
type TokenStore interface {
	// Load returns the stored token.
	// It returns ErrTokenNotCached when nothing is stored and ErrMalformedTokenCache for unreadable data.
	Load(ctx context.Context) (*SessionToken, error)
	// Save replaces the stored token.
	Save(ctx context.Context, token *SessionToken) error
	// Clear removes the stored token, if any.
	Clear(ctx context.Context) error
	// Location describes where the token is kept, for diagnostics.
	Location() string
}

// FileTokenStore keeps the token in a small JSON file, {"token": ..., "expiration_time": ...}.
type FileTokenStore struct {
	// path is the token file.
	path string
}

// NewFileTokenStore creates a store backed by the file at path.
// The parent directory is created on first save.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: filepath.Clean(path)}
}

// Load reads and decodes the token file.
func (s *FileTokenStore) Load(_ context.Context) (*SessionToken, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrTokenNotCached
		}

		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	return decodeToken(data)
}

// Save writes the token file atomically with owner-only permissions.
func (s *FileTokenStore) Save(_ context.Context, token *SessionToken) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}

	return utils.WriteFileAtomic(s.path, data, constants.PrivateFilePermissions)
}

// Clear deletes the token file.
func (s *FileTokenStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}

	return nil
}

// Location returns the token file path.
func (s *FileTokenStore) Location() string {
	return s.path
}

// NoopTokenStore persists nothing. It is used where no writable cache directory exists.
type NoopTokenStore struct{}

// NewNoopTokenStore creates a store that never remembers anything.
func NewNoopTokenStore() *NoopTokenStore {
	return new(NoopTokenStore)
}

// Load always reports a miss.
func (*NoopTokenStore) Load(context.Context) (*SessionToken, error) {
	return nil, ErrTokenNotCached
}

// Save discards the token.
func (*NoopTokenStore) Save(context.Context, *SessionToken) error {
	return nil
}

// Clear does nothing.
func (*NoopTokenStore) Clear(context.Context) error {
	return nil
}

// Location returns an empty string.
func (*NoopTokenStore) Location() string {
	return ""
}

// decodeToken parses a cached token, rejecting documents without a token or expiration.
func decodeToken(data []byte) (*SessionToken, error) {
	var token SessionToken
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTokenCache, err)
	}

	if token.Value == "" || token.ExpirationTime <= 0 {
		return nil, fmt.Errorf("%w: token or expiration_time missing", ErrMalformedTokenCache)
	}

	return &token, nil
}

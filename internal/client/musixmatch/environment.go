package musixmatch

import (
	"context"
	"os"
	"path/filepath"

	"github.com/oshokin/syncedlyrics/internal/config"
	"github.com/oshokin/syncedlyrics/internal/constants"
	"github.com/oshokin/syncedlyrics/internal/logger"
)

// Environment describes what the runtime offers for token persistence.
type Environment struct {
	// CacheDir is the application cache directory, empty when no cache root is known.
	CacheDir string
	// FileStorage reports whether CacheDir exists and is writable.
	FileStorage bool
}

// ProbeEnvironment checks whether tokens can be persisted on disk.
// An empty cacheRoot means the user cache directory of the operating system.
// The application directory is created when missing.
func ProbeEnvironment(ctx context.Context, cacheRoot string) Environment {
	if cacheRoot == "" {
		root, err := os.UserCacheDir()
		if err != nil {
			logger.Debugf(ctx, "No user cache directory, tokens stay in memory: %v", err)

			return Environment{}
		}

		cacheRoot = root
	}

	dir := filepath.Join(cacheRoot, CacheDirName)

	if err := os.MkdirAll(dir, constants.DefaultFolderPermissions); err != nil {
		logger.Debugf(ctx, "Cache directory %s cannot be created, tokens stay in memory: %v", dir, err)

		return Environment{CacheDir: dir}
	}

	probe, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		logger.Debugf(ctx, "Cache directory %s is not writable, tokens stay in memory: %v", dir, err)

		return Environment{CacheDir: dir}
	}

	probePath := probe.Name()
	_ = probe.Close()
	_ = os.Remove(probePath)

	return Environment{
		CacheDir:    dir,
		FileStorage: true,
	}
}

// NewTokenStore picks the token store for kind, one of the config.TokenStore* values.
// Persistent kinds degrade to a NoopTokenStore when env has no file storage.
func NewTokenStore(ctx context.Context, kind string, env Environment) TokenStore {
	if kind == config.TokenStoreNone {
		return NewNoopTokenStore()
	}

	if !env.FileStorage {
		if kind != config.TokenStoreAuto {
			logger.Warnf(ctx, "Token store %q requested but no writable cache directory exists, tokens stay in memory", kind)
		}

		return NewNoopTokenStore()
	}

	if kind == config.TokenStoreBolt {
		return NewBoltTokenStore(filepath.Join(env.CacheDir, TokenDatabaseFilename))
	}

	return NewFileTokenStore(filepath.Join(env.CacheDir, TokenFilename))
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/syncedlyrics/internal/constants"
)

func validConfig() *Config {
	cfg := builtinDefaults()

	return &cfg
}

// TestConstants tests the exported defaults.
func TestConstants(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".syncedlyrics.yaml", DefaultConfigFilename)
	assert.Equal(t, "https://apic-desktop.musixmatch.com/ws/1.1/", DefaultBaseURL)
	assert.Equal(t, "web-desktop-app-v1.0", DefaultAppID)
	assert.Equal(t, 5, DefaultAuthRetryAttempts)
	assert.Equal(t, 1024*1024, DefaultMaxLogLength)
}

// TestLoadConfig tests the LoadConfig function.
func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("reads values from file and keeps defaults for the rest", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "log_level: debug\ntoken_store: bolt\nauth_retry_attempts: 3\noutput_format: lrc\n"
		require.NoError(t, os.WriteFile(path, []byte(content), constants.DefaultFilePermissions))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, TokenStoreBolt, cfg.TokenStore)
		assert.Equal(t, int64(3), cfg.AuthRetryAttempts)
		assert.Equal(t, OutputFormatLRC, cfg.OutputFormat)
		assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
		assert.Equal(t, DefaultAppID, cfg.AppID)
		assert.Equal(t, DefaultTokenTTL, cfg.TokenTTL)
	})

	t.Run("explicit missing file is an error", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config from file")
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log_level: [unclosed"), constants.DefaultFilePermissions))

		_, err := LoadConfig(path)
		require.Error(t, err)
	})
}

// TestValidateConfig tests the ValidateConfig function.
func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		mutate      func(cfg *Config)
		expectedErr error
		wantErr     bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:        "relative base url",
			mutate:      func(cfg *Config) { cfg.BaseURL = "ws/1.1/" },
			expectedErr: ErrInvalidBaseURL,
		},
		{
			name:        "ftp base url",
			mutate:      func(cfg *Config) { cfg.BaseURL = "ftp://example.com/" },
			expectedErr: ErrInvalidBaseURL,
		},
		{
			name:        "empty app id",
			mutate:      func(cfg *Config) { cfg.AppID = "  " },
			expectedErr: ErrEmptyAppID,
		},
		{
			name:        "unknown token store",
			mutate:      func(cfg *Config) { cfg.TokenStore = "redis" },
			expectedErr: ErrUnknownTokenStore,
		},
		{
			name:    "unparsable token ttl",
			mutate:  func(cfg *Config) { cfg.TokenTTL = "ten minutes" },
			wantErr: true,
		},
		{
			name:        "zero token ttl",
			mutate:      func(cfg *Config) { cfg.TokenTTL = "0s" },
			expectedErr: ErrInvalidTokenTTL,
		},
		{
			name:        "zero auth attempts",
			mutate:      func(cfg *Config) { cfg.AuthRetryAttempts = 0 },
			expectedErr: ErrInvalidAuthRetryAttempts,
		},
		{
			name:        "negative auth pause",
			mutate:      func(cfg *Config) { cfg.AuthRetryPause = "-1s" },
			expectedErr: ErrInvalidAuthRetryPause,
		},
		{
			name:        "zero request timeout",
			mutate:      func(cfg *Config) { cfg.RequestTimeout = "0s" },
			expectedErr: ErrInvalidRequestTimeout,
		},
		{
			name:        "negative rate",
			mutate:      func(cfg *Config) { cfg.RequestsPerSecond = -1 },
			expectedErr: ErrInvalidRateLimit,
		},
		{
			name: "rate without burst",
			mutate: func(cfg *Config) {
				cfg.RequestsPerSecond = 1
				cfg.RequestBurst = 0
			},
			expectedErr: ErrInvalidRateLimit,
		},
		{
			name: "disabled rate ignores burst",
			mutate: func(cfg *Config) {
				cfg.RequestsPerSecond = 0
				cfg.RequestBurst = 0
			},
		},
		{
			name:        "unknown log level",
			mutate:      func(cfg *Config) { cfg.LogLevel = "chatty" },
			expectedErr: ErrUnknownLogLevel,
		},
		{
			name:    "unparsable max log length",
			mutate:  func(cfg *Config) { cfg.MaxLogLength = "lots" },
			wantErr: true,
		},
		{
			name:        "unknown output format",
			mutate:      func(cfg *Config) { cfg.OutputFormat = "xml" },
			expectedErr: ErrUnknownOutputFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)

			switch {
			case tt.expectedErr != nil:
				require.ErrorIs(t, err, tt.expectedErr)
			case tt.wantErr:
				require.Error(t, err)
			default:
				require.NoError(t, err)
			}
		})
	}
}

// TestValidateConfig_DerivedFields tests that parsed fields are filled in.
func TestValidateConfig_DerivedFields(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.BaseURL = "http://localhost:8080/ws/1.1"
	cfg.TokenStore = " FILE "
	cfg.LogLevel = "WARN"
	cfg.MaxLogLength = "64KB"
	cfg.OutputFormat = "JSON"

	require.NoError(t, ValidateConfig(cfg))

	assert.Equal(t, "http://localhost:8080/ws/1.1/", cfg.BaseURL)
	assert.Equal(t, TokenStoreFile, cfg.TokenStore)
	assert.Equal(t, 10*time.Minute, cfg.ParsedTokenTTL)
	assert.Equal(t, 10*time.Second, cfg.ParsedAuthRetryPause)
	assert.Equal(t, 30*time.Second, cfg.ParsedRequestTimeout)
	assert.Equal(t, zapcore.WarnLevel, cfg.ParsedLogLevel)
	assert.Equal(t, uint64(64000), cfg.ParsedMaxLogLength)
	assert.Equal(t, OutputFormatJSON, cfg.OutputFormat)
}

// TestDefault tests that Default yields a usable configuration.
func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	require.NotNil(t, cfg)
	assert.Positive(t, cfg.ParsedTokenTTL)
	assert.Positive(t, cfg.ParsedRequestTimeout)
	assert.NotEmpty(t, cfg.AppID)
}

// TestSaveConfig tests that SaveConfig writes a file LoadConfig can read back.
func TestSaveConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "saved.yaml")

	cfg := validConfig()
	cfg.LogLevel = "debug"
	cfg.TokenStore = TokenStoreNone
	require.NoError(t, ValidateConfig(cfg))

	require.NoError(t, SaveConfig(cfg, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(content, &raw))
	assert.NotContains(t, raw, "ParsedTokenTTL")
	assert.Contains(t, string(content), "# Where the session token is kept")

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, ValidateConfig(loaded))

	assert.Equal(t, "debug", loaded.LogLevel)
	assert.Equal(t, TokenStoreNone, loaded.TokenStore)
	assert.Equal(t, cfg.ParsedMaxLogLength, loaded.ParsedMaxLogLength)
}

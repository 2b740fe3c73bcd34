package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/syncedlyrics/internal/constants"
	"github.com/oshokin/syncedlyrics/internal/logger"
	"github.com/oshokin/syncedlyrics/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// BaseURL is the root of the Musixmatch desktop API, every action is appended to it.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
	// AppID identifies the client to the upstream and is sent with every request.
	AppID string `mapstructure:"app_id" yaml:"app_id"`
	// UserAgent is the browser User-Agent presented to the upstream.
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`
	// TokenStore selects where the session token is kept between runs: auto, file, bolt or none.
	TokenStore string `mapstructure:"token_store" yaml:"token_store"`
	// TokenCacheDir overrides the user cache directory used for the token cache.
	// Empty means the operating system default.
	TokenCacheDir string `mapstructure:"token_cache_dir" yaml:"token_cache_dir"`
	// TokenTTL is how long a freshly issued session token is trusted (e.g., "10m").
	TokenTTL string `mapstructure:"token_ttl" yaml:"token_ttl"`
	// AuthRetryAttempts bounds how many times token acquisition is attempted when the upstream answers 401.
	AuthRetryAttempts int64 `mapstructure:"auth_retry_attempts" yaml:"auth_retry_attempts"`
	// AuthRetryPause is the fixed pause between token acquisition attempts (e.g., "10s").
	AuthRetryPause string `mapstructure:"auth_retry_pause" yaml:"auth_retry_pause"`
	// RequestTimeout limits a single HTTP exchange with the upstream (e.g., "30s").
	RequestTimeout string `mapstructure:"request_timeout" yaml:"request_timeout"`
	// RequestsPerSecond caps the outgoing request rate. Zero disables the limit.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" yaml:"requests_per_second"`
	// RequestBurst is how many requests may be sent back to back before the rate limit applies.
	RequestBurst int `mapstructure:"request_burst" yaml:"request_burst"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// MaxLogLength caps the size of dumped requests and responses at debug level (e.g., "64KB").
	MaxLogLength string `mapstructure:"max_log_length" yaml:"max_log_length"`
	// OutputFormat is the default rendering for command output: text, lrc, json or yaml.
	OutputFormat string `mapstructure:"output_format" yaml:"output_format"`
	// ParsedTokenTTL is the parsed token lifetime.
	ParsedTokenTTL time.Duration `yaml:"-"`
	// ParsedAuthRetryPause is the parsed pause between token attempts.
	ParsedAuthRetryPause time.Duration `yaml:"-"`
	// ParsedRequestTimeout is the parsed HTTP timeout.
	ParsedRequestTimeout time.Duration `yaml:"-"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level `yaml:"-"`
	// ParsedMaxLogLength is the parsed dump size limit in bytes.
	ParsedMaxLogLength uint64 `yaml:"-"`
}

// Token store kinds.
const (
	TokenStoreAuto = "auto"
	TokenStoreFile = "file"
	TokenStoreBolt = "bolt"
	TokenStoreNone = "none"
)

// Output formats.
const (
	OutputFormatText = "text"
	OutputFormatLRC  = "lrc"
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".syncedlyrics.yaml"

	// EnvPrefix prefixes environment variables overriding config keys, e.g. SYNCEDLYRICS_LOG_LEVEL.
	EnvPrefix = "SYNCEDLYRICS"

	// DefaultBaseURL is the Musixmatch desktop API root.
	DefaultBaseURL = "https://apic-desktop.musixmatch.com/ws/1.1/"

	// DefaultAppID is the application identifier the desktop web app uses.
	DefaultAppID = "web-desktop-app-v1.0"

	// DefaultUserAgent mimics a desktop Chrome build.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/115.0.0.0 Safari/537.36" //nolint:lll

	// DefaultTokenTTL is how long a session token is trusted after it was issued.
	DefaultTokenTTL = "10m"

	// DefaultAuthRetryAttempts bounds token acquisition attempts after 401 answers.
	DefaultAuthRetryAttempts = 5

	// DefaultAuthRetryPause is the pause between token acquisition attempts.
	DefaultAuthRetryPause = "10s"

	// DefaultRequestTimeout is the per-request timeout.
	DefaultRequestTimeout = "30s"

	// DefaultRequestsPerSecond keeps batch runs polite towards the upstream.
	DefaultRequestsPerSecond = 2.0

	// DefaultRequestBurst allows a lookup (track, richsync, subtitle, lyrics) to go out without waiting.
	DefaultRequestBurst = 4

	// DefaultLogLevel is the default verbosity.
	DefaultLogLevel = "info"

	// DefaultMaxLogLength is the default maximum size (in bytes) of a dumped request or response.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB
)

// Static error definitions for better error handling.
var (
	// ErrInvalidBaseURL indicates that the base URL is not an absolute http(s) URL.
	ErrInvalidBaseURL = errors.New("base_url must be an absolute http(s) URL")
	// ErrEmptyAppID indicates that the application identifier is missing.
	ErrEmptyAppID = errors.New("app_id cannot be empty")
	// ErrUnknownTokenStore indicates that the token store kind is not recognized.
	ErrUnknownTokenStore = errors.New("unknown token store")
	// ErrInvalidTokenTTL indicates that the token lifetime is not positive.
	ErrInvalidTokenTTL = errors.New("token_ttl must be positive")
	// ErrInvalidAuthRetryAttempts indicates that the auth retry attempts count is invalid.
	ErrInvalidAuthRetryAttempts = errors.New("auth_retry_attempts must be a positive integer")
	// ErrInvalidAuthRetryPause indicates that the auth retry pause is negative.
	ErrInvalidAuthRetryPause = errors.New("auth_retry_pause cannot be negative")
	// ErrInvalidRequestTimeout indicates that the request timeout is not positive.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
	// ErrInvalidRateLimit indicates that the rate limit settings are inconsistent.
	ErrInvalidRateLimit = errors.New("requests_per_second cannot be negative and request_burst must be positive")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownOutputFormat indicates that the output format is not recognized.
	ErrUnknownOutputFormat = errors.New("unknown output format")
)

//nolint:gochecknoglobals // Read-only lookup tables.
var (
	tokenStoreKinds = []string{TokenStoreAuto, TokenStoreFile, TokenStoreBolt, TokenStoreNone}
	outputFormats   = []string{OutputFormatText, OutputFormatLRC, OutputFormatJSON, OutputFormatYAML}
)

// Default returns a validated configuration built only from defaults and environment variables.
func Default() *Config {
	v := newViper()

	var cfg Config

	err := v.Unmarshal(&cfg)
	if err == nil {
		err = ValidateConfig(&cfg)
	}

	if err != nil {
		logger.Warnf(context.Background(), "Environment overrides are invalid, falling back to built-in defaults: %v", err)

		cfg = builtinDefaults()
		_ = ValidateConfig(&cfg)
	}

	return &cfg
}

// LoadConfig loads configuration settings from a YAML file, environment variables and defaults.
// A missing default file is not an error, a missing explicitly named one is.
func LoadConfig(configFilename string) (*Config, error) {
	isExplicit := configFilename != ""
	if !isExplicit {
		configFilename = DefaultConfigFilename
	}

	v := newViper()
	v.SetConfigFile(configFilename)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError

		switch {
		case isExplicit:
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		case errors.As(err, &notFound), errors.Is(err, os.ErrNotExist):
			// Defaults and environment are enough.
		default:
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
//
//nolint:funlen,cyclop // Validation functions naturally have high complexity and length due to sequential checks.
func ValidateConfig(cfg *Config) error {
	var err error

	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)

	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil || baseURL.Host == "" || (baseURL.Scheme != "http" && baseURL.Scheme != "https") {
		return fmt.Errorf("%w: '%s'", ErrInvalidBaseURL, cfg.BaseURL)
	}

	// Actions are joined onto the base, so it must end with a slash.
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}

	cfg.AppID = strings.TrimSpace(cfg.AppID)
	if cfg.AppID == "" {
		return ErrEmptyAppID
	}

	cfg.TokenStore = strings.ToLower(strings.TrimSpace(cfg.TokenStore))
	if cfg.TokenStore == "" {
		cfg.TokenStore = TokenStoreAuto
	}

	if !slices.Contains(tokenStoreKinds, cfg.TokenStore) {
		return fmt.Errorf("%w: '%s', expected one of %s",
			ErrUnknownTokenStore, cfg.TokenStore, strings.Join(tokenStoreKinds, ", "))
	}

	cfg.ParsedTokenTTL, err = time.ParseDuration(cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("failed to parse token ttl: %w", err)
	}

	if cfg.ParsedTokenTTL <= 0 {
		return ErrInvalidTokenTTL
	}

	if cfg.AuthRetryAttempts <= 0 {
		return ErrInvalidAuthRetryAttempts
	}

	cfg.ParsedAuthRetryPause, err = time.ParseDuration(cfg.AuthRetryPause)
	if err != nil {
		return fmt.Errorf("failed to parse auth retry pause: %w", err)
	}

	if cfg.ParsedAuthRetryPause < 0 {
		return ErrInvalidAuthRetryPause
	}

	cfg.ParsedRequestTimeout, err = time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse request timeout: %w", err)
	}

	if cfg.ParsedRequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	if cfg.RequestsPerSecond < 0 || (cfg.RequestsPerSecond > 0 && cfg.RequestBurst <= 0) {
		return ErrInvalidRateLimit
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	cfg.ParsedMaxLogLength = DefaultMaxLogLength

	if maxLogLength := strings.TrimSpace(cfg.MaxLogLength); maxLogLength != "" {
		cfg.ParsedMaxLogLength, err = humanize.ParseBytes(maxLogLength)
		if err != nil {
			return fmt.Errorf("failed to parse max log length: %w", err)
		}
	}

	cfg.OutputFormat = strings.ToLower(strings.TrimSpace(cfg.OutputFormat))
	if !IsKnownOutputFormat(cfg.OutputFormat) {
		return fmt.Errorf("%w: '%s', expected one of %s",
			ErrUnknownOutputFormat, cfg.OutputFormat, strings.Join(outputFormats, ", "))
	}

	return nil
}

// IsKnownOutputFormat reports whether format is one of the supported renderings.
func IsKnownOutputFormat(format string) bool {
	return slices.Contains(outputFormats, format)
}

// SaveConfig writes the configuration to filename as commented YAML.
// Derived fields are not written.
func SaveConfig(cfg *Config, filename string) error {
	if filename == "" {
		filename = DefaultConfigFilename
	}

	var document yaml.Node
	if err := document.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	annotateConfigNode(&document)

	content, err := yaml.Marshal(&document)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = utils.WriteFileAtomic(filename, content, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// annotateConfigNode attaches short help comments to the known keys of a mapping node.
func annotateConfigNode(node *yaml.Node) {
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}

	if node.Kind != yaml.MappingNode {
		return
	}

	// Keys and values alternate in the content slice.
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		if comment, ok := configKeyComments[keyNode.Value]; ok {
			keyNode.HeadComment = comment
		}
	}
}

//nolint:gochecknoglobals // Read-only lookup table.
var configKeyComments = map[string]string{
	"base_url":            "Musixmatch desktop API root.",
	"token_store":         "Where the session token is kept: auto, file, bolt or none.",
	"token_cache_dir":     "Directory for the token cache, empty means the OS user cache directory.",
	"token_ttl":           "How long a session token is reused.",
	"auth_retry_attempts": "Token acquisition attempts when the upstream answers 401.",
	"requests_per_second": "Outgoing request rate, 0 disables the limit.",
	"log_level":           "debug, info, warn or error.",
	"max_log_length":      "Size limit of HTTP dumps at debug level.",
	"output_format":       "text, lrc, json or yaml.",
}

// builtinDefaults returns the configuration used when nothing else is provided.
func builtinDefaults() Config {
	return Config{
		BaseURL:           DefaultBaseURL,
		AppID:             DefaultAppID,
		UserAgent:         DefaultUserAgent,
		TokenStore:        TokenStoreAuto,
		TokenTTL:          DefaultTokenTTL,
		AuthRetryAttempts: DefaultAuthRetryAttempts,
		AuthRetryPause:    DefaultAuthRetryPause,
		RequestTimeout:    DefaultRequestTimeout,
		RequestsPerSecond: DefaultRequestsPerSecond,
		RequestBurst:      DefaultRequestBurst,
		LogLevel:          DefaultLogLevel,
		MaxLogLength:      humanize.IBytes(DefaultMaxLogLength),
		OutputFormat:      OutputFormatText,
	}
}

// newViper creates a viper instance preloaded with defaults and environment bindings.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	defaults := builtinDefaults()

	v.SetDefault("base_url", defaults.BaseURL)
	v.SetDefault("app_id", defaults.AppID)
	v.SetDefault("user_agent", defaults.UserAgent)
	v.SetDefault("token_store", defaults.TokenStore)
	v.SetDefault("token_cache_dir", defaults.TokenCacheDir)
	v.SetDefault("token_ttl", defaults.TokenTTL)
	v.SetDefault("auth_retry_attempts", defaults.AuthRetryAttempts)
	v.SetDefault("auth_retry_pause", defaults.AuthRetryPause)
	v.SetDefault("request_timeout", defaults.RequestTimeout)
	v.SetDefault("requests_per_second", defaults.RequestsPerSecond)
	v.SetDefault("request_burst", defaults.RequestBurst)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("max_log_length", defaults.MaxLogLength)
	v.SetDefault("output_format", defaults.OutputFormat)

	return v
}

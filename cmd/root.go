package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/syncedlyrics/internal/config"
	"github.com/oshokin/syncedlyrics/internal/logger"
	"github.com/oshokin/syncedlyrics/internal/version"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "syncedlyrics",
		Short: "Fetch plain and time-synced lyrics from Musixmatch.",
		Long: `syncedlyrics is a CLI tool for fetching song lyrics from Musixmatch.
It can:
- Look lyrics up by ISRC or by a free-text search
- Prefer word-level or line-level synced lyrics and fall back to plain text
- Print them as text, LRC, JSON or YAML
- Process a list of tracks in one run
- Embed lyrics into FLAC and MP3 tags

The Musixmatch session token is acquired automatically and cached between runs.`,
		Version:          version.Short(),
		SilenceUsage:     true,
		PersistentPreRun: initConfig,
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmdFlags := rootCmd.PersistentFlags()

	rootCmdFlags.StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmdFlags.StringP(
		"format",
		"f",
		"",
		"output format: text, lrc, json or yaml.")

	rootCmdFlags.String(
		"log-level",
		"",
		"log verbosity: debug, info, warn or error.")

	rootCmdFlags.String(
		"token-store",
		"",
		"where the session token is cached: auto, file, bolt or none.")

	rootCmdFlags.String(
		"cache-dir",
		"",
		"directory for the session token cache (default is the user cache directory).")

	rootCmdFlags.String(
		"timeout",
		"",
		"timeout of a single request to Musixmatch, for example: 10s, 1m.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	if err = bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("format"); flag != nil && flag.Changed {
		cfg.OutputFormat, _ = flags.GetString("format")
	}

	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if flag := flags.Lookup("token-store"); flag != nil && flag.Changed {
		cfg.TokenStore, _ = flags.GetString("token-store")
	}

	if flag := flags.Lookup("cache-dir"); flag != nil && flag.Changed {
		cfg.TokenCacheDir, _ = flags.GetString("cache-dir")
	}

	if flag := flags.Lookup("timeout"); flag != nil && flag.Changed {
		cfg.RequestTimeout, _ = flags.GetString("timeout")
	}

	return config.ValidateConfig(cfg)
}

package app

import (
	"context"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/syncedlyrics/internal/config"
	"github.com/oshokin/syncedlyrics/internal/logger"
	"github.com/oshokin/syncedlyrics/internal/utils"
)

// ExecuteConfigInitCommand writes a configuration file filled with the defaults.
// An existing file is kept unless force is set.
func ExecuteConfigInitCommand(ctx context.Context, filename string, force bool) {
	if filename == "" {
		filename = config.DefaultConfigFilename
	}

	exists, err := utils.IsFileExist(filename)
	if err != nil {
		logger.Fatalf(ctx, "Failed to check %s: %v", filename, err)
	}

	if exists && !force {
		logger.Fatalf(ctx, "%s already exists, use --force to overwrite it", filename)
	}

	if err = config.SaveConfig(config.Default(), filename); err != nil {
		logger.Fatalf(ctx, "Failed to save configuration: %v", err)
	}

	logger.Infof(ctx, "Configuration written to %s", filename)
}

// ExecuteConfigShowCommand prints the effective configuration as YAML,
// after the file, the environment and the command line flags were applied.
func ExecuteConfigShowCommand(ctx context.Context, cfg *config.Config) {
	output, err := yaml.Marshal(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to encode configuration: %v", err)
	}

	writeOutput(ctx, "", output)
}

package app

import (
	"context"
	"os"
	"strings"

	"github.com/oshokin/syncedlyrics/internal/config"
	"github.com/oshokin/syncedlyrics/internal/constants"
	"github.com/oshokin/syncedlyrics/internal/logger"
	"github.com/oshokin/syncedlyrics/internal/service/lyrics"
	"github.com/oshokin/syncedlyrics/internal/utils"
)

// LyricsRequest describes a single lookup.
type LyricsRequest struct {
	// Query is the free-text search, used when ISRC is empty.
	Query string
	// ISRC selects the track directly.
	ISRC string
	// Synced asks for timed lyrics with a plain lyrics fallback.
	Synced bool
	// OutputPath is the file to write, stdout when empty.
	OutputPath string
}

// ExecuteLyricsCommand looks the lyrics up and writes them in the configured format.
func ExecuteLyricsCommand(ctx context.Context, cfg *config.Config, req *LyricsRequest) {
	service := lyrics.NewService(newClient(ctx, cfg))

	var result *lyrics.Result

	switch {
	case strings.TrimSpace(req.ISRC) != "":
		isrc, ok := normalizeISRC(req.ISRC)
		if !ok {
			logger.Warnf(ctx, "%q does not look like an ISRC, trying it anyway", req.ISRC)
		}

		result = lookupByISRC(ctx, service, isrc, req.Synced)
	case strings.TrimSpace(req.Query) != "":
		result = lookupByQuery(ctx, service, strings.TrimSpace(req.Query), req.Synced)
	default:
		logger.Fatal(ctx, "Either a search query or an ISRC is required")
	}

	output, err := RenderResult(result, cfg.OutputFormat)
	if err != nil {
		logger.Fatalf(ctx, "Failed to get lyrics: %v", err)
	}

	writeOutput(ctx, req.OutputPath, output)

	if !result.Success {
		logger.Fatalf(ctx, "Failed to get lyrics: %s", result.Error)
	}
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(ctx context.Context, path string, data []byte) {
	if path == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			logger.Fatalf(ctx, "Failed to write output: %v", err)
		}

		return
	}

	if err := utils.WriteFileAtomic(path, data, constants.DefaultFilePermissions); err != nil {
		logger.Fatalf(ctx, "Failed to write %s: %v", path, err)
	}

	logger.Infof(ctx, "Saved to %s", path)
}

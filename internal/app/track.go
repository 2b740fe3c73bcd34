package app

import (
	"context"

	"github.com/oshokin/syncedlyrics/internal/config"
	"github.com/oshokin/syncedlyrics/internal/logger"
	"github.com/oshokin/syncedlyrics/internal/service/lyrics"
)

// ExecuteTrackCommand prints the metadata of the track with the ISRC.
func ExecuteTrackCommand(ctx context.Context, cfg *config.Config, isrc string) {
	normalized, ok := normalizeISRC(isrc)
	if !ok {
		logger.Warnf(ctx, "%q does not look like an ISRC, trying it anyway", isrc)
	}

	service := lyrics.NewService(newClient(ctx, cfg))

	track, err := service.GetTrackByISRC(ctx, normalized)
	if err != nil {
		logger.Fatalf(ctx, "Failed to get track: %v", err)
	}

	output, err := RenderTrack(track, cfg.OutputFormat)
	if err != nil {
		logger.Fatalf(ctx, "Failed to render track: %v", err)
	}

	writeOutput(ctx, "", output)
}

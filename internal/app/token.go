package app

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/oshokin/syncedlyrics/internal/client/musixmatch"
	"github.com/oshokin/syncedlyrics/internal/config"
	"github.com/oshokin/syncedlyrics/internal/logger"
)

// visibleTokenChars is how many characters of each end of a token are shown.
const visibleTokenChars = 4

// ExecuteTokenStatusCommand reports the session token the client would use.
func ExecuteTokenStatusCommand(ctx context.Context, cfg *config.Config) {
	logTokenStatus(ctx, newClient(ctx, cfg).TokenStatus(ctx))
}

// ExecuteTokenRefreshCommand discards the current token and acquires a new one.
func ExecuteTokenRefreshCommand(ctx context.Context, cfg *config.Config) {
	client := newClient(ctx, cfg)

	if _, err := client.RefreshToken(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to refresh token: %v", err)
	}

	logger.Info(ctx, "Token refreshed")
	logTokenStatus(ctx, client.TokenStatus(ctx))
}

// ExecuteTokenClearCommand removes the cached token.
func ExecuteTokenClearCommand(ctx context.Context, cfg *config.Config) {
	if err := newClient(ctx, cfg).InvalidateToken(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to clear token: %v", err)
	}

	logger.Info(ctx, "Token cache cleared")
}

func logTokenStatus(ctx context.Context, status *musixmatch.TokenStatus) {
	if status.StoreLocation == "" {
		logger.Info(ctx, "Token store: none, tokens are kept in memory only")
	} else {
		logger.Infof(ctx, "Token store: %s", status.StoreLocation)
	}

	if status.Token == nil {
		logger.Info(ctx, "No token cached, one is requested on the next lookup")

		return
	}

	expiresAt := status.Token.ExpiresAt()

	logger.Infof(ctx, "Token:       %s (from %s)", maskToken(status.Token.Value), status.Source)
	logger.Infof(ctx, "Expires:     %s (%s)", expiresAt.Format(time.RFC3339), humanize.Time(expiresAt))

	if status.Valid {
		logger.Info(ctx, "Status:      valid")
	} else {
		logger.Info(ctx, "Status:      expired, a new one is requested on the next lookup")
	}
}

// maskToken keeps only both ends of a token.
func maskToken(token string) string {
	if len(token) <= 2*visibleTokenChars {
		return "***"
	}

	return token[:visibleTokenChars] + "…" + token[len(token)-visibleTokenChars:]
}

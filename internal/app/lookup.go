package app

import (
	"context"
	"regexp"
	"strings"

	"github.com/oshokin/syncedlyrics/internal/client/musixmatch"
	"github.com/oshokin/syncedlyrics/internal/config"
	"github.com/oshokin/syncedlyrics/internal/logger"
	"github.com/oshokin/syncedlyrics/internal/service/lyrics"
)

// isrcPattern matches a normalized ISRC: country, registrant, year and designation.
//
//nolint:gochecknoglobals // This is immutable, pre-compiled regex pattern and used as a constant.
var isrcPattern = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{3}\d{7}$`)

// normalizeISRC uppercases s and strips dashes, reporting whether the result is an ISRC.
func normalizeISRC(s string) (string, bool) {
	isrc := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", ""))

	return isrc, isrcPattern.MatchString(isrc)
}

// lookupEntry treats entry as an ISRC when it looks like one and as a search query otherwise.
func lookupEntry(ctx context.Context, service lyrics.Service, entry string, isSynced bool) *lyrics.Result {
	if isrc, ok := normalizeISRC(entry); ok {
		return lookupByISRC(ctx, service, isrc, isSynced)
	}

	return lookupByQuery(ctx, service, entry, isSynced)
}

func lookupByISRC(ctx context.Context, service lyrics.Service, isrc string, isSynced bool) *lyrics.Result {
	if isSynced {
		return service.GetSyncedLyricsByISRC(ctx, isrc)
	}

	return service.GetLyricsByISRC(ctx, isrc)
}

func lookupByQuery(ctx context.Context, service lyrics.Service, query string, isSynced bool) *lyrics.Result {
	if isSynced {
		return service.SearchAndGetSyncedLyrics(ctx, query)
	}

	return service.SearchAndGetLyrics(ctx, query)
}

// newClient creates the Musixmatch client or stops the process.
func newClient(ctx context.Context, cfg *config.Config) musixmatch.Client {
	client, err := musixmatch.NewClient(ctx, cfg, nil, nil)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Musixmatch client: %v", err)
	}

	return client
}

package lyrics

import (
	"context"
	"errors"

	"github.com/oshokin/syncedlyrics/internal/client/musixmatch"
	"github.com/oshokin/syncedlyrics/internal/logger"
	"github.com/oshokin/syncedlyrics/internal/synced"
)

// syncedFormat is one timed lyrics format the upstream offers.
type syncedFormat struct {
	name  string
	fetch func(ctx context.Context, trackID int64) (string, error)
	parse func(body string) []synced.Line
}

// syncedFormats lists the formats in order of preference, word-level timing first.
func (s *ServiceImpl) syncedFormats() []syncedFormat {
	return []syncedFormat{
		{
			name: "richsync",
			fetch: func(ctx context.Context, trackID int64) (string, error) {
				richSync, err := s.client.GetRichSync(ctx, trackID)
				if err != nil {
					return "", err
				}

				return richSync.Body, nil
			},
			parse: synced.ParseRichSync,
		},
		{
			name: "subtitle",
			fetch: func(ctx context.Context, trackID int64) (string, error) {
				subtitle, err := s.client.GetSubtitle(ctx, trackID)
				if err != nil {
					return "", err
				}

				return subtitle.Body, nil
			},
			parse: synced.ParseSubtitle,
		},
	}
}

// syncedLyrics tries every timed format and falls back to plain lyrics.
func (s *ServiceImpl) syncedLyrics(ctx context.Context, track *musixmatch.Track) *Result {
	for _, format := range s.syncedFormats() {
		result := tryFormat(ctx, format, track.ID)

		logger.Debugf(ctx, "Track %d %s: %s", track.ID, format.name, result.outcome)

		switch result.outcome {
		case outcomeFound:
			return &Result{
				Success:       true,
				SyncedLyrics:  result.lines,
				HasTimestamps: true,
				SongInfo:      newSongInfo(track),
			}
		case outcomeFailed:
			logger.Debugf(ctx, "Track %d %s request failed: %v", track.ID, format.name, result.err)
		case outcomeUnavailable, outcomeEmpty:
		}
	}

	return s.plainLyrics(ctx, track, reasonNoLyricsFound)
}

func tryFormat(ctx context.Context, format syncedFormat, trackID int64) attempt {
	body, err := format.fetch(ctx, trackID)

	switch {
	case errors.Is(err, musixmatch.ErrNotFound):
		return attempt{outcome: outcomeUnavailable}
	case err != nil:
		return attempt{outcome: outcomeFailed, err: err}
	}

	lines := format.parse(body)
	if len(lines) == 0 {
		return attempt{outcome: outcomeEmpty}
	}

	return attempt{outcome: outcomeFound, lines: lines}
}

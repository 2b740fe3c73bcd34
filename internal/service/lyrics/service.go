package lyrics

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/oshokin/syncedlyrics/internal/client/musixmatch"
	"github.com/oshokin/syncedlyrics/internal/config"
	"github.com/oshokin/syncedlyrics/internal/logger"
)

// Service resolves tracks and fetches their lyrics.
// Lyrics operations never return an error, failures are reported in the Result.
type Service interface {
	// GetLyricsByISRC returns the plain lyrics of the track with the ISRC.
	GetLyricsByISRC(ctx context.Context, isrc string) *Result
	// SearchAndGetLyrics returns the plain lyrics of the best match for query.
	SearchAndGetLyrics(ctx context.Context, query string) *Result
	// GetSyncedLyricsByISRC returns timed lyrics of the track with the ISRC,
	// falling back to plain lyrics.
	GetSyncedLyricsByISRC(ctx context.Context, isrc string) *Result
	// SearchAndGetSyncedLyrics returns timed lyrics of the best match for query,
	// falling back to plain lyrics.
	SearchAndGetSyncedLyrics(ctx context.Context, query string) *Result
	// GetTrackByISRC returns the track with the ISRC.
	GetTrackByISRC(ctx context.Context, isrc string) (*musixmatch.Track, error)
}

// ServiceImpl implements Service on top of a Musixmatch client.
type ServiceImpl struct {
	// client talks to the upstream. It owns the session token.
	client musixmatch.Client
}

// NewService creates an independent service. Each client holds its own token.
func NewService(client musixmatch.Client) Service {
	return &ServiceImpl{client: client}
}

//nolint:gochecknoglobals // Shared instance, built on first use.
var defaultService = sync.OnceValues(func() (Service, error) {
	ctx := context.Background()

	client, err := musixmatch.NewClient(ctx, config.Default(), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create default client: %w", err)
	}

	return NewService(client), nil
})

// Default returns the process-wide service built from config.Default.
func Default() (Service, error) {
	return defaultService()
}

// GetTrackByISRC returns the track with the ISRC.
// Unlike the lyrics operations, failures are returned as errors.
func (s *ServiceImpl) GetTrackByISRC(ctx context.Context, isrc string) (*musixmatch.Track, error) {
	track, err := s.client.GetTrackByISRC(ctx, isrc)
	if err != nil {
		if errors.Is(err, musixmatch.ErrNotFound) {
			return nil, fmt.Errorf("%w for ISRC %s: %w", ErrTrackNotFound, isrc, err)
		}

		return nil, err
	}

	return track, nil
}

// GetLyricsByISRC returns the plain lyrics of the track with the ISRC.
func (s *ServiceImpl) GetLyricsByISRC(ctx context.Context, isrc string) *Result {
	track, result := s.resolveByISRC(ctx, isrc)
	if result != nil {
		return result
	}

	return s.plainLyrics(ctx, track, reasonLyricsNotFound)
}

// SearchAndGetLyrics returns the plain lyrics of the best match for query.
func (s *ServiceImpl) SearchAndGetLyrics(ctx context.Context, query string) *Result {
	track, result := s.resolveByQuery(ctx, query)
	if result != nil {
		return result
	}

	return s.plainLyrics(ctx, track, reasonLyricsNotFound)
}

// GetSyncedLyricsByISRC returns timed lyrics of the track with the ISRC.
func (s *ServiceImpl) GetSyncedLyricsByISRC(ctx context.Context, isrc string) *Result {
	track, result := s.resolveByISRC(ctx, isrc)
	if result != nil {
		return result
	}

	return s.syncedLyrics(ctx, track)
}

// SearchAndGetSyncedLyrics returns timed lyrics of the best match for query.
func (s *ServiceImpl) SearchAndGetSyncedLyrics(ctx context.Context, query string) *Result {
	track, result := s.resolveByQuery(ctx, query)
	if result != nil {
		return result
	}

	return s.syncedLyrics(ctx, track)
}

// resolveByISRC looks the track up, returning a failure result when it cannot.
func (s *ServiceImpl) resolveByISRC(ctx context.Context, isrc string) (*musixmatch.Track, *Result) {
	track, err := s.client.GetTrackByISRC(ctx, isrc)
	if err == nil {
		logger.Debugf(ctx, "ISRC %s resolved to track %d: %s - %s", isrc, track.ID, track.ArtistName, track.Name)

		return track, nil
	}

	if errors.Is(err, musixmatch.ErrNotFound) {
		return nil, failure(reasonTrackNotFound+isrc, nil)
	}

	logger.Errorf(ctx, "Failed to look up ISRC %s: %v", isrc, err)

	return nil, failure(errorReason(err), nil)
}

// resolveByQuery takes the best rated search match, returning a failure result when there is none.
func (s *ServiceImpl) resolveByQuery(ctx context.Context, query string) (*musixmatch.Track, *Result) {
	tracks, err := s.client.SearchTracks(ctx, query, musixmatch.DefaultSearchPageSize)

	switch {
	case errors.Is(err, musixmatch.ErrNotFound), err == nil && len(tracks) == 0:
		return nil, failure(reasonNoTracksFound+query, nil)
	case err != nil:
		logger.Errorf(ctx, "Failed to search for %q: %v", query, err)

		return nil, failure(errorReason(err), nil)
	}

	track := tracks[0]

	logger.Debugf(ctx, "Query %q resolved to track %d: %s - %s", query, track.ID, track.ArtistName, track.Name)

	return track, nil
}

// plainLyrics fetches the plain lyrics. notFound is the reason used when the track has none.
func (s *ServiceImpl) plainLyrics(ctx context.Context, track *musixmatch.Track, notFound string) *Result {
	info := newSongInfo(track)

	lyrics, err := s.client.GetLyrics(ctx, track.ID)
	if err != nil {
		if errors.Is(err, musixmatch.ErrNotFound) {
			return failure(notFound, info)
		}

		logger.Errorf(ctx, "Failed to get lyrics of track %d: %v", track.ID, err)

		return failure(errorReason(err), info)
	}

	return &Result{
		Success:       true,
		Lyrics:        lyrics.Body,
		HasTimestamps: false,
		SongInfo:      info,
	}
}

func errorReason(err error) string {
	if err == nil || err.Error() == "" {
		return reasonUnknownFailure
	}

	return err.Error()
}

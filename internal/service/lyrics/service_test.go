package lyrics

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oshokin/syncedlyrics/internal/client/musixmatch"
	mock_musixmatch "github.com/oshokin/syncedlyrics/internal/client/musixmatch/mocks"
	"github.com/oshokin/syncedlyrics/internal/synced"
)

const testISRC = "GBUM71029604"

func testTrack() *musixmatch.Track {
	return &musixmatch.Track{
		ID:         15953433,
		Name:       "Bohemian Rhapsody",
		ArtistName: "Queen",
		AlbumName:  "A Night at the Opera",
		Length:     355,
		ISRC:       testISRC,
	}
}

func testSongInfo() *SongInfo {
	return &SongInfo{
		Title:    "Bohemian Rhapsody",
		Artist:   "Queen",
		Album:    "A Night at the Opera",
		Duration: 355,
	}
}

func notFound(action string) error {
	return &musixmatch.StatusError{Action: action, StatusCode: 404, Err: musixmatch.ErrNotFound}
}

// TestGetSyncedLyricsByISRC tests the richsync, subtitle and plain lyrics chain.
func TestGetSyncedLyricsByISRC(t *testing.T) {
	t.Parallel()

	richSyncBody := `[{"ts":"1.0","l":[{"c":"Hi"}]},{"ts":"1.0","l":[{"c":"there"}]}]`
	subtitleBody := "[00:12.50] Hello\n[00:12.50] world\n[00:05.00] Intro"

	tests := []struct {
		name     string
		setup    func(client *mock_musixmatch.MockClient)
		expected *Result
	}{
		{
			name: "richsync found",
			setup: func(client *mock_musixmatch.MockClient) {
				client.EXPECT().GetRichSync(gomock.Any(), int64(15953433)).
					Return(&musixmatch.RichSync{Body: richSyncBody}, nil)
			},
			expected: &Result{
				Success: true,
				SyncedLyrics: []synced.Line{
					{Text: "Hi there", Time: synced.Time{Total: 1, Minutes: 0, Seconds: 1, MS: 0}},
				},
				HasTimestamps: true,
				SongInfo:      testSongInfo(),
			},
		},
		{
			name: "richsync unavailable, subtitle found",
			setup: func(client *mock_musixmatch.MockClient) {
				client.EXPECT().GetRichSync(gomock.Any(), gomock.Any()).Return(nil, notFound("track.richsync.get"))
				client.EXPECT().GetSubtitle(gomock.Any(), int64(15953433)).
					Return(&musixmatch.Subtitle{Body: subtitleBody}, nil)
			},
			expected: &Result{
				Success: true,
				SyncedLyrics: []synced.Line{
					{Text: "Intro", Time: synced.Time{Total: 5, Minutes: 0, Seconds: 5, MS: 0}},
					{Text: "Hello world", Time: synced.Time{Total: 12.5, Minutes: 0, Seconds: 12, MS: 500}},
				},
				HasTimestamps: true,
				SongInfo:      testSongInfo(),
			},
		},
		{
			name: "richsync request fails, subtitle found",
			setup: func(client *mock_musixmatch.MockClient) {
				client.EXPECT().GetRichSync(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
				client.EXPECT().GetSubtitle(gomock.Any(), gomock.Any()).
					Return(&musixmatch.Subtitle{Body: "[00:05.00] Intro"}, nil)
			},
			expected: &Result{
				Success: true,
				SyncedLyrics: []synced.Line{
					{Text: "Intro", Time: synced.Time{Total: 5, Minutes: 0, Seconds: 5, MS: 0}},
				},
				HasTimestamps: true,
				SongInfo:      testSongInfo(),
			},
		},
		{
			name: "richsync malformed, subtitle empty, plain lyrics found",
			setup: func(client *mock_musixmatch.MockClient) {
				client.EXPECT().GetRichSync(gomock.Any(), gomock.Any()).Return(&musixmatch.RichSync{Body: "{oops"}, nil)
				client.EXPECT().GetSubtitle(gomock.Any(), gomock.Any()).Return(&musixmatch.Subtitle{Body: "no timestamps"}, nil)
				client.EXPECT().GetLyrics(gomock.Any(), int64(15953433)).
					Return(&musixmatch.Lyrics{Body: "Is this the real life?"}, nil)
			},
			expected: &Result{
				Success:       true,
				Lyrics:        "Is this the real life?",
				HasTimestamps: false,
				SongInfo:      testSongInfo(),
			},
		},
		{
			name: "nothing available",
			setup: func(client *mock_musixmatch.MockClient) {
				client.EXPECT().GetRichSync(gomock.Any(), gomock.Any()).Return(nil, notFound("track.richsync.get"))
				client.EXPECT().GetSubtitle(gomock.Any(), gomock.Any()).Return(nil, notFound("track.subtitle.get"))
				client.EXPECT().GetLyrics(gomock.Any(), gomock.Any()).Return(nil, notFound("track.lyrics.get"))
			},
			expected: &Result{
				Success:  false,
				Error:    "No lyrics found for this track",
				SongInfo: testSongInfo(),
			},
		},
		{
			name: "plain lyrics request fails",
			setup: func(client *mock_musixmatch.MockClient) {
				client.EXPECT().GetRichSync(gomock.Any(), gomock.Any()).Return(nil, notFound("track.richsync.get"))
				client.EXPECT().GetSubtitle(gomock.Any(), gomock.Any()).Return(nil, notFound("track.subtitle.get"))
				client.EXPECT().GetLyrics(gomock.Any(), gomock.Any()).Return(nil, errors.New("network is unreachable"))
			},
			expected: &Result{
				Success:  false,
				Error:    "network is unreachable",
				SongInfo: testSongInfo(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			client := mock_musixmatch.NewMockClient(ctrl)

			client.EXPECT().GetTrackByISRC(gomock.Any(), testISRC).Return(testTrack(), nil)
			tt.setup(client)

			result := NewService(client).GetSyncedLyricsByISRC(context.Background(), testISRC)

			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestGetSyncedLyricsByISRC_TrackErrors tests failures before any lyrics request.
func TestGetSyncedLyricsByISRC_TrackErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected *Result
	}{
		{
			name:     "unknown isrc",
			err:      notFound("track.get"),
			expected: &Result{Success: false, Error: "Track not found for ISRC: " + testISRC},
		},
		{
			name:     "authentication failure",
			err:      musixmatch.ErrAuthenticationFailed,
			expected: &Result{Success: false, Error: "authentication failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			client := mock_musixmatch.NewMockClient(ctrl)

			client.EXPECT().GetTrackByISRC(gomock.Any(), testISRC).Return(nil, tt.err)

			assert.Equal(t, tt.expected, NewService(client).GetSyncedLyricsByISRC(context.Background(), testISRC))
		})
	}
}

// TestSearchAndGetSyncedLyrics tests lookups by free-text query.
func TestSearchAndGetSyncedLyrics(t *testing.T) {
	t.Parallel()

	t.Run("zero results", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		client := mock_musixmatch.NewMockClient(ctrl)

		client.EXPECT().SearchTracks(gomock.Any(), "unknown song", musixmatch.DefaultSearchPageSize).
			Return([]*musixmatch.Track{}, nil)

		result := NewService(client).SearchAndGetSyncedLyrics(context.Background(), "unknown song")

		assert.Equal(t, &Result{Success: false, Error: "No tracks found for query: unknown song"}, result)
	})

	t.Run("search rejected", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		client := mock_musixmatch.NewMockClient(ctrl)

		client.EXPECT().SearchTracks(gomock.Any(), "queen", gomock.Any()).Return(nil, notFound("track.search"))

		result := NewService(client).SearchAndGetSyncedLyrics(context.Background(), "queen")

		assert.False(t, result.Success)
		assert.Equal(t, "No tracks found for query: queen", result.Error)
	})

	t.Run("best match has subtitles", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		client := mock_musixmatch.NewMockClient(ctrl)

		client.EXPECT().SearchTracks(gomock.Any(), "queen bohemian", gomock.Any()).
			Return([]*musixmatch.Track{testTrack()}, nil)
		client.EXPECT().GetRichSync(gomock.Any(), gomock.Any()).Return(&musixmatch.RichSync{Body: "[]"}, nil)
		client.EXPECT().GetSubtitle(gomock.Any(), gomock.Any()).
			Return(&musixmatch.Subtitle{Body: "[00:01.00] Mama"}, nil)

		result := NewService(client).SearchAndGetSyncedLyrics(context.Background(), "queen bohemian")

		require.True(t, result.Success)
		assert.True(t, result.HasTimestamps)
		assert.Empty(t, result.Lyrics)
		require.Len(t, result.SyncedLyrics, 1)
		assert.Equal(t, "Mama", result.SyncedLyrics[0].Text)
		assert.Equal(t, testSongInfo(), result.SongInfo)
	})
}

// TestPlainLyricsVariants tests that plain lookups skip the timed formats.
func TestPlainLyricsVariants(t *testing.T) {
	t.Parallel()

	t.Run("by isrc", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		client := mock_musixmatch.NewMockClient(ctrl)

		client.EXPECT().GetTrackByISRC(gomock.Any(), testISRC).Return(testTrack(), nil)
		client.EXPECT().GetLyrics(gomock.Any(), int64(15953433)).Return(&musixmatch.Lyrics{Body: "Mama"}, nil)

		result := NewService(client).GetLyricsByISRC(context.Background(), testISRC)

		assert.Equal(t, &Result{
			Success:  true,
			Lyrics:   "Mama",
			SongInfo: testSongInfo(),
		}, result)
	})

	t.Run("by query without lyrics", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		client := mock_musixmatch.NewMockClient(ctrl)

		client.EXPECT().SearchTracks(gomock.Any(), "instrumental", gomock.Any()).
			Return([]*musixmatch.Track{testTrack()}, nil)
		client.EXPECT().GetLyrics(gomock.Any(), gomock.Any()).Return(nil, notFound("track.lyrics.get"))

		result := NewService(client).SearchAndGetLyrics(context.Background(), "instrumental")

		assert.Equal(t, &Result{
			Success:  false,
			Error:    "Lyrics not found for this track",
			SongInfo: testSongInfo(),
		}, result)
	})
}

// TestGetTrackByISRC tests that the track accessor returns errors.
func TestGetTrackByISRC(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		client := mock_musixmatch.NewMockClient(ctrl)

		client.EXPECT().GetTrackByISRC(gomock.Any(), testISRC).Return(testTrack(), nil)

		track, err := NewService(client).GetTrackByISRC(context.Background(), testISRC)
		require.NoError(t, err)
		assert.Equal(t, testTrack(), track)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		client := mock_musixmatch.NewMockClient(ctrl)

		client.EXPECT().GetTrackByISRC(gomock.Any(), testISRC).Return(nil, notFound("track.get"))

		_, err := NewService(client).GetTrackByISRC(context.Background(), testISRC)
		require.ErrorIs(t, err, ErrTrackNotFound)
		require.ErrorIs(t, err, musixmatch.ErrNotFound)
	})

	t.Run("transport failure", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		client := mock_musixmatch.NewMockClient(ctrl)

		transportErr := errors.New("dial tcp: i/o timeout")
		client.EXPECT().GetTrackByISRC(gomock.Any(), testISRC).Return(nil, transportErr)

		_, err := NewService(client).GetTrackByISRC(context.Background(), testISRC)
		require.ErrorIs(t, err, transportErr)
		assert.NotErrorIs(t, err, ErrTrackNotFound)
	})
}

// TestResult_JSON tests the serialized field names.
func TestResult_JSON(t *testing.T) {
	t.Parallel()

	result := &Result{
		Success:       true,
		SyncedLyrics:  []synced.Line{{Text: "Hi", Time: synced.Time{Total: 1, Seconds: 1}}},
		HasTimestamps: true,
		SongInfo:      testSongInfo(),
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"success": true,
		"syncedLyrics": [{"text": "Hi", "time": {"total": 1, "minutes": 0, "seconds": 1, "ms": 0}}],
		"hasTimestamps": true,
		"songInfo": {"title": "Bohemian Rhapsody", "artist": "Queen", "album": "A Night at the Opera", "duration": 355}
	}`, string(data))

	data, err = json.Marshal(failure("No tracks found for query: x", nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success": false, "hasTimestamps": false, "error": "No tracks found for query: x"}`, string(data))
}

// TestResult_Render tests the LRC and text renderings.
func TestResult_Render(t *testing.T) {
	t.Parallel()

	timed := &Result{
		Success: true,
		SyncedLyrics: []synced.Line{
			{Text: "Intro", Time: synced.Time{Total: 5, Seconds: 5}},
			{Text: "Hello world", Time: synced.Time{Total: 12.5, Seconds: 12, MS: 500}},
		},
		HasTimestamps: true,
		SongInfo:      testSongInfo(),
	}

	assert.Equal(t,
		"[ti:Bohemian Rhapsody]\n[ar:Queen]\n[al:A Night at the Opera]\n[length:5:55]\n"+
			"[00:05.00]Intro\n[00:12.50]Hello world\n",
		timed.LRC())
	assert.Equal(t, "Intro\nHello world", timed.Text())

	plain := &Result{Success: true, Lyrics: "Mama\nJust killed a man"}

	assert.Equal(t, plain.Lyrics, plain.LRC())
	assert.Equal(t, plain.Lyrics, plain.Text())
}

// TestOutcome_String tests outcome names used in logs.
func TestOutcome_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "found", outcomeFound.String())
	assert.Equal(t, "unavailable", outcomeUnavailable.String())
	assert.Equal(t, "empty", outcomeEmpty.String())
	assert.Equal(t, "failed", outcomeFailed.String())
	assert.Equal(t, "unknown", outcome(42).String())
}

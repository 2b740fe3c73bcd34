package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oshokin/syncedlyrics/internal/constants"
	"github.com/oshokin/syncedlyrics/internal/service/lyrics"
	mock_lyrics "github.com/oshokin/syncedlyrics/internal/service/lyrics/mocks"
)

// TestNormalizeISRC tests the ISRC detection used to route batch entries.
func TestNormalizeISRC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
		isISRC   bool
	}{
		{input: "GBUM71029604", expected: "GBUM71029604", isISRC: true},
		{input: " gb-um7-10-29604 ", expected: "GBUM71029604", isISRC: true},
		{input: "USRC17607839", expected: "USRC17607839", isISRC: true},
		{input: "Queen Bohemian Rhapsody", expected: "QUEEN BOHEMIAN RHAPSODY", isISRC: false},
		{input: "GBUM7102960", expected: "GBUM7102960", isISRC: false},
		{input: "1BUM71029604", expected: "1BUM71029604", isISRC: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			isrc, ok := normalizeISRC(tt.input)
			assert.Equal(t, tt.expected, isrc)
			assert.Equal(t, tt.isISRC, ok)
		})
	}
}

// TestBatchFilename tests naming of batch output files.
func TestBatchFilename(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Queen - Bohemian Rhapsody.lrc", batchFilename("GBUM71029604", syncedResult()))
	assert.Equal(t, "Queen - Bohemian Rhapsody.txt", batchFilename("GBUM71029604", plainResult()))
	assert.Equal(t, "AC_DC - T.N.T.txt", batchFilename("x", &lyrics.Result{
		Success:  true,
		Lyrics:   "Oi",
		SongInfo: &lyrics.SongInfo{Title: "T.N.T", Artist: "AC/DC"},
	}))
	assert.Equal(t, "queen_ bohemian.txt", batchFilename("queen: bohemian", &lyrics.Result{Success: true, Lyrics: "x"}))
}

// TestBatchRunner tests routing, output files and statistics of a batch run.
func TestBatchRunner(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	service := mock_lyrics.NewMockService(ctrl)

	service.EXPECT().GetSyncedLyricsByISRC(gomock.Any(), "GBUM71029604").Return(syncedResult())
	service.EXPECT().SearchAndGetSyncedLyrics(gomock.Any(), "nirvana lithium").Return(&lyrics.Result{
		Success:  true,
		Lyrics:   "I'm so happy",
		SongInfo: &lyrics.SongInfo{Title: "Lithium", Artist: "Nirvana"},
	})
	service.EXPECT().SearchAndGetSyncedLyrics(gomock.Any(), "no such song").Return(&lyrics.Result{
		Error: "No tracks found for query: no such song",
	})

	outputDir := t.TempDir()
	runner := &batchRunner{service: service, outputDir: outputDir, isSynced: true}

	stats := newRunStatistics()
	runner.run(context.Background(), []string{"gbum71029604", "nirvana lithium", "no such song"}, stats)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Synced)
	assert.Equal(t, 1, stats.Plain)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, []RunFailure{{Entry: "no such song", Reason: "No tracks found for query: no such song"}}, stats.Failures)
	assert.False(t, stats.EndTime.IsZero())

	lrc, err := os.ReadFile(filepath.Join(outputDir, "Queen - Bohemian Rhapsody.lrc"))
	require.NoError(t, err)
	assert.Contains(t, string(lrc), "[ti:Bohemian Rhapsody]\n")
	assert.Contains(t, string(lrc), "[00:12.50]Is this the real life?\n")

	text, err := os.ReadFile(filepath.Join(outputDir, "Nirvana - Lithium.txt"))
	require.NoError(t, err)
	assert.Equal(t, "I'm so happy\n", string(text))
}

// TestBatchRunnerExistingFiles tests that existing files are skipped unless overwriting.
func TestBatchRunnerExistingFiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		isOverwrite bool
		expected    string
		skipped     int
	}{
		{name: "skip", isOverwrite: false, expected: "old", skipped: 1},
		{name: "overwrite", isOverwrite: true, expected: "Is this the real life?\nIs this just fantasy?\n", skipped: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			service := mock_lyrics.NewMockService(ctrl)
			service.EXPECT().GetLyricsByISRC(gomock.Any(), "GBUM71029604").Return(plainResult())

			outputDir := t.TempDir()
			path := filepath.Join(outputDir, "Queen - Bohemian Rhapsody.txt")
			require.NoError(t, os.WriteFile(path, []byte("old"), constants.DefaultFilePermissions))

			runner := &batchRunner{service: service, outputDir: outputDir, isOverwrite: tt.isOverwrite}

			stats := newRunStatistics()
			runner.run(context.Background(), []string{"GBUM71029604"}, stats)

			assert.Equal(t, tt.skipped, stats.Skipped)

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(content))
		})
	}
}

// TestBatchRunnerCanceled tests that a canceled context stops the run before any lookup.
func TestBatchRunnerCanceled(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	service := mock_lyrics.NewMockService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := &batchRunner{service: service, outputDir: t.TempDir()}

	stats := newRunStatistics()
	runner.run(ctx, []string{"GBUM71029604", "queen"}, stats)

	assert.Zero(t, stats.Total)
}

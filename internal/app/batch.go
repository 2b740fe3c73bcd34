package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oshokin/syncedlyrics/internal/config"
	"github.com/oshokin/syncedlyrics/internal/constants"
	"github.com/oshokin/syncedlyrics/internal/logger"
	"github.com/oshokin/syncedlyrics/internal/service/lyrics"
	"github.com/oshokin/syncedlyrics/internal/utils"
)

// BatchRequest describes a batch run.
type BatchRequest struct {
	// InputPath is a text file with one ISRC or search query per line.
	InputPath string
	// OutputDir receives one lyrics file per entry.
	OutputDir string
	// Synced asks for timed lyrics with a plain lyrics fallback.
	Synced bool
	// Overwrite replaces lyrics files that already exist.
	Overwrite bool
}

type batchRunner struct {
	service     lyrics.Service
	outputDir   string
	isSynced    bool
	isOverwrite bool
	hasProgress bool
}

// ExecuteBatchCommand fetches lyrics for every entry of the input file.
func ExecuteBatchCommand(ctx context.Context, cfg *config.Config, req *BatchRequest) {
	entries, err := utils.ReadUniqueLinesFromFile(req.InputPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read %s: %v", req.InputPath, err)
	}

	if len(entries) == 0 {
		logger.Fatalf(ctx, "%s has no entries", req.InputPath)
	}

	outputDir := req.OutputDir
	if outputDir == "" {
		outputDir = "."
	}

	if err = os.MkdirAll(outputDir, constants.DefaultFolderPermissions); err != nil {
		logger.Fatalf(ctx, "Failed to create %s: %v", outputDir, err)
	}

	runner := &batchRunner{
		service:     lyrics.NewService(newClient(ctx, cfg)),
		outputDir:   outputDir,
		isSynced:    req.Synced,
		isOverwrite: req.Overwrite,
		hasProgress: true,
	}

	stats := newRunStatistics()

	// Statistics are printed even when a lookup panics.
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf(ctx, "Panic recovered: %v", r)
		}

		printRunSummary(ctx, "LYRICS SUMMARY", stats)
	}()

	runner.run(ctx, entries, stats)
}

func (r *batchRunner) run(ctx context.Context, entries []string, stats *RunStatistics) {
	defer stats.finish()

	bar := newProgressBar(len(entries), "Fetching lyrics", r.hasProgress)
	defer finishProgressBar(bar)

	for _, entry := range entries {
		if ctx.Err() != nil {
			break
		}

		r.process(ctx, stats, entry)
		advanceProgressBar(bar)
	}
}

func (r *batchRunner) process(ctx context.Context, stats *RunStatistics, entry string) {
	result := lookupEntry(ctx, r.service, entry, r.isSynced)
	if !result.Success {
		logger.Debugf(ctx, "No lyrics for %q: %s", entry, result.Error)
		stats.recordFailure(entry, result.Error)

		return
	}

	path := filepath.Join(r.outputDir, batchFilename(entry, result))

	if !r.isOverwrite {
		exists, err := utils.IsFileExist(path)
		if err != nil {
			stats.recordFailure(entry, err.Error())

			return
		}

		if exists {
			logger.Debugf(ctx, "Skipping %s, file already exists", path)
			stats.recordSkipped()

			return
		}
	}

	content := result.Text()
	if result.HasTimestamps {
		content = result.LRC()
	}

	err := utils.WriteFileAtomic(path, []byte(withTrailingNewline(content)), constants.DefaultFilePermissions)
	if err != nil {
		stats.recordFailure(entry, fmt.Sprintf("failed to write %s: %v", path, err))

		return
	}

	logger.Debugf(ctx, "Saved %s", path)
	stats.recordSuccess(result)
}

// batchFilename names the lyrics file after the resolved track, falling back to the entry itself.
// Timed lyrics get the LRC extension, plain ones the text extension.
func batchFilename(entry string, result *lyrics.Result) string {
	name := entry
	if result.SongInfo != nil && result.SongInfo.Title != "" {
		name = result.SongInfo.Title
		if result.SongInfo.Artist != "" {
			name = result.SongInfo.Artist + " - " + name
		}
	}

	extension := constants.ExtensionTXT
	if result.HasTimestamps {
		extension = constants.ExtensionLRC
	}

	return utils.SetFileExtension(utils.SanitizeFilename(name), extension, false)
}

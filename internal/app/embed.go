package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/oshokin/syncedlyrics/internal/config"
	"github.com/oshokin/syncedlyrics/internal/logger"
	"github.com/oshokin/syncedlyrics/internal/service/lyrics"
	"github.com/oshokin/syncedlyrics/internal/service/tags"
)

// ErrNoTrackIdentity indicates that the file tags carry neither an ISRC nor an artist and title.
var ErrNoTrackIdentity = errors.New("file has no ISRC, artist or title tags")

// EmbedRequest describes an embed run.
type EmbedRequest struct {
	// Paths are audio files or folders searched recursively for them.
	Paths []string
	// Synced asks for timed lyrics with a plain lyrics fallback.
	Synced bool
}

type embedRunner struct {
	service     lyrics.Service
	processor   tags.Processor
	isSynced    bool
	hasProgress bool
}

// ExecuteEmbedCommand writes lyrics into the tags of every supported audio file.
func ExecuteEmbedCommand(ctx context.Context, cfg *config.Config, req *EmbedRequest) {
	files, err := collectAudioFiles(req.Paths)
	if err != nil {
		logger.Fatalf(ctx, "Failed to collect audio files: %v", err)
	}

	if len(files) == 0 {
		logger.Fatal(ctx, "No FLAC or MP3 files found")
	}

	runner := &embedRunner{
		service:     lyrics.NewService(newClient(ctx, cfg)),
		processor:   tags.NewProcessor(),
		isSynced:    req.Synced,
		hasProgress: true,
	}

	stats := newRunStatistics()

	// Statistics are printed even when a lookup panics.
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf(ctx, "Panic recovered: %v", r)
		}

		printRunSummary(ctx, "EMBED SUMMARY", stats)
	}()

	runner.run(ctx, files, stats)
}

func (r *embedRunner) run(ctx context.Context, files []string, stats *RunStatistics) {
	defer stats.finish()

	bar := newProgressBar(len(files), "Embedding lyrics", r.hasProgress)
	defer finishProgressBar(bar)

	for _, path := range files {
		if ctx.Err() != nil {
			break
		}

		result, err := r.embed(ctx, path)
		if err != nil {
			logger.Debugf(ctx, "Failed to embed lyrics into %s: %v", path, err)
			stats.recordFailure(path, err.Error())
		} else {
			logger.Debugf(ctx, "Embedded lyrics into %s", path)
			stats.recordSuccess(result)
		}

		advanceProgressBar(bar)
	}
}

// embed looks the track up by its ISRC first and by artist and title when that fails.
func (r *embedRunner) embed(ctx context.Context, path string) (*lyrics.Result, error) {
	info, err := r.processor.ReadTrackInfo(ctx, path)
	if err != nil {
		return nil, err
	}

	var result *lyrics.Result

	if info.ISRC != "" {
		isrc, _ := normalizeISRC(info.ISRC)
		result = lookupByISRC(ctx, r.service, isrc, r.isSynced)
	}

	if (result == nil || !result.Success) && info.Query() != "" {
		if result != nil {
			logger.Debugf(ctx, "ISRC lookup for %s failed (%s), searching by tags", path, result.Error)
		}

		result = lookupByQuery(ctx, r.service, info.Query(), r.isSynced)
	}

	switch {
	case result == nil:
		return nil, ErrNoTrackIdentity
	case !result.Success:
		return nil, errors.New(result.Error) //nolint:err113 // The reason comes from the lookup.
	}

	if err = r.processor.WriteLyrics(ctx, path, result); err != nil {
		return nil, fmt.Errorf("failed to write lyrics: %w", err)
	}

	return result, nil
}

// collectAudioFiles expands folders into the supported audio files they contain.
// Files named explicitly are kept even when their extension is not supported.
func collectAudioFiles(paths []string) ([]string, error) {
	var (
		result []string
		seen   = make(map[string]struct{}, len(paths))
	)

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		result = append(result, path)
	}

	for _, root := range paths {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			if path == root || tags.IsSupported(path) {
				add(path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(result)

	return result, nil
}

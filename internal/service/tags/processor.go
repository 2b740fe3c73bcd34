package tags

//go:generate $MOCKGEN -source=processor.go -destination=mocks/processor_mock.go

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/oshokin/syncedlyrics/internal/constants"
	"github.com/oshokin/syncedlyrics/internal/service/lyrics"
)

// Processor reads track identity from audio files and embeds lyrics into them.
type Processor interface {
	// ReadTrackInfo returns the ISRC and the basic tags of the file.
	ReadTrackInfo(ctx context.Context, path string) (*TrackInfo, error)
	// WriteLyrics stores the lyrics of a successful result in the file tags.
	WriteLyrics(ctx context.Context, path string, result *lyrics.Result) error
}

// TrackInfo is what the tags say about a track.
type TrackInfo struct {
	ISRC   string
	Title  string
	Artist string
	Album  string
}

// Query returns a free-text search query made of the artist and the title.
func (i *TrackInfo) Query() string {
	return strings.TrimSpace(strings.Join([]string{i.Artist, i.Title}, " "))
}

// ProcessorImpl provides the default implementation of Processor.
type ProcessorImpl struct{}

// Static error definitions for better error handling.
var (
	// ErrEmptyTrackPath indicates that the track file path is empty.
	ErrEmptyTrackPath = errors.New("track path cannot be empty")
	// ErrUnsupportedFormat indicates that the file is neither FLAC nor MP3.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	// ErrNoLyrics indicates that the result carries nothing to write.
	ErrNoLyrics = errors.New("result has no lyrics")
)

// NewProcessor creates a new Processor instance.
func NewProcessor() Processor {
	return new(ProcessorImpl)
}

// IsSupported reports whether the file extension is one the processor handles.
func IsSupported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case constants.ExtensionFLAC, constants.ExtensionMP3:
		return true
	default:
		return false
	}
}

// ReadTrackInfo returns the ISRC and the basic tags of the file.
func (p *ProcessorImpl) ReadTrackInfo(ctx context.Context, path string) (*TrackInfo, error) {
	if path == "" {
		return nil, ErrEmptyTrackPath
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case constants.ExtensionFLAC:
		return p.readFLACInfo(ctx, path)
	case constants.ExtensionMP3:
		return p.readMP3Info(ctx, path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// WriteLyrics stores the lyrics of a successful result in the file tags.
// Timed lyrics go to LYRICS as LRC text in FLAC files and to SYLT in MP3 files.
func (p *ProcessorImpl) WriteLyrics(ctx context.Context, path string, result *lyrics.Result) error {
	if path == "" {
		return ErrEmptyTrackPath
	}

	if result == nil || !result.Success || strings.TrimSpace(result.Text()) == "" {
		return ErrNoLyrics
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case constants.ExtensionFLAC:
		return p.writeFLACLyrics(ctx, path, result)
	case constants.ExtensionMP3:
		return p.writeMP3Lyrics(ctx, path, result)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

package tags

import (
	"context"
	"fmt"
	"strings"

	"github.com/oshokin/id3v2/v2"

	"github.com/oshokin/syncedlyrics/internal/logger"
	"github.com/oshokin/syncedlyrics/internal/service/lyrics"
	"github.com/oshokin/syncedlyrics/internal/synced"
)

// ID3v2 frame names.
const (
	mp3FrameISRC             = "ISRC"
	mp3FrameUnsyncedLyricsID = "USLT"
	mp3FrameSyncedLyricsID   = "SYLT"
	mp3LyricsDescriptor      = "Lyrics"
)

func (p *ProcessorImpl) readMP3Info(_ context.Context, path string) (*TrackInfo, error) {
	//nolint:exhaustruct // ParseFrames left empty to parse every frame.
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}

	defer tag.Close()

	return &TrackInfo{
		ISRC:   strings.TrimSpace(tag.GetTextFrame(tag.CommonID(mp3FrameISRC)).Text),
		Title:  strings.TrimSpace(tag.Title()),
		Artist: strings.TrimSpace(tag.Artist()),
		Album:  strings.TrimSpace(tag.Album()),
	}, nil
}

func (p *ProcessorImpl) writeMP3Lyrics(ctx context.Context, path string, result *lyrics.Result) error {
	//nolint:exhaustruct // ParseFrames left empty to keep every existing frame.
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}

	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	// Replace earlier lyrics instead of stacking frames.
	tag.DeleteFrames(mp3FrameUnsyncedLyricsID)
	tag.DeleteFrames(mp3FrameSyncedLyricsID)

	if result.HasTimestamps {
		parsed, parseErr := id3v2.ParseLRCFile(strings.NewReader(synced.FormatLRC(result.SyncedLyrics, nil)))
		if parseErr != nil {
			return fmt.Errorf("failed to convert synced lyrics: %w", parseErr)
		}

		tag.AddSynchronisedLyricsFrame(id3v2.SynchronisedLyricsFrame{
			Encoding: id3v2.EncodingUTF8,
			// Field is required, so we just use lingua franca.
			Language:          id3v2.EnglishISO6392Code,
			TimestampFormat:   id3v2.SYLTAbsoluteMillisecondsTimestampFormat,
			ContentType:       id3v2.SYLTLyricsContentType,
			ContentDescriptor: mp3LyricsDescriptor,
			SynchronizedTexts: parsed.SynchronizedTexts,
		})
	}

	// Players without SYLT support still get the text.
	tag.AddUnsynchronisedLyricsFrame(id3v2.UnsynchronisedLyricsFrame{
		Encoding:          id3v2.EncodingUTF8,
		Language:          id3v2.EnglishISO6392Code,
		ContentDescriptor: mp3LyricsDescriptor,
		Lyrics:            strings.TrimSpace(result.Text()),
	})

	logger.Debugf(ctx, "Writing %s lyrics to %s", lyricsKind(result), path)

	return tag.Save()
}

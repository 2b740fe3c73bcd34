package tags

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"

	"github.com/oshokin/syncedlyrics/internal/logger"
	"github.com/oshokin/syncedlyrics/internal/service/lyrics"
	"github.com/oshokin/syncedlyrics/internal/synced"
)

// Vorbis comment field names.
const (
	flacFieldISRC   = "ISRC"
	flacFieldTitle  = "TITLE"
	flacFieldArtist = "ARTIST"
	flacFieldAlbum  = "ALBUM"
	flacFieldLyrics = "LYRICS"
)

// extractFLACCommentResult contains the result of extracting FLAC comment metadata.
type extractFLACCommentResult struct {
	// Comment is the FLAC Vorbis comment metadata block.
	Comment *flacvorbis.MetaDataBlockVorbisComment
	// Index is the index of the comment block in the FLAC file metadata (-1 if not found).
	Index int
}

func (p *ProcessorImpl) readFLACInfo(ctx context.Context, path string) (*TrackInfo, error) {
	f, err := flac.ParseFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	commentResult := p.extractFLACComment(f)
	if commentResult.Comment == nil {
		logger.Debugf(ctx, "No Vorbis comment in %s", path)

		return new(TrackInfo), nil
	}

	comment := commentResult.Comment

	return &TrackInfo{
		ISRC:   firstFLACValue(comment, flacFieldISRC),
		Title:  firstFLACValue(comment, flacFieldTitle),
		Artist: firstFLACValue(comment, flacFieldArtist),
		Album:  firstFLACValue(comment, flacFieldAlbum),
	}, nil
}

func (p *ProcessorImpl) writeFLACLyrics(ctx context.Context, path string, result *lyrics.Result) error {
	f, err := flac.ParseFile(filepath.Clean(path))
	if err != nil {
		return err
	}

	commentResult := p.extractFLACComment(f)

	tag := commentResult.Comment

	// If no existing comments are found, create a new metadata block.
	if tag == nil {
		tag = flacvorbis.New()
	}

	removeFLACField(tag, flacFieldLyrics)

	value := result.Lyrics
	if result.HasTimestamps {
		value = synced.FormatLRC(result.SyncedLyrics, nil)
	}

	if err = tag.Add(flacFieldLyrics, value); err != nil {
		return err
	}

	tagMeta := tag.Marshal()
	if commentResult.Index >= 0 {
		f.Meta[commentResult.Index] = &tagMeta
	} else {
		f.Meta = append(f.Meta, &tagMeta)
	}

	logger.Debugf(ctx, "Writing %s lyrics to %s", lyricsKind(result), path)

	return f.Save(path)
}

func (p *ProcessorImpl) extractFLACComment(f *flac.File) *extractFLACCommentResult {
	// Iterate through the metadata blocks to find the Vorbis comment block.
	for idx, meta := range f.Meta {
		if meta.Type != flac.VorbisComment {
			continue
		}

		comment, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err == nil {
			return &extractFLACCommentResult{
				Comment: comment,
				Index:   idx,
			}
		}
	}

	return &extractFLACCommentResult{
		Comment: nil,
		Index:   -1,
	}
}

func firstFLACValue(comment *flacvorbis.MetaDataBlockVorbisComment, field string) string {
	values, err := comment.Get(field)
	if err != nil || len(values) == 0 {
		return ""
	}

	return strings.TrimSpace(values[0])
}

// removeFLACField drops every comment named field, field names are case-insensitive.
func removeFLACField(comment *flacvorbis.MetaDataBlockVorbisComment, field string) {
	prefix := strings.ToUpper(field) + "="
	kept := comment.Comments[:0]

	for _, entry := range comment.Comments {
		if len(entry) >= len(prefix) && strings.ToUpper(entry[:len(prefix)]) == prefix {
			continue
		}

		kept = append(kept, entry)
	}

	comment.Comments = kept
}

func lyricsKind(result *lyrics.Result) string {
	if result.HasTimestamps {
		return "synced"
	}

	return "plain"
}

package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/syncedlyrics/internal/client/musixmatch"
	"github.com/oshokin/syncedlyrics/internal/config"
	"github.com/oshokin/syncedlyrics/internal/service/lyrics"
)

// ErrUnsupportedOutputFormat indicates that the output format cannot represent the value.
var ErrUnsupportedOutputFormat = errors.New("unsupported output format")

// RenderResult encodes a lookup result in one of the config.OutputFormat* formats.
// Failed results can only be rendered as JSON or YAML.
func RenderResult(result *lyrics.Result, format string) ([]byte, error) {
	switch format {
	case config.OutputFormatJSON:
		return marshalJSON(result)
	case config.OutputFormatYAML:
		return yaml.Marshal(result)
	}

	if !result.Success {
		return nil, errors.New(result.Error) //nolint:err113 // The reason comes from the lookup.
	}

	switch format {
	case config.OutputFormatText:
		return []byte(withTrailingNewline(result.Text())), nil
	case config.OutputFormatLRC:
		return []byte(withTrailingNewline(result.LRC())), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOutputFormat, format)
	}
}

// RenderTrack encodes track metadata. LRC is not supported.
func RenderTrack(track *musixmatch.Track, format string) ([]byte, error) {
	switch format {
	case config.OutputFormatJSON:
		return marshalJSON(track)
	case config.OutputFormatYAML:
		return yaml.Marshal(track)
	case config.OutputFormatText:
		var b strings.Builder

		fmt.Fprintf(&b, "ID:       %d\n", track.ID)
		fmt.Fprintf(&b, "Title:    %s\n", track.Name)
		fmt.Fprintf(&b, "Artist:   %s\n", track.ArtistName)
		fmt.Fprintf(&b, "Album:    %s\n", track.AlbumName)
		fmt.Fprintf(&b, "Duration: %d:%02d\n", track.Length/60, track.Length%60)

		if track.ISRC != "" {
			fmt.Fprintf(&b, "ISRC:     %s\n", track.ISRC)
		}

		return []byte(b.String()), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOutputFormat, format)
	}
}

func marshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(data, '\n'), nil
}

func withTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}

	return s + "\n"
}

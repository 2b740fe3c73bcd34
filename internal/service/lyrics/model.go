package lyrics

import (
	"github.com/oshokin/syncedlyrics/internal/client/musixmatch"
	"github.com/oshokin/syncedlyrics/internal/synced"
)

// Result is the uniform outcome of a lyrics lookup.
// On success exactly one of Lyrics and SyncedLyrics is set, HasTimestamps tells which.
type Result struct {
	// Success reports whether lyrics were found.
	Success bool `json:"success" yaml:"success"`
	// Lyrics is the plain lyrics text.
	Lyrics string `json:"lyrics,omitempty" yaml:"lyrics,omitempty"`
	// SyncedLyrics are the timed lines, sorted by start time.
	SyncedLyrics []synced.Line `json:"syncedLyrics,omitempty" yaml:"synced_lyrics,omitempty"`
	// HasTimestamps is true when SyncedLyrics is set.
	HasTimestamps bool `json:"hasTimestamps" yaml:"has_timestamps"`
	// SongInfo describes the resolved track, nil when no track was resolved.
	SongInfo *SongInfo `json:"songInfo,omitempty" yaml:"song_info,omitempty"`
	// Error is a short reason, set only on failure.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// SongInfo is the track metadata attached to a result.
type SongInfo struct {
	Title  string `json:"title" yaml:"title"`
	Artist string `json:"artist" yaml:"artist"`
	Album  string `json:"album" yaml:"album"`
	// Duration is the track length in seconds.
	Duration int `json:"duration" yaml:"duration"`
}

// LRC renders the result as an LRC document with ID tags.
// Plain lyrics are returned as they are.
func (r *Result) LRC() string {
	if !r.HasTimestamps {
		return r.Lyrics
	}

	var header *synced.LRCHeader
	if r.SongInfo != nil {
		header = &synced.LRCHeader{
			Title:    r.SongInfo.Title,
			Artist:   r.SongInfo.Artist,
			Album:    r.SongInfo.Album,
			Duration: r.SongInfo.Duration,
		}
	}

	return synced.FormatLRC(r.SyncedLyrics, header)
}

// Text returns the lyrics without timing.
func (r *Result) Text() string {
	if r.HasTimestamps {
		return synced.PlainText(r.SyncedLyrics)
	}

	return r.Lyrics
}

func newSongInfo(track *musixmatch.Track) *SongInfo {
	return &SongInfo{
		Title:    track.Name,
		Artist:   track.ArtistName,
		Album:    track.AlbumName,
		Duration: track.Length,
	}
}

func failure(reason string, info *SongInfo) *Result {
	return &Result{
		Success:  false,
		Error:    reason,
		SongInfo: info,
	}
}

// outcome is what a single fetch-and-parse step produced.
type outcome int

const (
	// outcomeFound means the step produced at least one line.
	outcomeFound outcome = iota
	// outcomeUnavailable means the upstream has no such format for the track.
	outcomeUnavailable
	// outcomeEmpty means the format exists but parsed to nothing.
	outcomeEmpty
	// outcomeFailed means the request itself failed.
	outcomeFailed
)

func (o outcome) String() string {
	switch o {
	case outcomeFound:
		return "found"
	case outcomeUnavailable:
		return "unavailable"
	case outcomeEmpty:
		return "empty"
	case outcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// attempt is the result of one synced format step.
type attempt struct {
	outcome outcome
	lines   []synced.Line
	err     error
}

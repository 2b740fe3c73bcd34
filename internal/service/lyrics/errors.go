package lyrics

import "errors"

// ErrTrackNotFound indicates that no track matches the ISRC.
var ErrTrackNotFound = errors.New("track not found")

// Failure reasons reported in Result.Error.
const (
	reasonTrackNotFound  = "Track not found for ISRC: "
	reasonNoTracksFound  = "No tracks found for query: "
	reasonNoLyricsFound  = "No lyrics found for this track"
	reasonLyricsNotFound = "Lyrics not found for this track"
	reasonUnknownFailure = "Unknown error occurred"
)

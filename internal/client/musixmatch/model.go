package musixmatch

import (
	"encoding/json"
	"time"
)

// envelope is the wrapper every upstream response uses.
type envelope struct {
	Message struct {
		Header Header `json:"header"`
		// Body is an object on success but may be "" or [] otherwise, so it is decoded lazily.
		Body json.RawMessage `json:"body"`
	} `json:"message"`
}

// Header is the envelope header.
type Header struct {
	// StatusCode is 200 on success and 401 when the token is rejected.
	StatusCode int `json:"status_code"`
	// ExecuteTime is the upstream processing time in seconds.
	ExecuteTime float64 `json:"execute_time"`
	// Available is the number of matches, only sent by searches.
	Available int `json:"available,omitempty"`
	// Hint explains some failures, e.g. "renew" or "captcha".
	Hint string `json:"hint,omitempty"`
}

// Track is a track as described by the upstream catalogue.
type Track struct {
	ID         int64  `json:"track_id" yaml:"track_id"`
	Name       string `json:"track_name" yaml:"track_name"`
	ArtistName string `json:"artist_name" yaml:"artist_name"`
	AlbumName  string `json:"album_name" yaml:"album_name"`
	// Length is the duration in seconds.
	Length int `json:"track_length" yaml:"track_length"`
	ISRC   string `json:"track_isrc,omitempty" yaml:"track_isrc,omitempty"`
	Rating int    `json:"track_rating,omitempty" yaml:"track_rating,omitempty"`
	// Availability flags, 1 when the format exists for the track.
	HasLyrics    int `json:"has_lyrics,omitempty" yaml:"has_lyrics,omitempty"`
	HasSubtitles int `json:"has_subtitles,omitempty" yaml:"has_subtitles,omitempty"`
	HasRichSync  int `json:"has_richsync,omitempty" yaml:"has_richsync,omitempty"`
}

// trackBody is the body of track.get.
type trackBody struct {
	Track Track `json:"track"`
}

// trackSearchBody is the body of track.search.
type trackSearchBody struct {
	TrackList []trackBody `json:"track_list"`
}

// Lyrics is the plain lyrics of a track.
type Lyrics struct {
	ID        int64  `json:"lyrics_id"`
	Body      string `json:"lyrics_body"`
	Language  string `json:"lyrics_language"`
	Copyright string `json:"lyrics_copyright"`
}

type lyricsBody struct {
	Lyrics Lyrics `json:"lyrics"`
}

// Subtitle is the line-synchronized lyrics of a track, "[mm:ss.xx] text" per line.
type Subtitle struct {
	ID       int64  `json:"subtitle_id"`
	Body     string `json:"subtitle_body"`
	Language string `json:"subtitle_language"`
	// Length is the covered duration in seconds.
	Length int `json:"subtitle_length"`
}

type subtitleBody struct {
	Subtitle Subtitle `json:"subtitle"`
}

// RichSync is the word-synchronized lyrics of a track, a JSON document in Body.
type RichSync struct {
	ID       int64  `json:"richsync_id"`
	Body     string `json:"richsync_body"`
	Language string `json:"richsync_language"`
	// Length is the covered duration in seconds.
	Length int `json:"richsync_length"`
}

type richSyncBody struct {
	RichSync RichSync `json:"richsync"`
}

type tokenBody struct {
	UserToken string `json:"user_token"`
}

// SessionToken is an upstream session token with its expiration.
// The JSON form is the token cache file format.
type SessionToken struct {
	// Value is the opaque token.
	Value string `json:"token"`
	// ExpirationTime is the Unix time in seconds after which the token is not used.
	ExpirationTime int64 `json:"expiration_time"`
}

// IsValid reports whether the token may be used at now.
func (t *SessionToken) IsValid(now time.Time) bool {
	return t != nil && t.Value != "" && now.Unix() < t.ExpirationTime
}

// ExpiresAt returns the expiration as a time.
func (t *SessionToken) ExpiresAt() time.Time {
	return time.Unix(t.ExpirationTime, 0)
}

// Token sources reported by TokenStatus.
const (
	TokenSourceNone   = "none"
	TokenSourceMemory = "memory"
	TokenSourceStore  = "store"
)

// TokenStatus describes the token a client would use right now.
type TokenStatus struct {
	// Source tells where the token was found.
	Source string
	// Token is the token found, nil when Source is TokenSourceNone.
	Token *SessionToken
	// Valid reports whether Token is still usable.
	Valid bool
	// StoreLocation describes the persistent store, empty when nothing is persisted.
	StoreLocation string
}

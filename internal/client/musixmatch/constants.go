package musixmatch

// Upstream actions, appended to the base URL.
const (
	actionTokenGet         = "token.get"
	actionTrackGet         = "track.get"
	actionTrackSearch      = "track.search"
	actionTrackLyricsGet   = "track.lyrics.get"
	actionTrackSubtitleGet = "track.subtitle.get"
	actionTrackRichSyncGet = "track.richsync.get"
)

// Query parameter names.
const (
	paramAppID        = "app_id"
	paramUserToken    = "usertoken"
	paramTimestamp    = "t"
	paramUserLanguage = "user_language"
	paramTrackISRC    = "track_isrc"
	paramTrackID      = "track_id"
	paramQuery        = "q"
	paramPageSize     = "page_size"
	paramTrackRating  = "s_track_rating"
)

const (
	// defaultUserLanguage is requested together with a new token.
	defaultUserLanguage = "en"
	// sortDescending orders search results by rating, best first.
	sortDescending = "desc"
	// DefaultSearchPageSize is the number of results a lookup by query needs.
	DefaultSearchPageSize = 1
)

// Envelope status codes.
const (
	statusOK           = 200
	statusUnauthorized = 401
)

const (
	// CacheDirName is the directory created under the user cache root.
	CacheDirName = "syncedlyrics"
	// TokenFilename is the JSON token cache file name.
	TokenFilename = "musixmatch_token.json"
	// TokenDatabaseFilename is the bbolt token cache file name.
	TokenDatabaseFilename = "musixmatch_token.db"
)

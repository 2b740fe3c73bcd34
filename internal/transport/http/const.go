package http

import "time"

const (
	// DefaultTimeout is the default timeout duration for HTTP requests.
	DefaultTimeout = 30 * time.Second

	// BrowserAccept is the Accept header the Musixmatch web player sends.
	BrowserAccept = "application/json, text/javascript, */*; q=0.01"

	// BrowserReferer is the Referer header the Musixmatch web player sends.
	BrowserReferer = "https://www.musixmatch.com/"

	// BrowserOrigin is the Origin header the Musixmatch web player sends.
	BrowserOrigin = "https://www.musixmatch.com"
)

// Header names.
const (
	headerAccept    = "Accept"
	headerOrigin    = "Origin"
	headerReferer   = "Referer"
	headerUserAgent = "User-Agent"
)

// BrowserHeaders returns the header set that makes requests look like they come from the web player.
func BrowserHeaders(userAgent string) map[string]string {
	return map[string]string{
		headerUserAgent: userAgent,
		headerAccept:    BrowserAccept,
		headerReferer:   BrowserReferer,
		headerOrigin:    BrowserOrigin,
	}
}

package http

import (
	"net/http"

	"github.com/oshokin/syncedlyrics/internal/utils"
)

// HeaderInjector is a custom http.RoundTripper that fills in default headers.
// Headers already set on the request are left untouched.
type HeaderInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// headerProvider supplies the default headers.
	headerProvider utils.HeaderProvider
}

// NewHeaderInjector creates and returns a new instance of HeaderInjector.
func NewHeaderInjector(next http.RoundTripper, headerProvider utils.HeaderProvider) http.RoundTripper {
	return &HeaderInjector{
		next:           next,
		headerProvider: headerProvider,
	}
}

// RoundTrip executes a single HTTP transaction after injecting missing headers.
// It implements the http.RoundTripper interface.
func (t *HeaderInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	defaults := t.headerProvider.GetHeaders()

	// RoundTrippers must not modify the caller's request.
	var cloned *http.Request

	for name, values := range defaults {
		if req.Header.Get(name) != "" || len(values) == 0 {
			continue
		}

		if cloned == nil {
			cloned = req.Clone(req.Context())
		}

		cloned.Header[name] = values
	}

	if cloned == nil {
		return t.next.RoundTrip(req)
	}

	return t.next.RoundTrip(cloned)
}

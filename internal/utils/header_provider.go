package utils

//go:generate $MOCKGEN -source=header_provider.go -destination=mocks/header_provider_mock.go

import "net/http"

// HeaderProvider supplies the default headers attached to outgoing requests.
type HeaderProvider interface {
	// GetHeaders returns a fresh copy of the headers to inject.
	GetHeaders() http.Header
}

// StaticHeaderProvider always returns the same set of headers.
type StaticHeaderProvider struct {
	// headers is the canonicalized header set.
	headers http.Header
}

// NewStaticHeaderProvider creates a provider from a plain name/value map.
// Empty values are skipped.
func NewStaticHeaderProvider(headers map[string]string) HeaderProvider {
	h := make(http.Header, len(headers))

	for name, value := range headers {
		if value == "" {
			continue
		}

		h.Set(name, value)
	}

	return &StaticHeaderProvider{headers: h}
}

// GetHeaders returns a copy so callers may modify the result freely.
func (p *StaticHeaderProvider) GetHeaders() http.Header {
	return p.headers.Clone()
}

// Package http provides http.RoundTripper decorators used by the upstream client:
// request/response logging with credential redaction, default browser header injection
// and client-side rate limiting.
package http

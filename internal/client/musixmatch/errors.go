package musixmatch

import (
	"errors"
	"fmt"
)

// Static error definitions for better error handling.
var (
	// ErrUnexpectedHTTPStatus indicates that the upstream answered with a non-200 HTTP status.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrNotFound indicates that the envelope carried a status other than 200 or 401.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized indicates that the upstream rejected the session token.
	ErrUnauthorized = errors.New("session token rejected")
	// ErrAuthenticationFailed indicates that no token could be obtained within the retry budget.
	ErrAuthenticationFailed = errors.New("authentication failed")
	// ErrEmptyToken indicates that token.get succeeded without returning a token.
	ErrEmptyToken = errors.New("upstream returned an empty token")
	// ErrTokenNotCached indicates that a token store holds no token.
	ErrTokenNotCached = errors.New("no cached token")
	// ErrMalformedTokenCache indicates that a token store holds unreadable data.
	ErrMalformedTokenCache = errors.New("malformed token cache")
	// ErrEmptyISRC indicates that an ISRC lookup was requested without an ISRC.
	ErrEmptyISRC = errors.New("isrc cannot be empty")
	// ErrEmptyQuery indicates that a search was requested without a query.
	ErrEmptyQuery = errors.New("query cannot be empty")
)

// StatusError carries the status code returned for an action.
type StatusError struct {
	// Action is the upstream action that failed.
	Action string
	// StatusCode is the envelope (or HTTP) status code.
	StatusCode int
	// Err is the sentinel describing the class of failure.
	Err error
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %v (status %d)", e.Action, e.Err, e.StatusCode)
}

// Unwrap returns the sentinel so errors.Is works.
func (e *StatusError) Unwrap() error {
	return e.Err
}

// StatusCodeOf returns the status code carried by err, or 0.
func StatusCodeOf(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}

	return 0
}

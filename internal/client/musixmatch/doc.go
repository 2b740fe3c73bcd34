// Package musixmatch is a client for the internal Musixmatch desktop API.
//
// Every request carries the desktop application id, a millisecond timestamp and,
// for every action except token.get, a short-lived session token. The token is
// acquired lazily, kept in memory, optionally persisted through a TokenStore and
// replaced when it expires or the upstream rejects it. Token acquisition retries
// a bounded number of times when the upstream answers 401.
//
// Responses use a common envelope, {"message":{"header":{"status_code":...},"body":...}},
// where the header status code, not the HTTP status, tells success (200), a rejected
// token (401) and everything else, which is treated as not found.
package musixmatch

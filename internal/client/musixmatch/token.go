package musixmatch

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/oshokin/syncedlyrics/internal/logger"
)

// GetToken returns a usable session token.
// The in-memory token is tried first, then the store, then the upstream.
func (c *ClientImpl) GetToken(ctx context.Context) (*SessionToken, error) {
	token, err := c.ensureToken(ctx)
	if err != nil {
		return nil, err
	}

	copied := *token

	return &copied, nil
}

// RefreshToken drops the current token and acquires a new one from the upstream.
func (c *ClientImpl) RefreshToken(ctx context.Context) (*SessionToken, error) {
	if err := c.InvalidateToken(ctx); err != nil {
		return nil, err
	}

	return c.GetToken(ctx)
}

// InvalidateToken drops the token from memory and from the store.
func (c *ClientImpl) InvalidateToken(ctx context.Context) error {
	c.tokenMu.Lock()
	c.token = nil
	c.tokenMu.Unlock()

	if err := c.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear token store: %w", err)
	}

	return nil
}

// TokenStatus reports the token the client would use next.
func (c *ClientImpl) TokenStatus(ctx context.Context) *TokenStatus {
	now := c.now()
	status := &TokenStatus{
		Source:        TokenSourceNone,
		StoreLocation: c.store.Location(),
	}

	c.tokenMu.Lock()
	memoryToken := c.token
	c.tokenMu.Unlock()

	if memoryToken != nil {
		copied := *memoryToken
		status.Source = TokenSourceMemory
		status.Token = &copied
		status.Valid = copied.IsValid(now)

		return status
	}

	storedToken, err := c.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrTokenNotCached) {
			logger.Debugf(ctx, "Token store %q is unreadable: %v", c.store.Location(), err)
		}

		return status
	}

	status.Source = TokenSourceStore
	status.Token = storedToken
	status.Valid = storedToken.IsValid(now)

	return status
}

// ensureToken returns the current token, loading or acquiring one when needed.
// Concurrent callers may both acquire a token, the last one written wins.
func (c *ClientImpl) ensureToken(ctx context.Context) (*SessionToken, error) {
	now := c.now()

	c.tokenMu.Lock()
	if c.token.IsValid(now) {
		token := c.token
		c.tokenMu.Unlock()

		return token, nil
	}
	c.tokenMu.Unlock()

	storedToken, err := c.store.Load(ctx)

	switch {
	case err == nil && storedToken.IsValid(now):
		logger.Debugf(ctx, "Using session token from %s, expires %s",
			c.store.Location(), storedToken.ExpiresAt().Format(time.RFC3339))

		c.setToken(storedToken)

		return storedToken, nil
	case err == nil:
		logger.Debugf(ctx, "Cached session token has expired")
	case !errors.Is(err, ErrTokenNotCached):
		logger.Debugf(ctx, "Ignoring token cache: %v", err)
	}

	token, err := c.fetchToken(ctx)
	if err != nil {
		return nil, err
	}

	c.setToken(token)

	if err = c.store.Save(ctx, token); err != nil {
		logger.Warnf(ctx, "Failed to persist session token: %v", err)
	}

	return token, nil
}

// fetchToken calls token.get until it succeeds, the upstream keeps rejecting
// the request for authRetryAttempts attempts, or ctx is done.
func (c *ClientImpl) fetchToken(ctx context.Context) (*SessionToken, error) {
	query := url.Values{}
	query.Set(paramUserLanguage, defaultUserLanguage)

	var lastErr error

	for attempt := 1; attempt <= c.authRetryAttempts; attempt++ {
		body, err := fetchEnvelope[tokenBody](c, ctx, actionTokenGet, query, "")
		if err == nil {
			if body.UserToken == "" {
				return nil, ErrEmptyToken
			}

			token := &SessionToken{
				Value:          body.UserToken,
				ExpirationTime: c.now().Add(c.tokenTTL).Unix(),
			}

			logger.Debugf(ctx, "Acquired session token, expires %s", token.ExpiresAt().Format(time.RFC3339))

			return token, nil
		}

		if !errors.Is(err, ErrUnauthorized) {
			return nil, err
		}

		lastErr = err

		if attempt == c.authRetryAttempts {
			break
		}

		logger.Warnf(ctx, "Token request rejected (attempt %d of %d), retrying in %s",
			attempt, c.authRetryAttempts, c.authRetryPause)

		if err = sleepContext(ctx, c.authRetryPause); err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w after %d attempts: %w", ErrAuthenticationFailed, c.authRetryAttempts, lastErr)
}

// dropToken forgets token after the upstream rejected it.
// A newer token set by a concurrent caller is kept.
func (c *ClientImpl) dropToken(ctx context.Context, token *SessionToken) {
	c.tokenMu.Lock()
	if c.token != nil && c.token.Value == token.Value {
		c.token = nil
	}
	c.tokenMu.Unlock()

	if err := c.store.Clear(ctx); err != nil {
		logger.Warnf(ctx, "Failed to clear token store: %v", err)
	}
}

func (c *ClientImpl) setToken(token *SessionToken) {
	c.tokenMu.Lock()
	c.token = token
	c.tokenMu.Unlock()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateLimiter_DisabledReturnsNext(t *testing.T) {
	t.Parallel()

	next := http.DefaultTransport

	assert.Same(t, next, NewRateLimiter(next, 0, 10))
	assert.Same(t, next, NewRateLimiter(next, -1, 10))
}

func TestRateLimiter_RoundTrip_Paces(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	// One token per 100ms, no burst beyond one.
	client := &http.Client{Transport: NewRateLimiter(http.DefaultTransport, 10, 1)}

	start := time.Now()

	for range 3 {
		resp, err := client.Get(server.URL) //nolint:noctx // Test code, context not needed.
		require.NoError(t, err)
		resp.Body.Close() //nolint:errcheck,gosec // Test cleanup, error is not critical.
	}

	assert.Equal(t, int32(3), hits.Load())
	assert.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond)
}

func TestRateLimiter_RoundTrip_ContextCancelled(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	transport := NewRateLimiter(http.DefaultTransport, 0.001, 1)

	first, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, http.NoBody)
	require.NoError(t, err)

	resp, err := transport.RoundTrip(first)
	require.NoError(t, err)
	resp.Body.Close() //nolint:errcheck,gosec // Test cleanup, error is not critical.

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	second, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, http.NoBody)
	require.NoError(t, err)

	resp, err = transport.RoundTrip(second) //nolint:bodyclose // Body is empty on error.
	require.Error(t, err)
	assert.Nil(t, resp)
}

package musixmatch

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/oshokin/syncedlyrics/internal/config"
	"github.com/oshokin/syncedlyrics/internal/logger"
	http_transport "github.com/oshokin/syncedlyrics/internal/transport/http"
	"github.com/oshokin/syncedlyrics/internal/utils"
)

// Client defines the interface for interacting with the Musixmatch desktop API.
type Client interface {
	// GetToken returns a usable session token, acquiring one when needed.
	GetToken(ctx context.Context) (*SessionToken, error)
	// RefreshToken drops the current token and acquires a new one.
	RefreshToken(ctx context.Context) (*SessionToken, error)
	// InvalidateToken drops the current token from memory and from the store.
	InvalidateToken(ctx context.Context) error
	// TokenStatus reports the token the client would use, without contacting the upstream.
	TokenStatus(ctx context.Context) *TokenStatus
	// GetTrackByISRC looks a track up by its ISRC.
	GetTrackByISRC(ctx context.Context, isrc string) (*Track, error)
	// SearchTracks runs a free-text search, best rated first.
	SearchTracks(ctx context.Context, query string, pageSize int) ([]*Track, error)
	// GetLyrics retrieves the plain lyrics of a track.
	GetLyrics(ctx context.Context, trackID int64) (*Lyrics, error)
	// GetSubtitle retrieves the line-synchronized lyrics of a track.
	GetSubtitle(ctx context.Context, trackID int64) (*Subtitle, error)
	// GetRichSync retrieves the word-synchronized lyrics of a track.
	GetRichSync(ctx context.Context, trackID int64) (*RichSync, error)
}

// ClientImpl implements the Client interface.
type ClientImpl struct {
	// baseURL is the API root every action is joined to.
	baseURL string
	// appID is sent with every request.
	appID string
	// httpClient is owned by this instance, independent clients never share it.
	httpClient *http.Client
	// store persists the token between runs.
	store TokenStore
	// tokenTTL is the lifetime given to newly acquired tokens.
	tokenTTL time.Duration
	// authRetryAttempts bounds token acquisition attempts.
	authRetryAttempts int
	// authRetryPause is the wait between token acquisition attempts.
	authRetryPause time.Duration
	// now is the clock, replaced in tests.
	now func() time.Time
	// tokenMu guards token.
	tokenMu sync.Mutex
	// token is the in-memory session token.
	token *SessionToken
}

// NewClient creates a client from a validated configuration.
//
// store may be nil, in which case the store named by cfg.TokenStore is chosen once here
// after probing the cache directory. transport may be nil, in which case
// http.DefaultTransport is used; it is wrapped with header injection, rate limiting
// and debug logging.
func NewClient(ctx context.Context, cfg *config.Config, store TokenStore, transport http.RoundTripper) (Client, error) {
	return newClientImpl(ctx, cfg, store, transport)
}

func newClientImpl(
	ctx context.Context,
	cfg *config.Config,
	store TokenStore,
	transport http.RoundTripper,
) (*ClientImpl, error) {
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	// The upstream sets session cookies alongside the token.
	cookies, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	if transport == nil {
		transport = http.DefaultTransport
	}

	if store == nil {
		store = NewTokenStore(ctx, cfg.TokenStore, ProbeEnvironment(ctx, cfg.TokenCacheDir))
	}

	timeout := cfg.ParsedRequestTimeout
	if timeout <= 0 {
		timeout = http_transport.DefaultTimeout
	}

	httpClient := &http.Client{
		Transport: http_transport.NewHeaderInjector(
			http_transport.NewRateLimiter(
				http_transport.NewLogTransport(transport, cfg.ParsedMaxLogLength),
				cfg.RequestsPerSecond,
				cfg.RequestBurst),
			utils.NewStaticHeaderProvider(http_transport.BrowserHeaders(cfg.UserAgent))),
		Jar:     cookies,
		Timeout: timeout,
	}

	attempts := int(cfg.AuthRetryAttempts)
	if attempts <= 0 {
		attempts = config.DefaultAuthRetryAttempts
	}

	ttl := cfg.ParsedTokenTTL
	if ttl <= 0 {
		ttl, _ = time.ParseDuration(config.DefaultTokenTTL)
	}

	logger.Debugf(ctx, "Musixmatch client created for %s, token store: %q", baseURL, store.Location())

	return &ClientImpl{
		baseURL:           baseURL.String(),
		appID:             cfg.AppID,
		httpClient:        httpClient,
		store:             store,
		tokenTTL:          ttl,
		authRetryAttempts: attempts,
		authRetryPause:    cfg.ParsedAuthRetryPause,
		now:               time.Now,
	}, nil
}

// GetTrackByISRC looks a track up by its ISRC.
// A non-200 envelope yields an error wrapping ErrNotFound.
func (c *ClientImpl) GetTrackByISRC(ctx context.Context, isrc string) (*Track, error) {
	isrc = strings.TrimSpace(isrc)
	if isrc == "" {
		return nil, ErrEmptyISRC
	}

	query := url.Values{}
	query.Set(paramTrackISRC, isrc)

	body, err := callAuthorized[trackBody](c, ctx, actionTrackGet, query)
	if err != nil {
		return nil, err
	}

	return &body.Track, nil
}

// SearchTracks runs a free-text search ordered by rating.
// No match is an empty slice, not an error.
func (c *ClientImpl) SearchTracks(ctx context.Context, query string, pageSize int) ([]*Track, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	if pageSize <= 0 {
		pageSize = DefaultSearchPageSize
	}

	params := url.Values{}
	params.Set(paramQuery, query)
	params.Set(paramPageSize, strconv.Itoa(pageSize))
	params.Set(paramTrackRating, sortDescending)

	body, err := callAuthorized[trackSearchBody](c, ctx, actionTrackSearch, params)
	if err != nil {
		return nil, err
	}

	tracks := make([]*Track, 0, len(body.TrackList))
	for i := range body.TrackList {
		tracks = append(tracks, &body.TrackList[i].Track)
	}

	return tracks, nil
}

// GetLyrics retrieves the plain lyrics of a track.
func (c *ClientImpl) GetLyrics(ctx context.Context, trackID int64) (*Lyrics, error) {
	body, err := callAuthorized[lyricsBody](c, ctx, actionTrackLyricsGet, trackQuery(trackID))
	if err != nil {
		return nil, err
	}

	return &body.Lyrics, nil
}

// GetSubtitle retrieves the line-synchronized lyrics of a track.
func (c *ClientImpl) GetSubtitle(ctx context.Context, trackID int64) (*Subtitle, error) {
	body, err := callAuthorized[subtitleBody](c, ctx, actionTrackSubtitleGet, trackQuery(trackID))
	if err != nil {
		return nil, err
	}

	return &body.Subtitle, nil
}

// GetRichSync retrieves the word-synchronized lyrics of a track.
func (c *ClientImpl) GetRichSync(ctx context.Context, trackID int64) (*RichSync, error) {
	body, err := callAuthorized[richSyncBody](c, ctx, actionTrackRichSyncGet, trackQuery(trackID))
	if err != nil {
		return nil, err
	}

	return &body.RichSync, nil
}

func trackQuery(trackID int64) url.Values {
	query := url.Values{}
	query.Set(paramTrackID, strconv.FormatInt(trackID, 10))

	return query
}

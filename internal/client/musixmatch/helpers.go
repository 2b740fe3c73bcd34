package musixmatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/oshokin/syncedlyrics/internal/logger"
)

// callAuthorized runs an action with a session token.
// When the upstream rejects the token it is dropped, a new one is acquired
// and the action is retried once.
//
//nolint:revive // Has no sense, it's cause Go doesn't allow struct methods to be generic.
func callAuthorized[T any](c *ClientImpl, ctx context.Context, action string, query url.Values) (*T, error) {
	token, err := c.ensureToken(ctx)
	if err != nil {
		return nil, err
	}

	body, err := fetchEnvelope[T](c, ctx, action, query, token.Value)
	if !errors.Is(err, ErrUnauthorized) {
		return body, err
	}

	logger.Debugf(ctx, "Session token rejected by %s, acquiring a new one", action)

	c.dropToken(ctx, token)

	token, err = c.ensureToken(ctx)
	if err != nil {
		return nil, err
	}

	return fetchEnvelope[T](c, ctx, action, query, token.Value)
}

// fetchEnvelope issues a GET for action and decodes the envelope body into T.
// An empty userToken sends the request without one.
//
//nolint:revive // Has no sense, it's cause Go doesn't allow struct methods to be generic.
func fetchEnvelope[T any](
	c *ClientImpl,
	ctx context.Context,
	action string,
	query url.Values,
	userToken string,
) (*T, error) {
	route, err := url.JoinPath(c.baseURL, action)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	for key, values := range query {
		params[key] = append([]string(nil), values...)
	}

	params.Set(paramAppID, c.appID)

	if userToken != "" {
		params.Set(paramUserToken, userToken)
	}

	params.Set(paramTimestamp, strconv.FormatInt(c.now().UnixMilli(), 10))

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, route, http.NoBody)
	if err != nil {
		return nil, err
	}

	request.URL.RawQuery = params.Encode()

	response, err := c.httpClient.Do(request)
	if err != nil {
		logger.Debugf(ctx, "Request %s failed: %v", action, err)

		return nil, fmt.Errorf("failed to call %s: %w", action, err)
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	switch {
	case response.StatusCode == http.StatusUnauthorized:
		return nil, &StatusError{Action: action, StatusCode: response.StatusCode, Err: ErrUnauthorized}
	case response.StatusCode != http.StatusOK:
		return nil, &StatusError{Action: action, StatusCode: response.StatusCode, Err: ErrUnexpectedHTTPStatus}
	}

	var result envelope
	if err = json.NewDecoder(response.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", action, err)
	}

	header := result.Message.Header

	switch header.StatusCode {
	case statusOK:
	case statusUnauthorized:
		return nil, &StatusError{Action: action, StatusCode: header.StatusCode, Err: ErrUnauthorized}
	default:
		return nil, &StatusError{Action: action, StatusCode: header.StatusCode, Err: ErrNotFound}
	}

	var body T
	if err = json.Unmarshal(result.Message.Body, &body); err != nil {
		return nil, fmt.Errorf("failed to decode %s body: %w", action, err)
	}

	return &body, nil
}

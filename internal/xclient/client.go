// Package xclient fetches user timelines from the X v1.1 API with OAuth
// 1.0a signing, client-side rate limiting, and bounded retry.
package xclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dghubble/oauth1"
	"golang.org/x/time/rate"

	"birdscope/internal/config"
	"birdscope/internal/metrics"
	"birdscope/internal/model"
)

// UserError is a failure whose message is safe to show the end user.
type UserError struct {
	Message string
}

func (e *UserError) Error() string { return e.Message }

var (
	// ErrUnknownHandle mirrors the upstream message for a handle that fails
	// validation or does not exist.
	ErrUnknownHandle = &UserError{Message: "Sorry, that page does not exist."}
	// ErrProtected covers private and suspended accounts.
	ErrProtected = &UserError{Message: "This account's tweets are private or their profile has been suspended."}
)

// Client is an OAuth 1.0a signed client for the v1.1 timeline endpoint.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	limiter     *rate.Limiter
	maxAttempts int
	baseBackoff time.Duration
}

// New builds a client from the configured credentials.
func New(creds config.CredentialsConfig) *Client {
	oauthCfg := oauth1.NewConfig(creds.ConsumerKey, creds.ConsumerSecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessSecret)
	httpClient := oauthCfg.Client(oauth1.NoContext, token)
	httpClient.Timeout = 15 * time.Second
	return &Client{
		baseURL:     "https://api.twitter.com/1.1",
		httpClient:  httpClient,
		limiter:     newDefaultLimiter(),
		maxAttempts: getEnvInt("X_API_MAX_ATTEMPTS", 5),
		baseBackoff: time.Duration(getEnvInt("X_API_BASE_BACKOFF_MS", 500)) * time.Millisecond,
	}
}

// UserTimelineRaw fetches up to count recent posts for handle and returns
// the raw response body, newest-first, in extended tweet mode.
func (c *Client) UserTimelineRaw(ctx context.Context, handle string, count int) ([]byte, error) {
	if !ValidHandle(handle) {
		return nil, ErrUnknownHandle
	}
	q := url.Values{}
	q.Set("screen_name", handle)
	q.Set("count", strconv.Itoa(clamp(count, 1, 200)))
	q.Set("include_rts", "1")
	q.Set("tweet_mode", "extended")
	u := fmt.Sprintf("%s/statuses/user_timeline.json?%s", c.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	resp, err := c.doWithRetry(ctx, req, "user_timeline")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, apiError(resp.StatusCode, body)
	}
	return body, nil
}

// UserTimeline is UserTimelineRaw followed by DecodeTimeline.
func (c *Client) UserTimeline(ctx context.Context, handle string, count int) ([]model.Post, error) {
	raw, err := c.UserTimelineRaw(ctx, handle, count)
	if err != nil {
		return nil, err
	}
	return DecodeTimeline(raw)
}

// apiError maps v1.1 error payloads to user-facing errors where the
// condition is about the subject's account rather than our request.
func apiError(status int, body []byte) error {
	if status == http.StatusUnauthorized {
		return ErrProtected
	}
	var payload struct {
		Errors []struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Errors) > 0 {
		if payload.Errors[0].Code == 34 { // user does not exist
			return ErrUnknownHandle
		}
		return fmt.Errorf("x api status %d: %s", status, payload.Errors[0].Message)
	}
	return fmt.Errorf("x api status %d", status)
}

func (c *Client) doWithRetry(ctx context.Context, req *http.Request, endpoint string) (*http.Response, error) {
	backoff := c.baseBackoff
	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		resp, err := c.httpClient.Do(req.Clone(ctx))
		if err == nil {
			if resp.StatusCode == http.StatusTooManyRequests || (resp.StatusCode >= 500 && resp.StatusCode <= 599) {
				lastErr = fmt.Errorf("x api status %d", resp.StatusCode)
				ra := resp.Header.Get("Retry-After")
				_ = resp.Body.Close()
				wait := backoff
				if ra != "" {
					if secs, err := strconv.Atoi(ra); err == nil {
						wait = time.Duration(secs) * time.Second
					} else if t, err := http.ParseTime(ra); err == nil {
						if d := time.Until(t); d > 0 {
							wait = d
						}
					}
				}
				metrics.IncAPIRetry(endpoint)
				select {
				case <-time.After(wait):
				case <-ctx.Done():
					return nil, ctx.Err()
				}
				backoff *= 2
				continue
			}
			return resp, nil
		}
		lastErr = err
		metrics.IncAPIRetry(endpoint)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		backoff *= 2
	}
	return nil, fmt.Errorf("request failed after %d attempts: %w", c.maxAttempts, lastErr)
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

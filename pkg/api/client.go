// Package api implements the HTTP client for the Nimbus platform API.
//
// All requests are authenticated with the caller's opaque bearer token
// and retried a bounded number of times on transient failures. The
// client paces retries through a shared rate limiter so a flapping
// endpoint is never hammered.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the production platform API endpoint.
const DefaultBaseURL = "https://api.nimbus.dev"

const (
	defaultMaxRetries        = 3
	defaultRequestsPerSecond = 10
	defaultTimeout           = 30 * time.Second
)

// Error is a structured error returned by the platform API.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %s (status %d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// retryable reports whether a response status is worth retrying.
func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

// Config holds the settings for constructing a Client.
type Config struct {
	// BaseURL of the platform API. Defaults to DefaultBaseURL.
	BaseURL string

	// Token is the opaque bearer token attached to every request.
	// How it was obtained is not this package's concern.
	Token string

	// UserAgent identifies the CLI build in requests.
	UserAgent string

	// HTTPClient overrides the default client, mainly for TLS tuning
	// and tests.
	HTTPClient *http.Client

	// MaxRetries bounds retry attempts after the first request.
	// Defaults to 3; negative disables retries.
	MaxRetries int
}

// Client is an authenticated Nimbus platform API client. It is safe
// for use from a single CLI invocation; methods block until the call
// completes or ctx is done.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	maxRetries int
}

// New creates a platform API client from the given configuration.
func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	maxRetries := cfg.MaxRetries
	if maxRetries == 0 {
		maxRetries = defaultMaxRetries
	} else if maxRetries < 0 {
		maxRetries = 0
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "nimbus"
	}

	return &Client{
		baseURL:    baseURL,
		token:      cfg.Token,
		userAgent:  userAgent,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(defaultRequestsPerSecond), defaultRequestsPerSecond),
		maxRetries: maxRetries,
	}
}

// do issues one authenticated request, retrying transient failures up
// to maxRetries times. On success the response body is decoded into
// out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		retry, err := c.doOnce(ctx, method, path, payload, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retry {
			return err
		}
	}

	return fmt.Errorf("request failed after %d attempts: %w", c.maxRetries+1, lastErr)
}

// doOnce performs a single HTTP round trip. The returned bool reports
// whether the failure is transient and the caller may retry.
func (c *Client) doOnce(ctx context.Context, method, path string, payload []byte, out any) (bool, error) {
	var reqBody io.Reader = http.NoBody
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Network-level failures are transient from the CLI's view.
		return true, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return retryable(resp.StatusCode), parseError(resp)
	}

	if out == nil {
		return false, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("failed to decode response: %w", err)
	}
	return false, nil
}

// parseError extracts the structured API error from a failed response,
// falling back to the status code when the body is not in the expected
// shape.
func parseError(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return apiErr
	}

	var wrapped struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil {
		apiErr.Code = wrapped.Error.Code
		apiErr.Message = wrapped.Error.Message
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	return apiErr
}

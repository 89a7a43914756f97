package ads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/adstools/nasa-ads-mcp-server/metrics"
	"github.com/adstools/nasa-ads-mcp-server/tracing"
)

// Client provides access to the NASA ADS API. Every request carries the
// bearer token and is bounded by the configured timeout. Requests are
// made exactly once; there is no retry and no response caching.
type Client struct {
	cfg        *Config
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return func(client *Client) {
		client.logger = l
	}
}

// NewClient creates a new ADS API client
func NewClient(cfg *Config, opts ...ClientOption) *Client {
	c := &Client{
		cfg:        cfg,
		httpClient: newHTTPClient(cfg.Timeout),
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// apiError is a non-2xx response from the ADS API
type apiError struct {
	StatusCode int
	Body       string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("ADS API error %d: %s", e.StatusCode, e.Body)
}

// statusCodeOf returns the HTTP status of an apiError, or 0 for other errors
func statusCodeOf(err error) int {
	if apiErr, ok := err.(*apiError); ok {
		return apiErr.StatusCode
	}
	return 0
}

// get performs a GET request against the ADS API and decodes the JSON response
func (c *Client) get(ctx context.Context, action, path string, params url.Values, result interface{}) error {
	reqURL := c.cfg.BaseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}
	return c.do(ctx, action, http.MethodGet, reqURL, nil, result)
}

// post performs a POST request with a JSON payload against the ADS API
func (c *Client) post(ctx context.Context, action, path string, payload, result interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	return c.do(ctx, action, http.MethodPost, c.cfg.BaseURL+path, body, result)
}

// do executes a single HTTP request. The status code of error responses
// is preserved in an apiError so callers can map 404s to their own
// not-found semantics.
func (c *Client) do(ctx context.Context, action, method, reqURL string, payload []byte, result interface{}) error {
	ctx, span := tracing.StartSpan(ctx, "ads.api."+action)
	defer span.End()
	tracing.AddAPIAttributes(span, action, method)

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start).Seconds()
	if err != nil {
		metrics.RecordAPICall(action, duration, false, "transport")
		tracing.RecordError(span, err)
		c.logger.Warn("ADS API request failed",
			"action", action,
			"url", reqURL,
			"error", err)
		return fmt.Errorf("request failed: %w", err)
	}

	body, err := readAndClose(resp)
	if err != nil {
		metrics.RecordAPICall(action, duration, false, "read")
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		metrics.RecordAPICall(action, duration, false, fmt.Sprintf("%d", resp.StatusCode))
		apiErr := &apiError{StatusCode: resp.StatusCode, Body: truncate(string(body), 200)}
		tracing.RecordError(span, apiErr)
		return apiErr
	}

	metrics.RecordAPICall(action, duration, true, "")

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// readAndClose reads the response body and closes it
func readAndClose(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return body, err
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// newHTTPClient creates an HTTP client with optimized transport settings
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		MaxConnsPerHost:       50,
		IdleConnTimeout:       120 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		ForceAttemptHTTP2:     true,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

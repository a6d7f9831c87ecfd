package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/hatynka/storefront/internal/pkg/logger"
	nrpkg "github.com/hatynka/storefront/internal/pkg/newrelic"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 10 * time.Second
	// APIKeyHeader is the header name for API key
	APIKeyHeader = "X-API-Key"
)

// HTTPError is returned for responses with a status of 400 or above
type HTTPError struct {
	StatusCode int
	Kind       string
	Cause      string
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// Client is a JSON HTTP client for one base URL
type Client struct {
	BaseURL    string
	HTTPClient *nethttp.Client
	apiKey     string
}

// NewClient creates a new HTTP client
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &nethttp.Client{Timeout: timeout},
	}
}

// WithAPIKey sets the key sent in the X-API-Key header
func (c *Client) WithAPIKey(key string) *Client {
	c.apiKey = key
	return c
}

// PostJSON posts body as JSON and decodes a successful response into result
func (c *Client) PostJSON(ctx context.Context, endpoint string, body, result interface{}) error {
	return c.do(ctx, nethttp.MethodPost, endpoint, body, result)
}

// GetJSON performs a GET request and decodes a successful response into result
func (c *Client) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	return c.do(ctx, nethttp.MethodGet, endpoint, nil, result)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, result interface{}) error {
	url := c.BaseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*nethttp.Response, error) {
		return c.HTTPClient.Do(req)
	})
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	logger.Debug("HTTP request completed",
		logger.String("method", method),
		logger.String("url", url),
		logger.Int("status_code", resp.StatusCode))

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(resp *nethttp.Response) error {
	httpErr := &HTTPError{StatusCode: resp.StatusCode}

	var body struct {
		Error string `json:"error"`
		Kind  string `json:"kind"`
		Cause string `json:"cause"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if json.Unmarshal(raw, &body) == nil {
		httpErr.Message = body.Error
		httpErr.Kind = body.Kind
		httpErr.Cause = body.Cause
	}
	return httpErr
}

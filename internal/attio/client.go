package attio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/chybatronik/goAttioMCP/internal/config"
	"github.com/chybatronik/goAttioMCP/internal/logging"
	apperrors "github.com/chybatronik/goAttioMCP/pkg/errors"
)

// Client talks to the Attio REST API with bearer authentication.
// All calls share a single http.Client with the configured timeout.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *logging.Logger
}

// New creates an Attio API client from the validated configuration
func New(cfg config.AttioConfig, logger *logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		logger: logger,
	}
}

// do issues a single request and returns the remote status and raw body.
// Transport failures propagate unchanged; status classification is left
// to the per-endpoint callers since 404 means different things per endpoint.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (int, []byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug("attio: request completed",
		logging.FieldHTTPMethod, method,
		logging.FieldHTTPPath, path,
		logging.FieldRemoteStatus, resp.StatusCode,
	)

	return resp.StatusCode, raw, nil
}

// get issues a GET request against the API
func (c *Client) get(ctx context.Context, path string, query url.Values) (int, []byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// postJSON issues a POST request with a JSON body against the API
func (c *Client) postJSON(ctx context.Context, path string, body any) (int, []byte, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

// isSuccess reports whether the remote call completed with a 2xx status
func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// remoteError converts a non-2xx response into the canonical API error
func remoteError(status int, body []byte) error {
	return apperrors.NewAPIError(status, string(body))
}

// decodeInto parses a successful response body into the target structure
func decodeInto(body []byte, target any) error {
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

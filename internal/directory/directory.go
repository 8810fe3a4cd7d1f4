// Package directory queries the FiveM server directory service to resolve
// a join token into its authoritative server record.
package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/woozymasta/joinfx/internal/models"
)

// lookupPath is the single-server endpoint of the directory API.
const lookupPath = "/api/servers/single/"

var (
	// ErrServerNotFound means the directory service authoritatively reports
	// that no server exists for the token.
	ErrServerNotFound = errors.New("server not found")

	// ErrUnavailable means the directory service could not be reached or
	// returned an unusable response.
	ErrUnavailable = errors.New("directory service unavailable")
)

// Client performs lookups against a directory service.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
}

// New creates a directory client for the given base URL. The timeout bounds
// the whole lookup call; zero disables the bound.
func New(baseURL, userAgent string, timeout time.Duration) *Client {
	return &Client{
		http:      &http.Client{Timeout: timeout},
		baseURL:   baseURL,
		userAgent: userAgent,
	}
}

// Lookup issues a single GET for the token and returns the parsed record.
// A 404 maps to ErrServerNotFound, any other failure (transport error,
// non-2xx status, malformed body) maps to ErrUnavailable. No retries.
func (c *Client) Lookup(ctx context.Context, token string) (*models.DirectoryRecord, error) {
	url := c.baseURL + lookupPath + token

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	log.Debug().Str("url", url).Msg("Directory lookup")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrServerNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var payload struct {
		Data map[string]any `json:"Data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: malformed response body: %v", ErrUnavailable, err)
	}

	return &models.DirectoryRecord{
		Data:      payload.Data,
		Endpoints: connectEndpoints(payload.Data),
	}, nil
}

// connectEndpoints normalizes the connect endpoint list out of the raw
// record payload. The upstream has used two field spellings over time, the
// first one present wins. An absent field or a non-list value yields an
// empty list, never an error.
func connectEndpoints(data map[string]any) []string {
	var raw any
	for _, key := range []string{"connectEndPoints", "connectEndpoints"} {
		if v, ok := data[key]; ok {
			raw = v
			break
		}
	}

	list, ok := raw.([]any)
	if !ok {
		return nil
	}

	endpoints := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			endpoints = append(endpoints, s)
		}
	}

	return endpoints
}

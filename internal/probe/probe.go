// Package probe opportunistically fetches status documents served by a game
// server itself. Probed hosts are third parties outside the directory
// service's control and are frequently firewalled, so every failure here is
// expected and collapses to an absent result instead of an error.
package probe

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/woozymasta/joinfx/internal/models"
)

// Prober fetches info.json and players.json documents from game servers.
type Prober struct {
	http *http.Client
}

// New creates a prober with a short fixed timeout bounding each request.
func New(timeout time.Duration) *Prober {
	return &Prober{
		http: &http.Client{Timeout: timeout},
	}
}

// Info fetches the server's info.json. Returns nil on any failure.
func (p *Prober) Info(ctx context.Context, endpoint string) *models.StatusDocument {
	var doc models.StatusDocument
	if !p.fetch(ctx, endpoint, "/info.json", &doc) {
		return nil
	}

	return &doc
}

// Players fetches the server's players.json. Returns nil on any failure.
func (p *Prober) Players(ctx context.Context, endpoint string) []models.PlayerEntry {
	var players []models.PlayerEntry
	if !p.fetch(ctx, endpoint, "/players.json", &players) {
		return nil
	}

	return players
}

// fetch issues a single GET for path on the endpoint and decodes the JSON
// body into out. Reports false on any failure, it never returns an error.
func (p *Prober) fetch(ctx context.Context, endpoint, path string, out any) bool {
	url := targetURL(endpoint, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Debug().Err(err).Str("endpoint", endpoint).Msg("Malformed probe endpoint")
		return false
	}

	resp, err := p.http.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("url", url).Msg("Probe request failed")
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Debug().Int("status", resp.StatusCode).Str("url", url).Msg("Probe rejected")
		return false
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Debug().Err(err).Str("url", url).Msg("Malformed probe response")
		return false
	}

	return true
}

// targetURL derives the request URL from a connect endpoint. An existing
// scheme is kept as given, otherwise plain http is assumed since game
// servers rarely terminate TLS themselves.
func targetURL(endpoint, path string) string {
	if !strings.Contains(endpoint, "://") {
		endpoint = "http://" + endpoint
	}

	return strings.TrimSuffix(endpoint, "/") + path
}

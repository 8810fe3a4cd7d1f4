// Package resolver ties token extraction, the directory lookup and the
// status probe together into a single resolution pipeline.
package resolver

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/woozymasta/joinfx/internal/models"
	"github.com/woozymasta/joinfx/internal/token"
)

// Directory resolves a canonical token into its directory record.
type Directory interface {
	Lookup(ctx context.Context, token string) (*models.DirectoryRecord, error)
}

// Prober fetches best-effort status documents from a game server.
type Prober interface {
	Info(ctx context.Context, endpoint string) *models.StatusDocument
	Players(ctx context.Context, endpoint string) []models.PlayerEntry
}

// Geo annotates an endpoint with its country. Optional.
type Geo interface {
	CountryForEndpoint(endpoint string) string
}

// Resolver runs the resolution pipeline. Geo may be nil, FetchPlayers
// enables the supplementary player-list probe.
type Resolver struct {
	Directory    Directory
	Prober       Prober
	Geo          Geo
	FetchPlayers bool
}

// Resolve turns raw user input into a ResolutionResult.
//
// Extraction and lookup failures propagate immediately, nothing is probed
// after a failed lookup. When the record carries endpoints, only the first
// one is probed: this is a deliberate single-attempt policy, not a failover
// chain. A failed probe still yields a successful result with Status nil.
func (r *Resolver) Resolve(ctx context.Context, input string) (*models.ResolutionResult, error) {
	tok, err := token.Extract(input)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("token", tok).Msg("Resolving token")

	record, err := r.Directory.Lookup(ctx, tok)
	if err != nil {
		return nil, err
	}

	result := &models.ResolutionResult{
		Token:  tok,
		Record: *record,
	}

	if len(record.Endpoints) == 0 {
		log.Debug().Str("token", tok).Msg("Record has no connect endpoints, skipping probe")
		return result, nil
	}

	result.Endpoint = record.Endpoints[0]

	if r.Geo != nil {
		result.CountryCode = r.Geo.CountryForEndpoint(result.Endpoint)
	}

	result.Status = r.Prober.Info(ctx, result.Endpoint)
	if result.Status == nil {
		log.Debug().Str("endpoint", result.Endpoint).Msg("Status probe yielded nothing")
	}

	if r.FetchPlayers {
		result.Players = r.Prober.Players(ctx, result.Endpoint)
	}

	return result, nil
}

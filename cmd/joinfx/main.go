// main is the entry point of the joinfx CLI.
// It resolves a join token or cfx.re URL into connection endpoints and
// server metadata and prints the result.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/woozymasta/joinfx/internal/config"
	"github.com/woozymasta/joinfx/internal/directory"
	"github.com/woozymasta/joinfx/internal/geoip"
	"github.com/woozymasta/joinfx/internal/logger"
	"github.com/woozymasta/joinfx/internal/probe"
	"github.com/woozymasta/joinfx/internal/render"
	"github.com/woozymasta/joinfx/internal/resolver"
	"github.com/woozymasta/joinfx/internal/token"
)

func main() {
	cfg := config.Parse()

	logger.Setup(cfg.Logger)

	res := resolver.Resolver{
		Directory:    directory.New(cfg.Directory.APIURL, cfg.Directory.UserAgent, cfg.Directory.Timeout),
		Prober:       probe.New(cfg.Probe.Timeout),
		FetchPlayers: cfg.Probe.Players,
	}

	// Country detection is optional and must never block resolution
	if cfg.GeoIP.Path != "" {
		if err := geoip.EnsureDB(cfg.GeoIP.Path, cfg.GeoIP.URL, cfg.GeoIP.Interval); err != nil {
			log.Error().Err(err).Msg("Failed to download GeoIP database")
		}

		geoProvider, err := geoip.Open(cfg.GeoIP.Path)
		if err != nil {
			log.Error().Err(err).Msg("Failed to open GeoIP database, country detection disabled")
		} else {
			defer func() {
				if err := geoProvider.Close(); err != nil {
					log.Error().Err(err).Msg("Error closing GeoIP provider")
				}
			}()
			res.Geo = geoProvider
		}
	}

	result, err := res.Resolve(context.Background(), cfg.Args.Input)
	if err != nil {
		switch {
		case errors.Is(err, token.ErrUnrecognizedToken):
			log.Fatal().Str("input", cfg.Args.Input).Msg("Input is neither a join token nor a known cfx.re URL")
		case errors.Is(err, directory.ErrServerNotFound):
			log.Fatal().Str("input", cfg.Args.Input).Msg("No server is registered for this token")
		default:
			log.Fatal().Err(err).Msg("Directory lookup failed")
		}
	}

	if cfg.JSON {
		if err := render.JSON(os.Stdout, result); err != nil {
			log.Fatal().Err(err).Msg("Failed to encode result")
		}
		return
	}

	render.Text(os.Stdout, result)
}

// Package config handles the parsing and validation of application configuration
// from command-line arguments and environment variables.
package config

import (
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/woozymasta/joinfx/internal/logger"
	"github.com/woozymasta/joinfx/internal/vars"
)

// Config represents the complete application flags configuration.
type Config struct {
	// betteralign:ignore

	Directory Directory     `group:"Directory Options" env-namespace:"JOINFX"`
	Probe     Probe         `group:"Probe Options" namespace:"probe" env-namespace:"JOINFX_PROBE"`
	GeoIP     GeoIP         `group:"GeoIP Options" namespace:"geoip" env-namespace:"JOINFX_GEOIP"`
	Logger    logger.Config `group:"Logger Options" namespace:"log" env-namespace:"JOINFX_LOG"`

	JSON    bool `short:"j" long:"json" description:"Print the resolution result as JSON"`
	Version bool `short:"v" long:"version" description:"Print version and build info"`

	Args struct {
		Input string `positional-arg-name:"INPUT" description:"Join token or cfx.re/servers URL"`
	} `positional-args:"yes" required:"1"`
}

// Directory holds lookup service configuration.
type Directory struct {
	// betteralign:ignore

	APIURL    string        `long:"api-url" env:"API_URL" description:"Directory service base URL" default:"https://servers-frontend.fivem.net"`
	UserAgent string        `long:"user-agent" env:"USER_AGENT" description:"Client identifier sent to the directory service" default:"joinfx (+https://github.com/woozymasta/joinfx)"`
	Timeout   time.Duration `long:"lookup-timeout" env:"LOOKUP_TIMEOUT" description:"Directory lookup timeout" default:"10s"`
}

// Probe holds server status probe configuration.
type Probe struct {
	// betteralign:ignore

	Timeout time.Duration `long:"timeout" env:"TIMEOUT" description:"Status probe timeout" default:"3s"`
	Players bool          `long:"players" env:"PLAYERS" description:"Also fetch the connected player list"`
}

// GeoIP holds MaxMind GeoIP configuration. Country detection is enabled
// only when a database path is set.
type GeoIP struct {
	// betteralign:ignore

	Path     string        `short:"g" long:"path" env:"PATH" description:"Path to MMDB file (empty disables country detection)"`
	URL      string        `long:"url" env:"URL" description:"URL to download MMDB" default:"https://git.io/GeoLite2-Country.mmdb"`
	Interval time.Duration `long:"interval" env:"INTERVAL" description:"Update interval check" default:"24h"`
}

// Parse reads the configuration from flags and environment variables.
// It terminates the application if the configuration is invalid or if the help flag is invoked.
func Parse() *Config {
	var cfg Config
	parser := flags.NewParser(&cfg, flags.Default)
	parser.NamespaceDelimiter = "-"

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}

			// Print version even without the required positional argument
			if cfg.Version {
				vars.Print()
				os.Exit(0)
			}
		}
		os.Exit(2)
	}

	if cfg.Version {
		vars.Print()
		os.Exit(0)
	}

	return &cfg
}

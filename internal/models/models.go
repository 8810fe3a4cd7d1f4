// Package models defines the data structures shared between the directory
// client, the status prober and the result renderer.
package models

// DirectoryRecord is the directory service response for a single join token.
// Data is kept free-form since the upstream schema is not contractually
// fixed; Endpoints is the normalized connect endpoint list extracted from it.
type DirectoryRecord struct {
	Data      map[string]any `json:"data"`
	Endpoints []string       `json:"endpoints"`
}

// StatusDocument is the info.json payload served by a game server itself.
// Any field may be absent on the wire and decodes to its zero value.
type StatusDocument struct {
	Hostname   string   `json:"hostname"`
	Resources  []string `json:"resources"`
	Clients    int      `json:"clients"`
	MaxClients int      `json:"sv_maxclients"`
}

// PlayerEntry is a single entry of the players.json payload.
type PlayerEntry struct {
	Name string `json:"name"`
	Ping int    `json:"ping"`
}

// ResolutionResult is the aggregate outcome of one token resolution.
// Status is nil when the probe failed or was never attempted; that state is
// deliberately distinct from a present-but-empty document.
type ResolutionResult struct {
	Token       string          `json:"token"`
	Record      DirectoryRecord `json:"record"`
	Endpoint    string          `json:"endpoint,omitempty"`
	CountryCode string          `json:"country_code,omitempty"`
	Status      *StatusDocument `json:"status,omitempty"`
	Players     []PlayerEntry   `json:"players,omitempty"`
}

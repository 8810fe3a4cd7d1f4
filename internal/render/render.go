// Package render turns a ResolutionResult into user-facing output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/woozymasta/joinfx/internal/models"
)

// maxResources caps the rendered resource list, longer lists get an
// ellipsis marker.
const maxResources = 10

// JSON writes the full result as indented JSON.
func JSON(w io.Writer, result *models.ResolutionResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(result)
}

// Text writes a human-readable report of the result. Probe absence renders
// as an "unavailable" note, not as an error.
func Text(w io.Writer, result *models.ResolutionResult) {
	fmt.Fprintf(w, "token:      %s\n", result.Token)

	if raw, err := json.Marshal(result.Record.Data); err == nil {
		fmt.Fprintf(w, "record:     %s\n", raw)
	}

	if len(result.Record.Endpoints) == 0 {
		fmt.Fprintln(w, "endpoints:  no connect endpoints published")
		return
	}
	fmt.Fprintf(w, "endpoints:  %s\n", strings.Join(result.Record.Endpoints, ", "))

	if result.CountryCode != "" {
		fmt.Fprintf(w, "country:    %s\n", result.CountryCode)
	}

	if result.Status == nil {
		fmt.Fprintln(w, "status:     unavailable (server did not answer the probe)")
	} else {
		fmt.Fprintf(w, "hostname:   %s\n", result.Status.Hostname)
		fmt.Fprintf(w, "players:    %d/%d\n", result.Status.Clients, result.Status.MaxClients)
		fmt.Fprintf(w, "resources:  %s\n", resourceList(result.Status.Resources))
	}

	if len(result.Players) > 0 {
		names := make([]string, len(result.Players))
		for i, p := range result.Players {
			names[i] = fmt.Sprintf("%s (%dms)", p.Name, p.Ping)
		}
		fmt.Fprintf(w, "online:     %s\n", strings.Join(names, ", "))
	}
}

// resourceList joins up to maxResources entries, marking truncation.
func resourceList(resources []string) string {
	if len(resources) == 0 {
		return "none"
	}

	if len(resources) <= maxResources {
		return strings.Join(resources, ", ")
	}

	return strings.Join(resources[:maxResources], ", ") + ", …"
}

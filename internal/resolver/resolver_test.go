package resolver

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/woozymasta/joinfx/internal/directory"
	"github.com/woozymasta/joinfx/internal/probe"
	"github.com/woozymasta/joinfx/internal/token"
)

// newResolver wires a resolver against a mock directory service whose
// record carries the given endpoints.
func newResolver(t *testing.T, endpoints []string) *Resolver {
	t.Helper()

	dir := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		quoted := make([]string, len(endpoints))
		for i, ep := range endpoints {
			quoted[i] = fmt.Sprintf("%q", ep)
		}
		body := fmt.Sprintf(`{"Data": {"hostname": "dir", "connectEndPoints": [%s]}}`,
			strings.Join(quoted, ","))
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(dir.Close)

	return &Resolver{
		Directory: directory.New(dir.URL, "test-agent", time.Second),
		Prober:    probe.New(time.Second),
	}
}

func TestResolveFullChain(t *testing.T) {
	game := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/info.json":
			_, _ = w.Write([]byte(`{"hostname": "Test", "clients": 5, "sv_maxclients": 32, "resources": ["a", "b"]}`))
		case "/players.json":
			_, _ = w.Write([]byte(`[{"name": "alice", "ping": 10}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer game.Close()

	r := newResolver(t, []string{game.URL, "http://127.0.0.1:1/unreachable"})
	r.FetchPlayers = true

	result, err := r.Resolve(context.Background(), "https://cfx.re/join/abc123")
	require.NoError(t, err)

	require.Equal(t, "abc123", result.Token)
	require.Equal(t, game.URL, result.Endpoint)
	require.NotNil(t, result.Status)
	require.Equal(t, "Test", result.Status.Hostname)
	require.Equal(t, 5, result.Status.Clients)
	require.Equal(t, 32, result.Status.MaxClients)
	require.Equal(t, []string{"a", "b"}, result.Status.Resources)
	require.Len(t, result.Players, 1)
	require.Equal(t, "alice", result.Players[0].Name)
}

func TestResolveNoEndpoints(t *testing.T) {
	r := newResolver(t, nil)

	result, err := r.Resolve(context.Background(), "abc123")
	require.NoError(t, err)
	require.Empty(t, result.Endpoint)
	require.Empty(t, result.Record.Endpoints)
	require.Nil(t, result.Status)
}

func TestResolveProbeFailureAbsorbed(t *testing.T) {
	// Endpoint points at a closed port, the probe must collapse to nil
	// without failing the resolution.
	r := newResolver(t, []string{"127.0.0.1:1"})

	result, err := r.Resolve(context.Background(), "abc123")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:1", result.Endpoint)
	require.Nil(t, result.Status)
	require.Equal(t, []string{"127.0.0.1:1"}, result.Record.Endpoints)
}

func TestResolveProbesOnlyFirstEndpoint(t *testing.T) {
	var hits int
	game := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		_, _ = w.Write([]byte(`{"hostname": "second"}`))
	}))
	defer game.Close()

	// First endpoint is dead, the working second one must never be tried.
	r := newResolver(t, []string{"127.0.0.1:1", game.URL})

	result, err := r.Resolve(context.Background(), "abc123")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:1", result.Endpoint)
	require.Nil(t, result.Status)
	require.Zero(t, hits)
}

func TestResolveUnrecognizedInput(t *testing.T) {
	r := newResolver(t, nil)

	_, err := r.Resolve(context.Background(), "!!!")
	require.ErrorIs(t, err, token.ErrUnrecognizedToken)
}

func TestResolveLookupFailureSkipsProbe(t *testing.T) {
	dir := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer dir.Close()

	r := &Resolver{
		Directory: directory.New(dir.URL, "test-agent", time.Second),
		Prober:    probe.New(time.Second),
	}

	_, err := r.Resolve(context.Background(), "abc123")
	require.ErrorIs(t, err, directory.ErrServerNotFound)
}

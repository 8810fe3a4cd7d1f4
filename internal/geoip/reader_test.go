package geoip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEndpointHost(t *testing.T) {
	tests := []struct {
		endpoint string
		want     string
	}{
		{"1.2.3.4:30120", "1.2.3.4"},
		{"1.2.3.4", "1.2.3.4"},
		{"https://play.example.com:30120/", "play.example.com"},
		{"play.example.com", "play.example.com"},
		{"[2001:db8::1]:30120", "2001:db8::1"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, endpointHost(tt.endpoint), tt.endpoint)
	}
}

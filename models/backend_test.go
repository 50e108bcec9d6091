package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── BackendKind ──────────────────────────────────────────────────────────────

func TestParseBackendKind(t *testing.T) {
	tests := []struct {
		in      string
		want    BackendKind
		wantErr bool
	}{
		{in: "radarr", want: Radarr},
		{in: " Sonarr ", want: Sonarr},
		{in: "PROWLARR", want: Prowlarr},
		{in: "plex", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBackendKind(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownBackend)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBackendKind_DefaultsAreDistinct(t *testing.T) {
	seen := map[int]BackendKind{}
	for _, k := range AllBackendKinds() {
		port := k.DefaultPort()
		require.NotZero(t, port, k)
		_, dup := seen[port]
		assert.False(t, dup, "port %d reused by %s", port, k)
		seen[port] = k
	}
}

func TestBackendKind_APIVersion(t *testing.T) {
	assert.Equal(t, "v3", Radarr.APIVersion())
	assert.Equal(t, "v3", Sonarr.APIVersion())
	assert.Equal(t, "v3", Whisparr.APIVersion())
	assert.Equal(t, "v1", Lidarr.APIVersion())
	assert.Equal(t, "v1", Readarr.APIVersion())
	assert.Equal(t, "v1", Prowlarr.APIVersion())
	assert.Equal(t, "Radarr", Radarr.Title())
}

// ── BackendDescriptor ────────────────────────────────────────────────────────

func TestBackendDescriptor_BaseURL(t *testing.T) {
	tests := []struct {
		name string
		desc BackendDescriptor
		want string
	}{
		{
			name: "defaults",
			desc: BackendDescriptor{Kind: Radarr, APIToken: "x"},
			want: "http://localhost:7878/api/v3",
		},
		{
			name: "host and port",
			desc: BackendDescriptor{Kind: Lidarr, Host: "media", Port: 1234, APIToken: "x"},
			want: "http://media:1234/api/v1",
		},
		{
			name: "cert switches to https",
			desc: BackendDescriptor{Kind: Sonarr, Host: "tv", SSLCertPath: "/c.pem", APIToken: "x"},
			want: "https://tv:8989/api/v3",
		},
		{
			name: "ipv6 host",
			desc: BackendDescriptor{Kind: Radarr, Host: "::1", APIToken: "x"},
			want: "http://[::1]:7878/api/v3",
		},
		{
			name: "bracketed ipv6 host",
			desc: BackendDescriptor{Kind: Radarr, Host: "[fd00::2]", Port: 80, APIToken: "x"},
			want: "http://[fd00::2]:80/api/v3",
		},
		{
			name: "uri wins",
			desc: BackendDescriptor{Kind: Prowlarr, Host: "ignored", URI: "https://prowlarr.example.com/", APIToken: "x"},
			want: "https://prowlarr.example.com/api/v1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.desc.BaseURL())
		})
	}
}

func TestBackendDescriptor_Validate(t *testing.T) {
	assert.NoError(t, BackendDescriptor{Kind: Radarr, APIToken: "abc"}.Validate())
	assert.ErrorIs(t, BackendDescriptor{Kind: Radarr}.Validate(), ErrMissingToken)
	assert.ErrorIs(t, BackendDescriptor{Kind: Radarr, APIToken: "  "}.Validate(), ErrMissingToken)
	assert.ErrorIs(t, BackendDescriptor{Kind: "emby", APIToken: "abc"}.Validate(), ErrUnknownBackend)
	assert.ErrorIs(t, BackendDescriptor{Kind: Radarr, APIToken: "abc", Port: 70000}.Validate(), ErrInvalidPort)
	assert.ErrorIs(t, BackendDescriptor{Kind: Radarr, APIToken: "abc", URI: "radarr:7878"}.Validate(), ErrInvalidURI)
}

func TestAppBuildInfo_DefaultsToNA(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")
	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A (commit N/A, built 2026-01-01)", info.String())
}

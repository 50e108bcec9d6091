// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// BackendKind identifies one member of the closed family of servarr services
// the client knows how to talk to.
type BackendKind string

const (
	Radarr   BackendKind = "radarr"
	Sonarr   BackendKind = "sonarr"
	Lidarr   BackendKind = "lidarr"
	Readarr  BackendKind = "readarr"
	Prowlarr BackendKind = "prowlarr"
	Whisparr BackendKind = "whisparr"
)

// DefaultHost is used when a backend descriptor omits both host and URI.
const DefaultHost = "localhost"

var (
	ErrUnknownBackend = errors.New("unknown backend kind")
	ErrMissingToken   = errors.New("api token is required")
	ErrInvalidPort    = errors.New("port must be in range 1..65535")
	ErrInvalidURI     = errors.New("uri must include scheme and host")
)

// AllBackendKinds returns every supported kind in display order.
func AllBackendKinds() []BackendKind {
	return []BackendKind{Radarr, Sonarr, Lidarr, Readarr, Prowlarr, Whisparr}
}

// ParseBackendKind converts s (case-insensitive) into a [BackendKind].
func ParseBackendKind(s string) (BackendKind, error) {
	k := BackendKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}
	return k, nil
}

// Valid reports whether k is one of the known kinds.
func (k BackendKind) Valid() bool {
	switch k {
	case Radarr, Sonarr, Lidarr, Readarr, Prowlarr, Whisparr:
		return true
	}
	return false
}

// DefaultPort returns the port the service listens on out of the box.
func (k BackendKind) DefaultPort() int {
	switch k {
	case Radarr:
		return 7878
	case Sonarr:
		return 8989
	case Lidarr:
		return 8686
	case Readarr:
		return 8787
	case Prowlarr:
		return 9696
	case Whisparr:
		return 6969
	}
	return 0
}

// APIVersion returns the REST API version segment used by the kind.
func (k BackendKind) APIVersion() string {
	switch k {
	case Lidarr, Readarr, Prowlarr:
		return "v1"
	}
	return "v3"
}

// Title returns the human-readable product name.
func (k BackendKind) Title() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

func (k BackendKind) String() string {
	return string(k)
}

// BackendDescriptor is the immutable connection description of one configured
// backend. At most one descriptor per kind exists in a running client.
type BackendDescriptor struct {
	Kind        BackendKind `json:"kind" yaml:"-"`
	Host        string      `json:"host,omitempty" yaml:"host,omitempty"`
	Port        int         `json:"port,omitempty" yaml:"port,omitempty"`
	URI         string      `json:"uri,omitempty" yaml:"uri,omitempty"`
	APIToken    string      `json:"-" yaml:"api_token"`
	SSLCertPath string      `json:"ssl_cert_path,omitempty" yaml:"ssl_cert_path,omitempty"`
}

// Validate checks that the descriptor can be turned into a working client.
func (d BackendDescriptor) Validate() error {
	if !d.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownBackend, d.Kind)
	}
	if strings.TrimSpace(d.APIToken) == "" {
		return fmt.Errorf("%s: %w", d.Kind, ErrMissingToken)
	}
	if d.Port < 0 || d.Port > 65535 {
		return fmt.Errorf("%s: %w", d.Kind, ErrInvalidPort)
	}
	if d.URI != "" {
		u, err := url.Parse(d.URI)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s: %w", d.Kind, ErrInvalidURI)
		}
	}
	return nil
}

// BaseURL resolves the API root, e.g. "http://localhost:7878/api/v3".
//
// An explicit URI wins over host and port. Without a URI the scheme is https
// when a certificate path is configured and http otherwise.
func (d BackendDescriptor) BaseURL() string {
	root := strings.TrimRight(strings.TrimSpace(d.URI), "/")
	if root == "" {
		host := d.Host
		if host == "" {
			host = DefaultHost
		}
		port := d.Port
		if port == 0 {
			port = d.Kind.DefaultPort()
		}
		scheme := "http"
		if d.SSLCertPath != "" {
			scheme = "https"
		}
		// JoinHostPort brackets IPv6 literals itself.
		host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
		root = scheme + "://" + net.JoinHostPort(host, strconv.Itoa(port))
	}

	return root + "/api/" + d.Kind.APIVersion()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "ARRKEEPER_"

// StructuredConfig is the merged view of every configuration source.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Servers holds one optional block per backend kind.
	Servers Servers

	// Network holds outbound request settings.
	// Env: ARRKEEPER_NETWORK_*
	Network Network `envPrefix:"NETWORK_"`

	// UI holds interactive and progress indicator settings.
	UI UI

	// Log holds log file settings.
	// Env: ARRKEEPER_LOG_*
	Log Log `envPrefix:"LOG_"`

	// ConfigFilePath relocates the YAML configuration file.
	// Env: ARRKEEPER_CONFIG_FILE
	ConfigFilePath string `env:"CONFIG_FILE"`
}

// Servers groups the per-kind backend settings.
type Servers struct {
	Radarr   Server `envPrefix:"RADARR_"`
	Sonarr   Server `envPrefix:"SONARR_"`
	Lidarr   Server `envPrefix:"LIDARR_"`
	Readarr  Server `envPrefix:"READARR_"`
	Prowlarr Server `envPrefix:"PROWLARR_"`
	Whisparr Server `envPrefix:"WHISPARR_"`
}

// Server holds the connection settings of one backend. A server with every
// field empty is not configured.
type Server struct {
	// Env: ARRKEEPER_<KIND>_HOST
	Host string `env:"HOST"`
	// Env: ARRKEEPER_<KIND>_PORT
	Port int `env:"PORT"`
	// URI overrides Host and Port when set, e.g. "https://media.example/radarr".
	// Env: ARRKEEPER_<KIND>_URI
	URI string `env:"URI"`
	// Env: ARRKEEPER_<KIND>_API_TOKEN
	APIToken string `env:"API_TOKEN"`
	// SSLCertPath points at a PEM file trusted as the root for this backend.
	// Env: ARRKEEPER_<KIND>_SSL_CERT_PATH
	SSLCertPath string `env:"SSL_CERT_PATH"`
}

// Configured reports whether any field of s is set.
func (s Server) Configured() bool {
	return s != Server{}
}

// Network holds outbound request settings.
type Network struct {
	// RequestTimeout bounds every backend request (e.g. "30s").
	// Env: ARRKEEPER_NETWORK_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// UI holds presentation settings.
type UI struct {
	// RefreshInterval is how often the active view is refreshed.
	// Env: ARRKEEPER_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
	// DisableSpinner turns off the one-shot progress indicator.
	// Env: ARRKEEPER_DISABLE_SPINNER
	DisableSpinner bool `env:"DISABLE_SPINNER"`
}

// Log holds log file settings.
type Log struct {
	// Env: ARRKEEPER_LOG_FILE
	File string `env:"FILE"`
	// Level is a zerolog level name.
	// Env: ARRKEEPER_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads and merges the configuration from all sources.
// For every field the first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. YAML file (path resolved from sources 1 and 2, or the default path)
//  4. Built-in defaults
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flags).
		withYAML().
		withDefaults().
		build()
}

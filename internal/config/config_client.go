package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-arr-keeper/models"
)

// ClientNetwork holds outbound request settings.
type ClientNetwork struct {
	RequestTimeout time.Duration
}

// ClientUI holds presentation settings.
type ClientUI struct {
	RefreshInterval time.Duration
	DisableSpinner  bool
}

// ClientLog holds log file settings.
type ClientLog struct {
	File  string
	Level string
}

// ClientConfig is the runtime configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Backends lists the configured backends in catalogue order, at most one
	// per kind.
	Backends []models.BackendDescriptor
	Network  ClientNetwork
	UI       ClientUI
	Log      ClientLog
	// ConfigFile is the YAML file that was loaded, if any.
	ConfigFile string
}

// Backend returns the descriptor of kind.
func (c *ClientConfig) Backend(kind models.BackendKind) (models.BackendDescriptor, bool) {
	for _, d := range c.Backends {
		if d.Kind == kind {
			return d, true
		}
	}
	return models.BackendDescriptor{}, false
}

// GetClientConfig builds and validates the runtime configuration. flags may
// be nil.
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.client()
	return clientCfg, clientCfg.validate()
}

func (cfg *StructuredConfig) client() *ClientConfig {
	servers := map[models.BackendKind]Server{
		models.Radarr:   cfg.Servers.Radarr,
		models.Sonarr:   cfg.Servers.Sonarr,
		models.Lidarr:   cfg.Servers.Lidarr,
		models.Readarr:  cfg.Servers.Readarr,
		models.Prowlarr: cfg.Servers.Prowlarr,
		models.Whisparr: cfg.Servers.Whisparr,
	}

	var backends []models.BackendDescriptor
	for _, kind := range models.AllBackendKinds() {
		s := servers[kind]
		if !s.Configured() {
			continue
		}
		backends = append(backends, models.BackendDescriptor{
			Kind:        kind,
			Host:        s.Host,
			Port:        s.Port,
			URI:         s.URI,
			APIToken:    s.APIToken,
			SSLCertPath: s.SSLCertPath,
		})
	}

	return &ClientConfig{
		Backends: backends,
		Network: ClientNetwork{
			RequestTimeout: cfg.Network.RequestTimeout,
		},
		UI: ClientUI{
			RefreshInterval: cfg.UI.RefreshInterval,
			DisableSpinner:  cfg.UI.DisableSpinner,
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
		ConfigFile: cfg.ConfigFilePath,
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredYAMLConfig mirrors the layout of config.yml:
//
//	radarr:
//	  host: 192.168.0.78
//	  port: 7878
//	  api_token: someApiToken1234567890
//	  ssl_cert_path: /path/to/radarr.crt
//	sonarr:
//	  uri: https://media.example/sonarr
//	  api_token: someApiToken1234567890
//	network:
//	  request_timeout: 30s
//	ui:
//	  refresh_interval: 20s
//	  disable_spinner: false
//	log:
//	  file: /tmp/arrkeeper.log
//	  level: debug
type StructuredYAMLConfig struct {
	Radarr   *yamlServer `yaml:"radarr,omitempty"`
	Sonarr   *yamlServer `yaml:"sonarr,omitempty"`
	Lidarr   *yamlServer `yaml:"lidarr,omitempty"`
	Readarr  *yamlServer `yaml:"readarr,omitempty"`
	Prowlarr *yamlServer `yaml:"prowlarr,omitempty"`
	Whisparr *yamlServer `yaml:"whisparr,omitempty"`

	Network struct {
		RequestTimeout Duration `yaml:"request_timeout"`
	} `yaml:"network,omitempty"`

	UI struct {
		RefreshInterval Duration `yaml:"refresh_interval"`
		DisableSpinner  bool     `yaml:"disable_spinner"`
	} `yaml:"ui,omitempty"`

	Log struct {
		File  string `yaml:"file"`
		Level string `yaml:"level"`
	} `yaml:"log,omitempty"`
}

type yamlServer struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	URI         string `yaml:"uri"`
	APIToken    string `yaml:"api_token"`
	SSLCertPath string `yaml:"ssl_cert_path"`
}

func (s *yamlServer) server() Server {
	if s == nil {
		return Server{}
	}
	return Server{Host: s.Host, Port: s.Port, URI: s.URI, APIToken: s.APIToken, SSLCertPath: s.SSLCertPath}
}

// ErrConfigFileNotFound is returned when an explicitly given config file does
// not exist.
var ErrConfigFileNotFound = errors.New("config file not found")

// DefaultConfigPath returns $XDG_CONFIG_HOME/arrkeeper/config.yml.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error resolving config dir: %w", err)
	}
	return filepath.Join(dir, "arrkeeper", "config.yml"), nil
}

func parseYAML(yamlFilePath string) (*StructuredConfig, error) {
	data, err := os.ReadFile(yamlFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigFileNotFound, yamlFilePath)
		}
		return nil, fmt.Errorf("error reading a yaml file: %w", err)
	}

	var yamlCfg StructuredYAMLConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("error decoding yaml configs: %w", err)
	}

	cfg := &StructuredConfig{
		Servers: Servers{
			Radarr:   yamlCfg.Radarr.server(),
			Sonarr:   yamlCfg.Sonarr.server(),
			Lidarr:   yamlCfg.Lidarr.server(),
			Readarr:  yamlCfg.Readarr.server(),
			Prowlarr: yamlCfg.Prowlarr.server(),
			Whisparr: yamlCfg.Whisparr.server(),
		},
		Network: Network{
			RequestTimeout: time.Duration(yamlCfg.Network.RequestTimeout),
		},
		UI: UI{
			RefreshInterval: time.Duration(yamlCfg.UI.RefreshInterval),
			DisableSpinner:  yamlCfg.UI.DisableSpinner,
		},
		Log: Log{
			File:  yamlCfg.Log.File,
			Level: yamlCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports YAML unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond integers.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var n int64
	if err := value.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

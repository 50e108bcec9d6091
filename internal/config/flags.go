package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flags holds the values of the configuration flags bound by [BindFlags].
// Only flags the user actually set take part in the merge.
type Flags struct {
	fs *pflag.FlagSet

	configFile      string
	requestTimeout  time.Duration
	refreshInterval time.Duration
	logFile         string
	disableSpinner  bool
}

// BindFlags registers the configuration flags on fs.
//
// Flags:
//
//	--config            YAML config file path
//	--request-timeout   per-request timeout (e.g., "30s", "1m")
//	--refresh-interval  interactive refresh interval (e.g., "20s")
//	--log-file          log file path
//	--disable-spinner   hide the one-shot progress indicator
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}

	fs.StringVar(&f.configFile, "config", "", "YAML config file path")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Per-request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&f.refreshInterval, "refresh-interval", 0, "Interactive refresh interval (e.g., 20s)")
	fs.StringVar(&f.logFile, "log-file", "", "Log file path")
	fs.BoolVar(&f.disableSpinner, "disable-spinner", false, "Hide the progress indicator")

	return f
}

func (f *Flags) changed(name string) bool {
	return f.fs != nil && f.fs.Changed(name)
}

// structured returns the flag values as a partial [StructuredConfig].
func (f *Flags) structured() *StructuredConfig {
	cfg := &StructuredConfig{}
	if f == nil {
		return cfg
	}

	if f.changed("config") {
		cfg.ConfigFilePath = f.configFile
	}
	if f.changed("request-timeout") {
		cfg.Network.RequestTimeout = f.requestTimeout
	}
	if f.changed("refresh-interval") {
		cfg.UI.RefreshInterval = f.refreshInterval
	}
	if f.changed("log-file") {
		cfg.Log.File = f.logFile
	}
	if f.changed("disable-spinner") {
		cfg.UI.DisableSpinner = f.disableSpinner
	}

	return cfg
}

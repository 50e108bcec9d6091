package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultRequestTimeout  = 30 * time.Second
	DefaultRefreshInterval = 20 * time.Second
	DefaultLogLevel        = "info"
)

// DefaultLogPath returns $XDG_CACHE_HOME/arrkeeper/arrkeeper.log, falling
// back to the system temp dir when no cache dir can be resolved.
func DefaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "arrkeeper", "arrkeeper.log")
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Network: Network{RequestTimeout: DefaultRequestTimeout},
		UI:      UI{RefreshInterval: DefaultRefreshInterval},
		Log:     Log{File: DefaultLogPath(), Level: DefaultLogLevel},
	}
}

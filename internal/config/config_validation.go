// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final [ClientConfig] can start the application.
// Every backend problem is reported, not only the first one.
func (cfg *ClientConfig) validate() error {
	if len(cfg.Backends) == 0 {
		return ErrNoBackendsConfigs
	}

	var backendErrs error
	for _, d := range cfg.Backends {
		if err := d.Validate(); err != nil {
			backendErrs = errors.Join(backendErrs, err)
		}
	}
	if backendErrs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBackendConfigs, backendErrs)
	}

	if cfg.Network.RequestTimeout <= 0 {
		return ErrInvalidNetworkConfigs
	}

	if cfg.UI.RefreshInterval <= 0 {
		return ErrInvalidUIConfigs
	}

	if cfg.Log.File == "" {
		return ErrInvalidLogConfigs
	}
	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}

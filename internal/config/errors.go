package config

import "errors"

// Validation errors returned by [ClientConfig.validate].
var (
	// ErrNoBackendsConfigs indicates that no backend is configured at all.
	ErrNoBackendsConfigs = errors.New("no backends configured")
	// ErrInvalidBackendConfigs indicates a configured backend that cannot be
	// used (for example, a missing API token or an out-of-range port).
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration")
	// ErrInvalidNetworkConfigs indicates a non-positive request timeout.
	ErrInvalidNetworkConfigs = errors.New("invalid network configuration")
	// ErrInvalidUIConfigs indicates a non-positive refresh interval.
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
	// ErrInvalidLogConfigs indicates an unknown log level or an empty log
	// file path.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)

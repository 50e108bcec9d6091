// Package config provides configuration loading, merging, and validation
// facilities for arrkeeper.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for every non-zero field):
//  1. Environment variables prefixed with ARRKEEPER_
//  2. Command-line flags
//  3. YAML config file
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig], which turns the merged
// [StructuredConfig] into validated backend descriptors and runtime settings.
package config

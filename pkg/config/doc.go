// Package config handles configuration management for modsync.
// It supports loading configuration from multiple sources including
// the embedded defaults, the project's TOML file, environment variables,
// and command-line flags.
package config

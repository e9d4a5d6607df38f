// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for the letters
// client. It is populated by merging built-in defaults, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds logging settings of the running client.
	App App `envPrefix:"APP_"`

	// Adapter holds the letters API address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local cache database and download directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from defaults, environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client-wide settings.
type App struct {
	// LogFile is the file client logs are appended to.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Adapter holds settings of the outbound letters API connection.
type Adapter struct {
	// HTTPAddress is the base address of the letters service, with or
	// without scheme (e.g. "http://localhost:5000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request including the response body
	// (e.g. "30s", "2m"). Archive downloads can be slow.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the SQLite cache settings.
	DB DB `envPrefix:"DB_"`

	// DownloadDir is the directory downloaded documents are saved to.
	// Env: STORAGE_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`
}

// DB holds connection settings for the local SQLite cache.
type DB struct {
	// DSN is the SQLite data source name, usually a file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// StatusInterval is how often the server status is polled in the
	// background. Zero disables polling.
	// Env: WORKERS_STATUS_INTERVAL
	StatusInterval time.Duration `env:"STATUS_INTERVAL"`
}

// Defaults used when no other source sets a value.
const (
	DefaultHTTPAddress    = "http://localhost:5000"
	DefaultRequestTimeout = 2 * time.Minute
	DefaultDSN            = "letters.db"
	DefaultDownloadDir    = "downloads"
	DefaultLogLevel       = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogLevel: DefaultLogLevel},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			DB:          DB{DSN: DefaultDSN},
			DownloadDir: DefaultDownloadDir,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (flagCfg, may be nil)
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flagCfg).
		withJSON().
		build()
}

// RegisterFlags binds the configuration flags to fs and returns the config
// they are parsed into. Pass the result to [GetClientConfig] after fs has
// been parsed; unset flags stay zero and do not override other sources.
func RegisterFlags(fs *pflag.FlagSet) *StructuredConfig {
	return registerFlags(fs)
}

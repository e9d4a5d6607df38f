package config

import (
	"fmt"
	"time"
)

// ClientApp holds logging settings of the client process.
type ClientApp struct {
	// LogFile is where client logs are appended; empty means next to the
	// executable.
	LogFile string
	// LogLevel is a zerolog level name.
	LogLevel string `validate:"omitempty,oneof=trace debug info warn error"`
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the letters service address.
	HTTPAddress string `validate:"required"`
	// RequestTimeout is the timeout for outbound requests.
	RequestTimeout time.Duration `validate:"gt=0"`
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string of the local cache.
	DSN string `validate:"required"`
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// DownloadDir is where downloaded documents are written.
	DownloadDir string `validate:"required"`
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// StatusInterval defines how often the status job runs; zero disables it.
	StatusInterval time.Duration `validate:"gte=0"`
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. flagCfg is the value returned by
// [RegisterFlags]; nil skips the flags source.
func GetClientConfig(flagCfg *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flagCfg)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogFile:  cfg.App.LogFile,
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			DownloadDir: cfg.Storage.DownloadDir,
		},
		Workers: ClientWorkers{StatusInterval: cfg.Workers.StatusInterval},
	}
}

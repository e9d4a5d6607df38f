package config

import (
	"github.com/spf13/pflag"
)

// registerFlags defines all configuration flags on fs.
//
// Flags:
//
//	-a, --address           letters service address
//	    --request-timeout   request timeout (e.g. "30s", "2m")
//	-d, --dsn               local cache database DSN
//	-o, --download-dir      directory downloaded documents are saved to
//	    --status-interval   background status poll interval, 0 disables
//	    --log-file          client log file
//	    --log-level         log level
//	-c, --config            json file path with configs
func registerFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.Adapter.HTTPAddress, "address", "a", "", "Letters service address")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 2m)")
	fs.StringVarP(&cfg.Storage.DB.DSN, "dsn", "d", "", "Local cache database DSN")
	fs.StringVarP(&cfg.Storage.DownloadDir, "download-dir", "o", "", "Directory for downloaded documents")
	fs.DurationVar(&cfg.Workers.StatusInterval, "status-interval", 0, "Background status poll interval, 0 disables")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Client log file")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")

	return cfg
}

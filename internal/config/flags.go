package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server base URL (e.g. https://storage.example.com)
//	-d local metadata cache path (SQLite file)
//	-c/-config json file path with configs
//	-kdf-domain key-derivation deployment domain
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-refresh-interval background index refresh interval (e.g., "5m")
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var cacheDSN string
	var jsonConfigPath string
	var kdfDomain string
	var requestTimeout time.Duration
	var refreshInterval time.Duration

	flag.StringVar(&serverAddress, "a", "", "Storage server base URL")
	flag.StringVar(&cacheDSN, "d", "", "Local metadata cache path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&kdfDomain, "kdf-domain", "", "Key-derivation deployment domain")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Index refresh interval (e.g., 5m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			KDFDomain: kdfDomain,
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: cacheDSN,
			},
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

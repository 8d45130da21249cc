package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Default values applied by [GetClientConfig] when a setting is absent from
// every configuration source.
const (
	DefaultServerAddress  = "http://localhost:4000"
	DefaultRequestTimeout = 15 * time.Second
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// WebBaseURL is the public web application base URL for share links.
	WebBaseURL string
	// DownloadDir is where downloaded payloads are written.
	DownloadDir string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the share-in REST backend.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client persistence settings.
type ClientStorage struct {
	// CredentialsPath is the session-token file location.
	CredentialsPath string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains local persistence settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates the client config view from the merged
// structured configuration, applying defaults for anything left unset.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			WebBaseURL:  cfg.App.WebBaseURL,
			DownloadDir: cfg.App.DownloadDir,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			CredentialsPath: cfg.Storage.Credentials.Path,
		},
	}

	clientCfg.applyDefaults()
	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultServerAddress
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.App.WebBaseURL == "" {
		// Share links fall back to the backend host when no separate web
		// application URL is configured.
		cfg.App.WebBaseURL = cfg.Adapter.HTTPAddress
	}
	if cfg.App.DownloadDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.App.DownloadDir = filepath.Join(home, "Downloads")
		} else {
			cfg.App.DownloadDir = "."
		}
	}
	if cfg.Storage.CredentialsPath == "" {
		if confDir, err := os.UserConfigDir(); err == nil {
			cfg.Storage.CredentialsPath = filepath.Join(confDir, "share-in", "credentials.json")
		} else {
			cfg.Storage.CredentialsPath = "credentials.json"
		}
	}
}

package config

import "time"

// StructuredConfig is the top-level configuration container for the share-in
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the public web base URL
	// used to build share links and the local download directory.
	App App `envPrefix:"APP_"`

	// Adapter holds network settings for the outbound REST transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds local persistence settings (the credential file).
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// WebBaseURL is the public base URL of the share-in web application.
	// Share links take the form <WebBaseURL>/file/<id>.
	// Env: APP_WEB_BASE_URL
	WebBaseURL string `env:"WEB_BASE_URL"`

	// DownloadDir is the directory downloaded payloads are written to.
	// Env: APP_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`
}

// Adapter holds settings for the outbound HTTP transport.
type Adapter struct {
	// HTTPAddress is the base address of the share-in REST backend,
	// e.g. "http://localhost:4000".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the per-request timeout for outbound calls
	// (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	// Credentials holds the session-token slot settings.
	Credentials Credentials `envPrefix:"CREDENTIALS_"`
}

// Credentials holds the credential-file settings.
type Credentials struct {
	// Path is the location of the persisted session-token file.
	// ":memory:" keeps the token in-process only.
	// Env: STORAGE_CREDENTIALS_PATH
	Path string `env:"PATH"`
}

// GetStructuredConfig loads, merges, and validates the raw configuration from
// all available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

package config

// validate checks that the final [ClientConfig] satisfies all invariants
// required at startup. Defaults have already been applied, so empty fields
// indicate a genuinely unusable configuration.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.CredentialsPath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.DownloadDir == "" || cfg.App.WebBaseURL == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

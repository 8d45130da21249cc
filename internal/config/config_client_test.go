package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientConfig_ApplyDefaults(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultServerAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, cfg.Adapter.HTTPAddress, cfg.App.WebBaseURL)
	assert.NotEmpty(t, cfg.App.DownloadDir)
	assert.NotEmpty(t, cfg.Storage.CredentialsPath)
}

func TestClientConfig_DefaultsKeepExplicitValues(t *testing.T) {
	cfg := &ClientConfig{
		App: ClientApp{WebBaseURL: "https://web.example.com", DownloadDir: "/dl"},
		Adapter: ClientAdapter{
			HTTPAddress:    "http://api.example.com",
			RequestTimeout: time.Minute,
		},
		Storage: ClientStorage{CredentialsPath: "/creds.json"},
	}
	cfg.applyDefaults()

	assert.Equal(t, "http://api.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "https://web.example.com", cfg.App.WebBaseURL)
	assert.Equal(t, "/dl", cfg.App.DownloadDir)
	assert.Equal(t, "/creds.json", cfg.Storage.CredentialsPath)
}

func TestClientConfig_Validate(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()
	require.NoError(t, cfg.validate())

	broken := &ClientConfig{}
	assert.ErrorIs(t, broken.validate(), ErrInvalidAdapterConfigs)
}

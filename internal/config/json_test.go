package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON(t *testing.T) {
	path := writeJSONConfig(t, `{
		"app": {"web_base_url": "https://share-in.example.com", "download_dir": "/data/dl"},
		"adapter": {"address": "http://api.example.com", "request_timeout": "45s"},
		"storage": {"credentials": {"path": "/data/creds.json"}}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "https://share-in.example.com", cfg.App.WebBaseURL)
	assert.Equal(t, "/data/dl", cfg.App.DownloadDir)
	assert.Equal(t, "http://api.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/data/creds.json", cfg.Storage.Credentials.Path)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeJSONConfig(t, `{"adapter": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestParseJSON_Malformed(t *testing.T) {
	path := writeJSONConfig(t, `{broken`)

	_, err := parseJSON(path)
	require.Error(t, err)
}

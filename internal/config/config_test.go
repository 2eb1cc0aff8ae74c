package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"CONFIG_FILE", "MODE", "LISTEN_ADDR", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL",
	"LOG_FORMAT", "TLS_DOMAINS", "TLS_CACHE_DIR", "SHUTDOWN_TIMEOUT",
}

// clearEnv unsets every key Load reads and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ModeLocal, cfg.Mode)
	assert.Equal(t, "0.0.0.0:8000", cfg.ListenAddr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.TLSEnabled())
}

func TestLoadServerMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("MODE", "server")
	t.Setenv("TLS_DOMAINS", "api.example.com, www.example.com")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com,,https://admin.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"api.example.com", "www.example.com"}, cfg.TLSDomains)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
	assert.True(t, cfg.TLSEnabled())
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]map[string]string{
		"bad mode":           {"MODE": "cloud"},
		"bad log level":      {"LOG_LEVEL": "loud"},
		"bad log format":     {"LOG_FORMAT": "xml"},
		"no origins":         {"CORS_ALLOWED_ORIGINS": " , "},
		"tls in local mode":  {"TLS_DOMAINS": "api.example.com"},
		"bad timeout":        {"SHUTDOWN_TIMEOUT": "soon"},
		"non-positive delay": {"SHUTDOWN_TIMEOUT": "0s"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "launchpad.yaml")
	content := `
mode: server
listenAddr: 127.0.0.1:9000
allowedOrigins:
  - https://app.example.com
logFormat: json
shutdownTimeout: 10s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("LISTEN_ADDR", "127.0.0.1:9100")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ModeServer, cfg.Mode)
	assert.Equal(t, "127.0.0.1:9100", cfg.ListenAddr, "env overrides file")
	assert.Equal(t, []string{"https://app.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfigFileMissing(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.ErrorIs(t, err, ErrReadFile)
}

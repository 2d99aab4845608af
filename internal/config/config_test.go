package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://localhost:44356", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.NotEmpty(t, cfg.DataDir)
}

func TestLoad_BothConfigFilesMerge(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("api_url=https://envfile.example.com\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cardapio.yaml"),
		[]byte("log_level: debug\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://envfile.example.com", cfg.APIBaseURL, ".env value survives the yaml merge")
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CARDAPIO_API_URL", "https://menu.example.com/")
	t.Setenv("CARDAPIO_TIMEOUT_SECONDS", "30")
	t.Setenv("CARDAPIO_DATA_DIR", "/tmp/cardapio-test")
	t.Setenv("CARDAPIO_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://menu.example.com", cfg.APIBaseURL, "trailing slash trimmed")
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "/tmp/cardapio-test", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
}

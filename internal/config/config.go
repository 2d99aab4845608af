// Package config loads client configuration from environment variables and
// an optional config file via Viper. Env vars win.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"cardapio-cli/internal/api"
	"cardapio-cli/internal/session"
)

type Config struct {
	// APIBaseURL is the menu API origin. Defaults to the development host.
	APIBaseURL string
	// Timeout applies to every API call.
	Timeout time.Duration
	// DataDir holds the local session database.
	DataDir string
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string
}

// Load reads CARDAPIO_* env vars plus an optional .env / cardapio.yaml in
// the working directory.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing file is fine

	// Merge, don't replace: .env values survive when both files exist
	// (cardapio.yaml wins on duplicated keys).
	v.SetConfigName("cardapio")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.MergeInConfig()

	v.SetEnvPrefix("CARDAPIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("api_url", api.DefaultBaseURL)
	v.SetDefault("timeout_seconds", 15)
	v.SetDefault("log_level", "warn")

	dataDir := strings.TrimSpace(v.GetString("data_dir"))
	if dataDir == "" {
		d, err := session.DefaultDir()
		if err != nil {
			return nil, err
		}
		dataDir = d
	}

	return &Config{
		APIBaseURL: strings.TrimRight(v.GetString("api_url"), "/"),
		Timeout:    time.Duration(v.GetInt("timeout_seconds")) * time.Second,
		DataDir:    dataDir,
		LogLevel:   v.GetString("log_level"),
	}, nil
}

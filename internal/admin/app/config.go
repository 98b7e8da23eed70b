package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the CLI's environment configuration, read from BUILDORA_*
// variables.
type Config struct {
	// BaseURL is the Buildora backend API root, fixed per deployment.
	BaseURL string `envconfig:"base_url" default:"http://localhost:5000/api/v1"`

	// RequestTimeout bounds each backend call.
	RequestTimeout time.Duration `envconfig:"request_timeout" default:"10s"`

	// CredentialFile holds the persisted access credential. Defaults to
	// ~/.buildora/credentials.
	CredentialFile string `envconfig:"credential_file"`

	// RateLimit throttles outbound requests per second. Zero disables it.
	RateLimit float64 `envconfig:"rate_limit" default:"0"`
	RateBurst int     `envconfig:"rate_burst" default:"1"`

	Env       string `envconfig:"env" default:"dev"`
	LogLevel  string `envconfig:"log_level" default:"info"`
	LogFormat string `envconfig:"log_format" default:"text"`
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("buildora", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment: %w", err)
	}

	if cfg.CredentialFile == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			cfg.CredentialFile = filepath.Join(home, ".buildora", "credentials")
		}
	}

	return cfg, nil
}

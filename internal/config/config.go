package config

import (
	"time"

	"warctl/internal/manager"
)

// Config is the per-host warctl configuration. Everything here can be
// overridden per call via CLI flags; the file only supplies defaults.
type Config struct {
	// URL is the manager webapp base URL.
	URL string `yaml:"url"`

	// Username and Password authenticate against the manager webapp
	// (the manager-script role).
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	// Timeout bounds each manager request, in seconds.
	TimeoutSeconds int `yaml:"timeout"`

	// Environment names the artifact source environment.
	Environment string `yaml:"environment"`

	// TempDir overrides the staging location for WAR copies.
	TempDir string `yaml:"tempDir"`
}

// Timeout returns the request timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// GetDefaultConfig returns the built-in defaults applied before the
// config file is read.
func GetDefaultConfig() Config {
	return Config{
		URL:            manager.DefaultURL,
		TimeoutSeconds: 180,
		Environment:    "base",
	}
}

package main

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/go-hclog"
)

// envPrefix scopes every recognized environment variable.
const envPrefix = "PASSIMAGES_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string `env:"CONFIG"` // PASSIMAGES_CONFIG: config file name or path
	Dir        string `env:"DIR"`    // PASSIMAGES_DIR: images directory
	Format     string `env:"FORMAT"` // PASSIMAGES_FORMAT: report format
	Title      string `env:"TITLE"`  // PASSIMAGES_TITLE: report heading
}

// knownEnvVars lists valid PASSIMAGES_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	envPrefix + "CONFIG": true,
	envPrefix + "DIR":    true,
	envPrefix + "FORMAT": true,
	envPrefix + "TITLE":  true,
}

// loadEnvConfig reads PASSIMAGES_* values from environ.
func loadEnvConfig(environ []string) (*envConfig, error) {
	cfg := &envConfig{}
	opts := env.Options{
		Environment: env.ToMap(environ),
		Prefix:      envPrefix,
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// warnUnknownEnvVars logs warnings for unrecognized PASSIMAGES_* variables.
// Helps catch typos like PASSIMAGES_FROMAT.
func warnUnknownEnvVars(environ []string, logger hclog.Logger) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

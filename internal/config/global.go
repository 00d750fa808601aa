// Package config handles the dockr global configuration, per-project
// dockr.yaml files, and .env overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Catalog sources.
const (
	SourceHub = "hub"
	SourceOCI = "oci"
)

// GlobalConfig represents the user's dockr configuration file.
type GlobalConfig struct {
	// RegistryURL is the Docker Hub API base used by the hub source.
	RegistryURL string `yaml:"registry_url"`

	// Catalog selects how tags are listed.
	Catalog CatalogConfig `yaml:"catalog"`

	// HTTPTimeout bounds each registry request. Zero means no timeout.
	HTTPTimeout time.Duration `yaml:"http_timeout"`
}

// CatalogConfig selects the tag listing backend.
type CatalogConfig struct {
	// Source is "hub" (default) or "oci".
	Source string `yaml:"source"`

	// Registry is the OCI registry host for the oci source.
	Registry string `yaml:"registry"`

	// Insecure allows plain HTTP for the oci source.
	Insecure bool `yaml:"insecure"`
}

// DefaultConfigDir returns the default configuration directory, respecting XDG_CONFIG_HOME.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dockr")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "dockr")
	}

	return filepath.Join(home, ".config", "dockr")
}

// DefaultConfigPath returns the global config file location.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// LoadGlobalConfig reads the global config from the given path.
// If the file doesn't exist, it returns a zero-value config (no error).
func LoadGlobalConfig(path string) (*GlobalConfig, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}

		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := ValidateGlobal(&cfg); err != nil {
		return nil, fmt.Errorf("validating config %s: %w", path, err)
	}

	return &cfg, nil
}

// CatalogSource returns the configured source, defaulting to hub.
func (c *GlobalConfig) CatalogSource() string {
	if c.Catalog.Source == "" {
		return SourceHub
	}

	return c.Catalog.Source
}

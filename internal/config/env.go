package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment variables that override configuration.
const (
	EnvRegistryURL = "DOCKR_REGISTRY_URL"
	EnvRVersion    = "DOCKR_R_VERSION"
)

// LoadEnv loads dir/.env into the process environment if it exists. Variables
// already set in the environment win over the file.
func LoadEnv(dir string) error {
	path := filepath.Join(dir, ".env")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	return nil
}

// ApplyEnv overrides global settings from the environment.
func (c *GlobalConfig) ApplyEnv() {
	if v := os.Getenv(EnvRegistryURL); v != "" {
		c.RegistryURL = v
	}
}

// RVersionFromEnv returns the R version override from the environment, if any.
func RVersionFromEnv() string {
	return os.Getenv(EnvRVersion)
}

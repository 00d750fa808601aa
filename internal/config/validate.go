package config

import (
	"fmt"
	"strconv"
	"strings"
)

// validSources are the allowed catalog sources.
var validSources = map[string]bool{
	SourceHub: true,
	SourceOCI: true,
}

// ValidateGlobal checks a GlobalConfig for valid values.
func ValidateGlobal(cfg *GlobalConfig) error {
	if cfg.Catalog.Source != "" && !validSources[cfg.Catalog.Source] {
		return fmt.Errorf("invalid catalog.source %q, must be one of: hub, oci", cfg.Catalog.Source)
	}

	if cfg.HTTPTimeout < 0 {
		return fmt.Errorf("http_timeout must not be negative, got %s", cfg.HTTPTimeout)
	}

	return nil
}

// ValidateProject checks the scalar fields of a Project. File, version, and
// family fields are validated later with the validate package.
func ValidateProject(p *Project) error {
	if p.ExposePort != "" {
		if err := ValidatePort(p.ExposePort); err != nil {
			return err
		}
	}

	if p.HomeDir != "" {
		if err := ValidateHomeDir(p.HomeDir); err != nil {
			return err
		}
	}

	return ValidateUser(p.AddUser)
}

// ValidateHomeDir checks that dir is an absolute in-container path.
func ValidateHomeDir(dir string) error {
	if !strings.HasPrefix(dir, "/") {
		return fmt.Errorf("home_dir %q must be an absolute path", dir)
	}

	return nil
}

// ValidateUser checks that an optional account name is a single word.
func ValidateUser(user string) error {
	if strings.ContainsAny(user, " \t\n") {
		return fmt.Errorf("add_user %q must not contain whitespace", user)
	}

	return nil
}

// ValidatePort checks that port is a TCP port number.
func ValidatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("invalid port %q, must be a number between 1 and 65535", port)
	}

	return nil
}

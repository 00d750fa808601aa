// Package initcmd implements the dockr init command, which writes a starter
// dockr.yaml into an R project.
package initcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/donaldgifford/dockr/internal/config"
	"github.com/donaldgifford/dockr/internal/rversion"
	"github.com/donaldgifford/dockr/internal/validate"
)

// Opts configures the init operation.
type Opts struct {
	// Dir is the project directory. Empty means current directory.
	Dir string
	// RMode is the image family written to the file. Empty means base.
	RMode string
	// RVersion is the version written to the file. Empty means current.
	RVersion string
}

const projectTemplate = `# dockr project settings. Command line flags override these values.
r_version: %q
r_mode: %s
home_dir: /home
expose_port: "8787"
install_syslibs: true
install_quarto: false
comments: true

# Files to copy into the image. Each entry may be a path or a list of paths.
# data_file:
#   - data/raw.csv
# code_file: analysis.R
# misc_file: README.md

# add_user: analyst
# restore_script: scripts/restore.sh

# Commands run next to the Dockerfile after it is written.
# post_generate:
#   - hadolint Dockerfile
`

// Run writes dockr.yaml and returns its path. It refuses to overwrite an
// existing file.
func Run(opts *Opts) (string, error) {
	dir := "."
	if opts.Dir != "" {
		dir = opts.Dir
	}

	mode := opts.RMode
	if mode == "" {
		mode = "base"
	}

	if _, err := validate.Family(mode); err != nil {
		return "", err
	}

	version := opts.RVersion
	if version == "" {
		version = rversion.Current
	} else if version != rversion.Current {
		if _, err := validate.Version(version); err != nil {
			return "", err
		}
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, config.ProjectFileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists at %s", config.ProjectFileName, path)
	}

	content := fmt.Sprintf(projectTemplate, version, mode)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", config.ProjectFileName, err)
	}

	return path, nil
}

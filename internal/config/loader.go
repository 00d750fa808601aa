package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProjectFileName is the per-project configuration file.
const ProjectFileName = "dockr.yaml"

// Project holds generate options stored in a project's dockr.yaml. Fields
// that may hold several shapes are decoded as any and checked by the
// validate package, so a list where a single value is required is reported
// as an argument type error rather than a YAML error.
type Project struct {
	RVersion       any    `yaml:"r_version"`
	RMode          any    `yaml:"r_mode"`
	DataFile       any    `yaml:"data_file"`
	CodeFile       any    `yaml:"code_file"`
	MiscFile       any    `yaml:"misc_file"`
	AddUser        string `yaml:"add_user"`
	HomeDir        string `yaml:"home_dir"`
	ExposePort     string `yaml:"expose_port"`
	InstallQuarto  *bool  `yaml:"install_quarto"`
	InstallSyslibs *bool  `yaml:"install_syslibs"`
	Comments       *bool  `yaml:"comments"`
	Output         string `yaml:"output"`
	RestoreScript  string `yaml:"restore_script"`

	// PostGenerate commands run in the build context after the Dockerfile
	// is written.
	PostGenerate []string `yaml:"post_generate"`
}

// LoadProject reads and parses a dockr.yaml file from the given path.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the caller
	if err != nil {
		return nil, fmt.Errorf("reading project file %s: %w", path, err)
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing project file %s: %w", path, err)
	}

	if err := ValidateProject(&p); err != nil {
		return nil, fmt.Errorf("validating project file %s: %w", path, err)
	}

	return &p, nil
}

// LoadProjectIfExists is LoadProject, but a missing file yields (nil, nil).
func LoadProjectIfExists(path string) (*Project, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	return LoadProject(path)
}

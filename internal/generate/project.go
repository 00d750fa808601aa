package generate

import (
	"os"
	"path/filepath"

	"github.com/donaldgifford/dockr/internal/config"
)

// ApplyProject copies the settings present in a project's dockr.yaml onto
// opts. Relative file paths are resolved against the project directory.
func ApplyProject(opts *Opts, p *config.Project, projectDir string) {
	if p == nil {
		return
	}

	if p.RVersion != nil {
		opts.RVersion = p.RVersion
	}

	if p.RMode != nil {
		opts.RMode = p.RMode
	}

	if p.DataFile != nil {
		opts.DataFile = relativeTo(projectDir, p.DataFile)
	}

	if p.CodeFile != nil {
		opts.CodeFile = relativeTo(projectDir, p.CodeFile)
	}

	if p.MiscFile != nil {
		opts.MiscFile = relativeTo(projectDir, p.MiscFile)
	}

	if p.AddUser != "" {
		opts.AddUser = p.AddUser
	}

	if p.HomeDir != "" {
		opts.HomeDir = p.HomeDir
	}

	if p.ExposePort != "" {
		opts.ExposePort = p.ExposePort
	}

	if p.InstallQuarto != nil {
		opts.InstallQuarto = *p.InstallQuarto
	}

	if p.InstallSyslibs != nil {
		opts.InstallSyslibs = *p.InstallSyslibs
	}

	if p.Comments != nil {
		opts.Comments = *p.Comments
	}

	if p.Output != "" {
		opts.Output = joinIfRelative(projectDir, p.Output)
	}

	if p.RestoreScript != "" {
		// Remote go-getter sources pass through untouched.
		opts.RestoreScript = p.RestoreScript
		if local := joinIfRelative(projectDir, p.RestoreScript); fileExists(local) {
			opts.RestoreScript = local
		}
	}
}

// relativeTo rewrites string paths, leaving other shapes for validation to
// report.
func relativeTo(dir string, value any) any {
	switch v := value.(type) {
	case string:
		return joinIfRelative(dir, v)
	case []any:
		out := make([]any, len(v))

		for i, item := range v {
			if s, ok := item.(string); ok {
				out[i] = joinIfRelative(dir, s)
			} else {
				out[i] = item
			}
		}

		return out
	default:
		return value
	}
}

func joinIfRelative(dir, path string) string {
	if dir == "" || filepath.IsAbs(path) {
		return path
	}

	// Keep a trailing separator so directory outputs stay directories.
	joined := filepath.Join(dir, path)
	if len(path) > 0 && (path[len(path)-1] == '/' || path[len(path)-1] == filepath.Separator) {
		joined += string(filepath.Separator)
	}

	return joined
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

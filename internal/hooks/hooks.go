// Package hooks runs the post-generate commands listed in a project's
// dockr.yaml, such as a Dockerfile linter.
package hooks

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
)

// Environment passed to every hook.
const (
	EnvDockerfile = "DOCKR_DOCKERFILE"
	EnvImage      = "DOCKR_IMAGE"
)

// Opts configures hook execution.
type Opts struct {
	// Commands are shell commands run in order with sh -c.
	Commands []string
	// WorkDir is the directory the hooks run in, normally the build context.
	WorkDir string
	// Dockerfile is the generated file, exported as DOCKR_DOCKERFILE.
	Dockerfile string
	// Image is the base image reference, exported as DOCKR_IMAGE.
	Image string
	// Stdout receives hook standard output.
	Stdout io.Writer
	// Stderr receives hook standard error.
	Stderr io.Writer
	// Logger for debug output.
	Logger *slog.Logger
}

// RunPostGenerate executes the hooks in order. A failing hook is logged and
// collected; the rest still run since the Dockerfile is already written.
func RunPostGenerate(ctx context.Context, opts *Opts) []error {
	if len(opts.Commands) == 0 {
		return nil
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var errs []error

	for _, command := range opts.Commands {
		logger.Debug("running post-generate hook", "cmd", command, "dir", opts.WorkDir)

		if err := run(ctx, command, opts); err != nil {
			logger.Warn("post-generate hook failed", "cmd", command, "err", err)
			errs = append(errs, fmt.Errorf("hook %q: %w", command, err))
		}
	}

	return errs
}

func run(ctx context.Context, command string, opts *Opts) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", command) //nolint:gosec // commands come from the user's own dockr.yaml
	cmd.Dir = opts.WorkDir
	cmd.Env = append(cmd.Environ(),
		EnvDockerfile+"="+opts.Dockerfile,
		EnvImage+"="+opts.Image,
	)
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr

	return cmd.Run()
}

// Package rversion reports the version of the R interpreter installed on the
// host, used when the caller asks for the "current" R version.
package rversion

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Current is the sentinel meaning "use the host's R version".
const Current = "current"

// Runner executes a command and returns its standard output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// command is what Query runs to ask R for its version.
var command = []string{"Rscript", "--vanilla", "-e", "cat(as.character(getRversion()))"}

// Query returns the host R version (e.g. "4.4.1"). A nil runner uses os/exec.
func Query(ctx context.Context, run Runner) (string, error) {
	if run == nil {
		run = execRunner
	}

	out, err := run(ctx, command[0], command[1:]...)
	if err != nil {
		return "", fmt.Errorf("querying R version with %s: %w", strings.Join(command, " "), err)
	}

	version := strings.TrimSpace(string(out))
	if version == "" {
		return "", fmt.Errorf("querying R version with %s: empty output", command[0])
	}

	return version, nil
}

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}

		return nil, err
	}

	return stdout.Bytes(), nil
}

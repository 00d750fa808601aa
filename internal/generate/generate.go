// Package generate orchestrates the dockr generate workflow: validate inputs,
// confirm the base image tag exists, assemble the Dockerfile, and write it.
package generate

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/donaldgifford/dockr/internal/catalog"
	"github.com/donaldgifford/dockr/internal/config"
	"github.com/donaldgifford/dockr/internal/dockerfile"
	"github.com/donaldgifford/dockr/internal/getter"
	"github.com/donaldgifford/dockr/internal/image"
	"github.com/donaldgifford/dockr/internal/rversion"
	"github.com/donaldgifford/dockr/internal/ui"
	"github.com/donaldgifford/dockr/internal/validate"
)

// Default option values.
const (
	DefaultHomeDir    = "/home"
	DefaultExposePort = "8787"
	DefaultFileName   = "Dockerfile"
)

// Opts holds the options for the generate command.
type Opts struct {
	// RVersion is a version tag or rversion.Current. Nil means current.
	RVersion any

	// RMode is the image family name. Nil means base.
	RMode any

	// DataFile, CodeFile and MiscFile are each nil, a path, or a list of paths.
	DataFile any
	CodeFile any
	MiscFile any

	// AddUser, if set, is a Linux account to create in the image.
	AddUser string

	// HomeDir is the in-container working directory. Empty means /home.
	HomeDir string

	// ExposePort is exposed for the rstudio family. Empty means 8787.
	ExposePort string

	// InstallQuarto adds Quarto to the image.
	InstallQuarto bool

	// InstallSyslibs adds the system library block. Defaults() turns it on.
	InstallSyslibs bool

	// Comments adds explanatory comments to the Dockerfile.
	Comments bool

	// Verbose announces each construction step on Progress.
	Verbose bool

	// Output is the destination file or directory. Empty means ./Dockerfile.
	Output string

	// RestoreScript is a go-getter source for the package restore snippet.
	// Empty means the embedded renv restore script.
	RestoreScript string

	// Resolver confirms the base image tag exists.
	Resolver *catalog.Resolver

	// VersionRunner runs the host R version query. Nil uses os/exec.
	VersionRunner rversion.Runner

	// Getter fetches RestoreScript. Nil creates one.
	Getter *getter.Getter

	// Progress receives step announcements when Verbose is set.
	Progress *ui.Writer

	// Logger for debug output.
	Logger *slog.Logger
}

// Defaults returns Opts populated with the documented defaults.
func Defaults() *Opts {
	return &Opts{
		RVersion:       rversion.Current,
		RMode:          string(image.Base),
		HomeDir:        DefaultHomeDir,
		ExposePort:     DefaultExposePort,
		InstallSyslibs: true,
	}
}

// Result holds the output of a successful generate operation.
type Result struct {
	// Path is the Dockerfile written.
	Path string

	// Image is the base image reference, e.g. "rocker/r-ver:4.3.0".
	Image string

	// Version is the resolved R version tag.
	Version string

	// Lines is the number of lines written.
	Lines int
}

// inputs are the validated, normalized options.
type inputs struct {
	family     image.Family
	version    string
	current    bool
	dataFiles  []string
	codeFiles  []string
	miscFiles  []string
	port       string
	home       string
	output     string
	contextDir string
}

// Run executes the generate workflow. Every check happens before the output
// path is touched, so a failed run leaves no partial Dockerfile.
func Run(ctx context.Context, opts *Opts) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if opts.Resolver == nil {
		return nil, fmt.Errorf("no tag resolver configured")
	}

	announce := func(string) {}
	if opts.Verbose && opts.Progress != nil {
		announce = opts.Progress.Info
	}

	// 1. Validate inputs.
	in, err := validateInputs(opts)
	if err != nil {
		return nil, err
	}

	// 2. Resolve the R version.
	if in.current {
		announce("querying host R version")

		v, err := rversion.Query(ctx, opts.VersionRunner)
		if err != nil {
			return nil, err
		}

		if in.version, err = validate.Version(v); err != nil {
			return nil, fmt.Errorf("host R version: %w", err)
		}
	}

	logger.Debug("resolved inputs", "family", in.family, "version", in.version, "output", in.output)

	// 3. Confirm the tag is published.
	announce(fmt.Sprintf("checking %s is a published %s tag", in.version, in.family))

	ok, err := opts.Resolver.TagExists(ctx, in.version, in.family)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, fmt.Errorf(
			"%w: R version %q is not published for %s; see %s for supported versions",
			validate.ErrUnsupportedVersion, in.version, in.family, in.family.TagsURL(),
		)
	}

	// 4. Load the restore snippet.
	script, err := loadRestoreScript(ctx, opts, logger)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(filepath.Join(in.contextDir, dockerfile.LockfileName)); os.IsNotExist(err) {
		logger.Warn("lockfile not found in build context; docker build will fail until it exists",
			"lockfile", dockerfile.LockfileName, "context", in.contextDir)
	}

	// 5. Assemble.
	lines, err := dockerfile.Assemble(&dockerfile.Spec{
		Family:         in.family,
		Version:        in.version,
		HomeDir:        in.home,
		ExposePort:     in.port,
		Comments:       opts.Comments,
		User:           opts.AddUser,
		DataFiles:      in.dataFiles,
		CodeFiles:      in.codeFiles,
		MiscFiles:      in.miscFiles,
		InstallSyslibs: opts.InstallSyslibs,
		InstallQuarto:  opts.InstallQuarto,
		RestoreScript:  script,
		ContextDir:     in.contextDir,
	}, announce)
	if err != nil {
		return nil, err
	}

	// 6. Write.
	announce("writing " + in.output)

	if err := lines.WriteFile(in.output); err != nil {
		return nil, err
	}

	ref, err := image.Reference(in.family, in.version)
	if err != nil {
		return nil, err
	}

	logger.Info("dockerfile written", "path", in.output, "image", ref, "lines", lines.Len())

	return &Result{
		Path:    in.output,
		Image:   ref,
		Version: in.version,
		Lines:   lines.Len(),
	}, nil
}

func validateInputs(opts *Opts) (*inputs, error) {
	mode := opts.RMode
	if mode == nil {
		mode = string(image.Base)
	}

	family, err := validate.Family(mode)
	if err != nil {
		return nil, err
	}

	in := &inputs{family: family}

	if opts.RVersion == nil || opts.RVersion == rversion.Current {
		in.current = true
	} else if in.version, err = validate.Version(opts.RVersion); err != nil {
		return nil, err
	}

	if in.dataFiles, err = validate.Files("data_file", opts.DataFile); err != nil {
		return nil, err
	}

	if in.codeFiles, err = validate.Files("code_file", opts.CodeFile); err != nil {
		return nil, err
	}

	if in.miscFiles, err = validate.Files("misc_file", opts.MiscFile); err != nil {
		return nil, err
	}

	in.port = opts.ExposePort
	if in.port == "" {
		in.port = DefaultExposePort
	}

	if err := config.ValidatePort(in.port); err != nil {
		return nil, fmt.Errorf("expose_port: %w", err)
	}

	in.home = opts.HomeDir
	if in.home == "" {
		in.home = DefaultHomeDir
	}

	if err := config.ValidateHomeDir(in.home); err != nil {
		return nil, err
	}

	if err := config.ValidateUser(opts.AddUser); err != nil {
		return nil, err
	}

	if in.output, err = ResolveOutput(opts.Output); err != nil {
		return nil, err
	}

	// File paths are validated with symlinks resolved; the context must be
	// too, or files inside it would not be found relative to it.
	in.contextDir = filepath.Dir(in.output)
	if resolved, err := filepath.EvalSymlinks(in.contextDir); err == nil {
		in.contextDir = resolved
	}

	return in, nil
}

// ResolveOutput turns the user's output option into an absolute Dockerfile
// path. Empty means ./Dockerfile; an existing directory or a path ending in a
// separator gets Dockerfile appended.
func ResolveOutput(output string) (string, error) {
	if output == "" {
		output = "."
	}

	isDir := strings.HasSuffix(output, "/") || strings.HasSuffix(output, string(filepath.Separator))

	if info, err := os.Stat(output); err == nil && info.IsDir() {
		isDir = true
	}

	if isDir {
		output = filepath.Join(output, DefaultFileName)
	}

	abs, err := filepath.Abs(output)
	if err != nil {
		return "", fmt.Errorf("resolving output path %q: %w", output, err)
	}

	return abs, nil
}

func loadRestoreScript(ctx context.Context, opts *Opts, logger *slog.Logger) (string, error) {
	if opts.RestoreScript == "" {
		return dockerfile.DefaultRestoreScript, nil
	}

	g := opts.Getter
	if g == nil {
		g = getter.New(logger)
	}

	pwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}

	data, err := g.ReadFile(ctx, opts.RestoreScript, getter.FetchOpts{Pwd: pwd})
	if err != nil {
		return "", fmt.Errorf("loading restore script: %w", err)
	}

	return string(data), nil
}

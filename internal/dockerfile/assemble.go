// Package dockerfile assembles the Dockerfile for an R project from a fixed
// sequence of optional blocks.
package dockerfile

import (
	_ "embed"
	"fmt"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/donaldgifford/dockr/internal/image"
)

// DefaultRestoreScript installs renv and restores the lockfile.
//
//go:embed renv_restore.sh
var DefaultRestoreScript string

// LockfileName is the renv lockfile copied into every image.
const LockfileName = "renv.lock"

// syslibs are the Debian packages most CRAN packages need to compile.
var syslibs = []string{
	"libcurl4-openssl-dev",
	"libssl-dev",
	"libxml2-dev",
	"libfontconfig1-dev",
	"libharfbuzz-dev",
	"libfribidi-dev",
	"libfreetype6-dev",
	"libpng-dev",
	"libtiff5-dev",
	"libjpeg-dev",
}

// Spec is the resolved configuration of one Dockerfile.
type Spec struct {
	// Family selects the base image repository.
	Family image.Family

	// Version is a published tag of the family's repository.
	Version string

	// HomeDir is the in-container working directory.
	HomeDir string

	// ExposePort is published for the RStudio family only.
	ExposePort string

	// Comments adds explanatory comments after each emitted block.
	Comments bool

	// User, if set, is created and switched to.
	User string

	// DataFiles, CodeFiles and MiscFiles are absolute paths of files to copy,
	// in the order they are copied.
	DataFiles []string
	CodeFiles []string
	MiscFiles []string

	// InstallSyslibs adds the system library block.
	InstallSyslibs bool

	// InstallQuarto adds the Quarto install block.
	InstallQuarto bool

	// RestoreScript is embedded verbatim. Empty means DefaultRestoreScript.
	RestoreScript string

	// ContextDir is the docker build context. COPY sources are made relative
	// to it; files outside it are referenced by basename.
	ContextDir string
}

// Assemble builds the Dockerfile lines for spec. It has no side effects other
// than calling announce (which may be nil) once per construction step, and
// returns identical output for identical input.
func Assemble(spec *Spec, announce func(step string)) (*Lines, error) {
	if announce == nil {
		announce = func(string) {}
	}

	ref, err := image.Reference(spec.Family, spec.Version)
	if err != nil {
		return nil, fmt.Errorf("building base image reference: %w", err)
	}

	home := spec.HomeDir
	if home == "" {
		home = "/home"
	}

	l := NewLines(spec.Comments)

	announce("adding base image " + ref)
	l.Append([]string{"FROM " + ref}, fmt.Sprintf("Base image %s (R %s)", ref, spec.Version))

	announce("setting renv library path")
	l.Append([]string{"ENV RENV_PATHS_LIBRARY=renv/library"}, "Keep the renv package library inside the project")

	if spec.InstallSyslibs {
		announce("adding system libraries")
	}
	l.Append(syslibBlock(spec.InstallSyslibs), "System libraries needed to compile common R packages")

	if spec.User != "" {
		announce("adding user " + spec.User)
	}
	l.Append(userBlock(spec.User), fmt.Sprintf("Create the %s account and run as it", spec.User))

	if spec.InstallQuarto {
		announce("adding Quarto")
	}
	l.Append(quartoBlock(spec.InstallQuarto), "Install Quarto for rendering documents")

	announce("setting working directory " + home)
	l.Append([]string{"WORKDIR " + home}, "Set the working directory")

	announce("copying " + LockfileName)
	l.Append([]string{copyLine(LockfileName, path.Join(home, LockfileName))}, "Copy the renv lockfile listing the project's packages")

	l.Append(copyLines(spec.ContextDir, spec.DataFiles, path.Join(home, "data"), announce), "Copy data files")
	l.Append(copyLines(spec.ContextDir, spec.CodeFiles, home, announce), "Copy code files")
	l.Append(copyLines(spec.ContextDir, spec.MiscFiles, home, announce), "Copy miscellaneous files")

	announce("adding package restore step")
	l.Append(restoreBlock(spec.RestoreScript), "Restore the R packages recorded in "+LockfileName)

	if spec.Family.Interactive() {
		announce("exposing port " + spec.ExposePort)
		l.Append([]string{"EXPOSE " + spec.ExposePort}, "Port RStudio Server listens on")

		if spec.Comments {
			l.Append(usageHint(spec.ExposePort), "")
		}
	}

	return l, nil
}

func syslibBlock(enabled bool) []string {
	if !enabled {
		return nil
	}

	block := make([]string, 0, len(syslibs)+2)
	block = append(block, "RUN apt-get update && apt-get install -y --no-install-recommends \\")

	for _, lib := range syslibs {
		block = append(block, "    "+lib+" \\")
	}

	return append(block, "    && rm -rf /var/lib/apt/lists/*")
}

func userBlock(user string) []string {
	if user == "" {
		return nil
	}

	return []string{
		"RUN useradd --create-home --shell /bin/bash " + user,
		"USER " + user,
	}
}

func quartoBlock(enabled bool) []string {
	if !enabled {
		return nil
	}

	return []string{"RUN /rocker_scripts/install_quarto.sh"}
}

func restoreBlock(script string) []string {
	if script == "" {
		script = DefaultRestoreScript
	}

	script = strings.TrimRight(strings.ReplaceAll(script, "\r\n", "\n"), "\n")
	if script == "" {
		return nil
	}

	return strings.Split(script, "\n")
}

func usageHint(port string) []string {
	return []string{
		"# Build: docker build -t my-r-project .",
		fmt.Sprintf("# Run:   docker run --rm -p %s:%s -e PASSWORD=<password> my-r-project", port, port),
		fmt.Sprintf("# Then open http://localhost:%s and log in as user \"rstudio\" with that password.", port),
	}
}

func copyLines(contextDir string, files []string, destDir string, announce func(string)) []string {
	lines := make([]string, 0, len(files))

	for _, f := range files {
		src := contextPath(contextDir, f)
		announce("copying " + src)
		lines = append(lines, copyLine(src, path.Join(destDir, filepath.Base(f))))
	}

	return lines
}

// contextPath returns file relative to the build context, or its basename
// when it lies outside the context.
func contextPath(contextDir, file string) string {
	if contextDir != "" {
		rel, err := filepath.Rel(contextDir, file)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return filepath.ToSlash(rel)
		}
	}

	return filepath.Base(file)
}

// copyLine uses the JSON form when either path contains whitespace.
func copyLine(src, dest string) string {
	if strings.ContainsAny(src+dest, " \t") {
		return fmt.Sprintf("COPY [%s, %s]", strconv.Quote(src), strconv.Quote(dest))
	}

	return "COPY " + src + " " + dest
}

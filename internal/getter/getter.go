// Package getter wraps hashicorp/go-getter for fetching restore scripts from
// local paths, HTTP, git, and other go-getter sources.
package getter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	getter "github.com/hashicorp/go-getter/v2"
)

// Getter wraps go-getter to fetch sources from git, HTTP, and other protocols.
type Getter struct {
	client *getter.Client
	logger *slog.Logger
}

// New creates a Getter with default configuration.
func New(logger *slog.Logger) *Getter {
	if logger == nil {
		logger = slog.Default()
	}

	return &Getter{
		client: &getter.Client{
			DisableSymlinks: true,
		},
		logger: logger,
	}
}

// FetchOpts configures a fetch operation.
type FetchOpts struct {
	// Ref is appended as ?ref= for git sources.
	Ref string

	// Checksum is appended as ?checksum=sha256: for verification.
	Checksum string

	// Pwd is the working directory for relative path detection.
	Pwd string
}

// FetchFile downloads a single file from src to dest.
func (g *Getter) FetchFile(ctx context.Context, src, dest string, opts FetchOpts) error {
	fullSrc := appendQueryParams(src, opts)
	g.logger.Debug("fetching file", "src", fullSrc, "dest", dest)

	req := &getter.Request{
		Src:             fullSrc,
		Dst:             dest,
		Pwd:             opts.Pwd,
		GetMode:         getter.ModeFile,
		Copy:            true,
		DisableSymlinks: true,
	}

	if _, err := g.client.Get(ctx, req); err != nil {
		return fmt.Errorf("fetching file %s: %w", src, err)
	}

	return nil
}

// ReadFile returns the contents of src. Existing local paths are read
// directly; anything else is fetched through go-getter into a scratch
// directory that is removed afterwards.
func (g *Getter) ReadFile(ctx context.Context, src string, opts FetchOpts) ([]byte, error) {
	local := src
	if opts.Pwd != "" && !filepath.IsAbs(local) {
		local = filepath.Join(opts.Pwd, local)
	}

	if info, err := os.Stat(local); err == nil && !info.IsDir() {
		g.logger.Debug("reading local file", "path", local)

		return os.ReadFile(filepath.Clean(local))
	}

	tmpDir, err := os.MkdirTemp("", "dockr-getter-*")
	if err != nil {
		return nil, fmt.Errorf("creating scratch directory: %w", err)
	}
	defer os.RemoveAll(tmpDir) //nolint:errcheck // best-effort cleanup

	dest := filepath.Join(tmpDir, "download")
	if err := g.FetchFile(ctx, src, dest, opts); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Clean(dest))
	if err != nil {
		return nil, fmt.Errorf("reading fetched file %s: %w", src, err)
	}

	return data, nil
}

// appendQueryParams adds ref and checksum query parameters to a source URL.
func appendQueryParams(src string, opts FetchOpts) string {
	sep := "?"
	if strings.Contains(src, "?") {
		sep = "&"
	}

	result := src

	if opts.Ref != "" {
		result += sep + "ref=" + opts.Ref
		sep = "&"
	}

	if opts.Checksum != "" {
		result += sep + "checksum=sha256:" + opts.Checksum
	}

	return result
}

// Package validate checks user-supplied dockr arguments before any network or
// filesystem side effect happens.
package validate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/samber/lo"

	"github.com/donaldgifford/dockr/internal/image"
)

// versionPattern accepts latest, devel, or MAJOR[.MINOR[.PATCH]] with optional
// -cudaX.Y and -ubuntuNN.NN suffixes.
var versionPattern = regexp.MustCompile(`^(latest|devel|\d+(\.\d+){0,2}(-cuda\d+\.\d+)?(-ubuntu\d{2}\.\d{2})?)$`)

// File validates a single optional file argument. A nil value is valid and
// yields an empty path. On success the canonical absolute path is returned.
func File(param string, value any) (string, error) {
	if value == nil {
		return "", nil
	}

	path, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a single string path or absent, got %T", ErrInvalidArgumentType, param, value)
	}

	return existingFile(param, path)
}

// Files validates a file category that may hold several entries. It accepts
// nil, a string, a []string, or a []any of strings as produced by YAML
// decoding. Order is preserved.
func Files(param string, value any) ([]string, error) {
	var raw []string

	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		raw = []string{v}
	case []string:
		raw = v
	case []any:
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s[%d] must be a string path, got %T", ErrInvalidArgumentType, param, i, item)
			}

			raw = append(raw, s)
		}
	default:
		return nil, fmt.Errorf("%w: %s must be a string path or a list of string paths, got %T", ErrInvalidArgumentType, param, value)
	}

	paths := make([]string, 0, len(raw))

	for _, p := range raw {
		abs, err := existingFile(param, p)
		if err != nil {
			return nil, err
		}

		paths = append(paths, abs)
	}

	return paths, nil
}

func existingFile(param, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s %q does not exist", ErrPathNotFound, param, path)
		}

		return "", fmt.Errorf("checking %s %q: %w", param, path, err)
	}

	if info.IsDir() {
		return "", fmt.Errorf("%w: %s %q must be a file, not a directory", ErrPathIsDirectory, param, path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s %q: %w", param, path, err)
	}

	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	return abs, nil
}

// Version checks that value is a single string matching the version tag
// grammar.
func Version(value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: r_version must be a single string, got %T", ErrInvalidArgumentType, value)
	}

	if !versionPattern.MatchString(s) {
		return "", fmt.Errorf(
			"%w: %q; expected latest, devel, or MAJOR[.MINOR[.PATCH]] with optional -cudaX.Y and -ubuntuNN.NN suffixes",
			ErrInvalidVersionFormat, s,
		)
	}

	return s, nil
}

// Family checks that value names a supported image family.
func Family(value any) (image.Family, error) {
	var s string

	switch v := value.(type) {
	case string:
		s = v
	case image.Family:
		s = string(v)
	default:
		return "", fmt.Errorf("%w: r_mode must be a single string, got %T", ErrInvalidArgumentType, value)
	}

	f := image.Family(s)
	if !f.Valid() {
		accepted := lo.Map(image.Families(), func(f image.Family, _ int) string { return f.String() })

		return "", fmt.Errorf("%w: %q, must be one of: %s", ErrInvalidImageFamily, s, strings.Join(accepted, ", "))
	}

	return f, nil
}

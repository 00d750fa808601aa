package dockerfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/donaldgifford/dockr/internal/validate"
)

// Lines is an append-only sequence of Dockerfile lines.
type Lines struct {
	comments bool
	lines    []string
}

// NewLines creates an empty sequence. When comments is true, Append follows
// non-empty content with its explanation.
func NewLines(comments bool) *Lines {
	return &Lines{comments: comments}
}

// Append adds content and, if comments are enabled and content is non-empty,
// an explanatory "# ..." line after it. Empty content contributes nothing,
// not even its comment. An empty explanation is never emitted.
func (l *Lines) Append(content []string, explanation string) {
	if len(content) == 0 {
		return
	}

	l.lines = append(l.lines, content...)

	if l.comments && explanation != "" {
		l.lines = append(l.lines, "# "+explanation)
	}
}

// Len returns the number of lines.
func (l *Lines) Len() int {
	return len(l.lines)
}

// Slice returns a copy of the lines.
func (l *Lines) Slice() []string {
	return append([]string(nil), l.lines...)
}

// String renders the lines joined by newlines with a trailing newline.
func (l *Lines) String() string {
	if len(l.lines) == 0 {
		return ""
	}

	return strings.Join(l.lines, "\n") + "\n"
}

// WriteFile writes the lines to path. Content goes to a temporary file in the
// same directory first and is renamed into place, so a failed write never
// leaves a truncated Dockerfile behind.
func (l *Lines) WriteFile(path string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".dockr-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", validate.ErrWriteFailed, path, err)
	}

	tmpName := tmp.Name()

	if err := writeAndClose(tmp, l.String()); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %w", validate.ErrWriteFailed, path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %w", validate.ErrWriteFailed, path, err)
	}

	return nil
}

func writeAndClose(f *os.File, content string) error {
	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Chmod(0o644); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Package ui provides styled status output for the dockr CLI.
package ui

import (
	"fmt"
	"io"
	"os"
)

// ANSI color codes.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

// Writer prints prefixed status lines. Progress and results go to out,
// warnings and errors to errOut.
type Writer struct {
	out     io.Writer
	errOut  io.Writer
	noColor bool
}

// NewWriter creates a Writer on stdout/stderr. Color is disabled when noColor
// is true or NO_COLOR is set.
func NewWriter(noColor bool) *Writer {
	return &Writer{
		out:     os.Stdout,
		errOut:  os.Stderr,
		noColor: noColor || os.Getenv("NO_COLOR") != "",
	}
}

// NewWriterWithOutputs creates a Writer with custom output destinations.
func NewWriterWithOutputs(out, errOut io.Writer, noColor bool) *Writer {
	return &Writer{
		out:     out,
		errOut:  errOut,
		noColor: noColor,
	}
}

// Out returns the stdout destination.
func (w *Writer) Out() io.Writer {
	return w.out
}

// ErrOut returns the stderr destination.
func (w *Writer) ErrOut() io.Writer {
	return w.errOut
}

// Success prints msg after a green checkmark.
func (w *Writer) Success(msg string) {
	w.line(w.out, colorGreen, "✓", msg)
}

// Info prints a progress message with a cyan "info:" prefix.
func (w *Writer) Info(msg string) {
	w.line(w.out, colorCyan, "info:", msg)
}

// Warning prints msg to stderr with a yellow prefix.
func (w *Writer) Warning(msg string) {
	w.line(w.errOut, colorYellow, "warning:", msg)
}

// Error prints msg to stderr with a red prefix.
func (w *Writer) Error(msg string) {
	w.line(w.errOut, colorRed, "error:", msg)
}

// Successf prints a formatted success message.
func (w *Writer) Successf(format string, args ...any) {
	w.Success(fmt.Sprintf(format, args...))
}

// Infof prints a formatted progress message.
func (w *Writer) Infof(format string, args ...any) {
	w.Info(fmt.Sprintf(format, args...))
}

// Warningf prints a formatted warning.
func (w *Writer) Warningf(format string, args ...any) {
	w.Warning(fmt.Sprintf(format, args...))
}

// Bold returns text in bold unless color is disabled.
func (w *Writer) Bold(text string) string {
	return w.styled(colorBold, text)
}

func (w *Writer) styled(color, text string) string {
	if w.noColor {
		return text
	}

	return color + text + colorReset
}

func (w *Writer) line(out io.Writer, color, prefix, msg string) {
	// Best-effort output; a failing terminal is not worth an error.
	_, _ = fmt.Fprintf(out, "%s %s\n", w.styled(color, prefix), msg)
}

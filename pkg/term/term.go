// Package term decides whether a destination should receive colored
// output. The stream itself always emits its fixed escape policy;
// binding it through an ansi.StripWriter when the destination cannot
// render colors keeps piped and redirected output clean.
package term

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/bulletstream/pkg/ansi"
)

// ShouldColor reports whether output bound for f should keep its
// escape sequences.
func ShouldColor(f *os.File) bool {
	// NO_COLOR always wins
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Piped or redirected output gets plain text
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}

	// Check terminal color support
	return termenv.ColorProfile() != termenv.Ascii
}

// Destination wraps f for use as a stream destination: the file
// itself when it can render colors, or an escape-stripping writer
// when it cannot.
func Destination(f *os.File) io.Writer {
	if ShouldColor(f) {
		return f
	}
	return ansi.NewStripWriter(f)
}

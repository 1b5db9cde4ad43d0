// Package ansi implements the fixed ANSI escape policy for the build
// output stream.
//
// The stream's byte-level format is a compatibility contract: headers
// are bold purple, warnings yellow, errors red, and every colorized
// line is individually wrapped so that consumers which prefix each
// line (for example git's "remote: ") never inherit a color. The
// constants here are therefore literal escape sequences rather than a
// terminal-profile abstraction.
package ansi

import "strings"

// Code is a single ANSI SGR escape sequence used by the stream.
type Code string

const (
	// Reset clears all active styling.
	Reset Code = "\x1b[0m"
	// Red is used for error paragraphs.
	Red Code = "\x1b[0;31m"
	// Yellow is used for warning paragraphs and inline values.
	Yellow Code = "\x1b[0;33m"
	// BoldCyan is used for important paragraphs and command names.
	BoldCyan Code = "\x1b[1;36m"
	// BoldPurple is used for headers.
	BoldPurple Code = "\x1b[1;35m"
	// BoldUnderlineCyan is used for URLs.
	BoldUnderlineCyan Code = "\x1b[1;4;36m"
	// Dim is used for timer tick markers.
	Dim Code = "\x1b[2;1m"
)

// WrapEachLine colorizes body with the given code, line by line.
//
// Each line gets its own escape/reset pair so styling never bleeds
// across newlines. Text that is already colorized keeps its color: a
// reset inside the body re-enables the outer code rather than dropping
// back to the terminal default.
func WrapEachLine(code Code, body string) string {
	esc := string(code)
	reset := string(Reset)

	lines := strings.Split(body, "\n")
	for i, line := range lines {
		// Nested colors end with a reset; switch back to the outer
		// color afterwards instead of the terminal default.
		line = strings.ReplaceAll(line, reset, reset+esc)
		line = esc + line + reset
		// The steps above can stack redundant sequences.
		line = strings.ReplaceAll(line, esc+esc, esc)
		line = strings.ReplaceAll(line, esc+reset, "")
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// Strip removes ANSI escape sequences produced by this package.
//
// Strip is idempotent and leaves escape-free text untouched. It is not
// a general-purpose ANSI parser: it drops everything between an ESC
// byte and the next 'm', which covers every sequence this module emits.
func Strip(contents string) string {
	var b strings.Builder
	b.Grow(len(contents))

	inSequence := false
	for _, r := range contents {
		switch {
		case r == '\x1b':
			inSequence = true
		case inSequence:
			if r == 'm' {
				inSequence = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Package text implements the plain-text layer of the output stream:
// fixed-column line prefixing for bullets and paragraphs, and the
// paragraph-aware writer that decides when a blank line is owed.
package text

import "strings"

// PrefixFirstRestLines applies one prefix to the first line and a
// different prefix to every following line.
//
// This keeps multi-line content aligned under its bullet marker. The
// first prefix is applied even when contents is empty, so a bullet
// with no text still renders as a bullet.
func PrefixFirstRestLines(firstPrefix, restPrefix, contents string) string {
	return PrefixLines(contents, func(index int, _ string) string {
		if index == 0 {
			return firstPrefix
		}
		return restPrefix
	})
}

// PrefixLines prepends the result of f to each line of contents.
//
// Lines keep their trailing newline, so prefixes land at the start of
// every visual line. Empty contents still receives one prefix.
func PrefixLines(contents string, f func(index int, line string) string) string {
	if contents == "" {
		return f(0, "")
	}

	lines := strings.SplitAfter(contents, "\n")
	// SplitAfter yields a final empty element when contents ends with
	// a newline; that phantom line must not be prefixed.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var b strings.Builder
	for i, line := range lines {
		b.WriteString(f(i, line))
		b.WriteString(line)
	}
	return b.String()
}

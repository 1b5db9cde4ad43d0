// Package style decorates fragments of message text: values, command
// names, URLs. The decorations nest safely inside the stream's own
// coloring.
package style

import "github.com/arthur-debert/bulletstream/pkg/ansi"

// URL decorates a link for the build output.
func URL(contents string) string {
	return ansi.WrapEachLine(ansi.BoldUnderlineCyan, contents)
}

// Command decorates the name of a command being run, i.e. `bundle install`.
func Command(contents string) string {
	return Value(ansi.WrapEachLine(ansi.BoldCyan, contents))
}

// Value decorates an important value, i.e. `2.3.4`.
func Value(contents string) string {
	return "`" + ansi.WrapEachLine(ansi.Yellow, contents) + "`"
}

// Details parenthesizes additional information at the end of a line.
func Details(contents string) string {
	return "(" + contents + ")"
}

// Important decorates significant inline text, i.e. a "HELP:" marker.
func Important(contents string) string {
	return ansi.WrapEachLine(ansi.BoldCyan, contents)
}

// Package emit contains the low-level message emitters shared by the
// typed state machine and the global free functions. Each emitter
// writes one message category through the paragraph policy.
package emit

import (
	"fmt"
	"strings"
	"time"

	"github.com/arthur-debert/bulletstream/pkg/ansi"
	"github.com/arthur-debert/bulletstream/pkg/text"
)

// CmdIndent is the column streamed command output is indented to.
const CmdIndent = "      "

// must panics on a destination write failure. The formatting layer is
// infallible by contract; a dead sink is not recoverable mid-stream.
func must(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("bulletstream: output writer failed: %v", err))
	}
}

func flush(w text.Tracker) {
	if f, ok := w.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			panic(fmt.Sprintf("bulletstream: output writer failed: %v", err))
		}
	}
}

// paragraphBreak writes the single blank line owed before a
// paragraph-class message. The very first output of a stream gets no
// leading blank line, and an existing paragraph break is never
// doubled.
func paragraphBreak(w text.Tracker) {
	if w.WroteAny() && !w.TrailingParagraph() {
		must(w.Write([]byte("\n")))
	}
}

func header(w text.Tracker, marker, s string) {
	paragraphBreak(w)
	line := ansi.WrapEachLine(ansi.BoldPurple, marker+" "+strings.TrimSpace(s))
	must(w.Write([]byte(line + "\n")))
	if !w.TrailingParagraph() {
		must(w.Write([]byte("\n")))
	}
	flush(w)
}

// H1 writes a top-level header.
func H1(w text.Tracker, s string) { header(w, "#", s) }

// H2 writes a second-level header.
func H2(w text.Tracker, s string) { header(w, "##", s) }

// Bullet writes a top-level bullet item.
func Bullet(w text.Tracker, s string) {
	must(w.Write([]byte(BulletPrefix(s) + "\n")))
	flush(w)
}

// SubBullet writes an indented bullet item.
func SubBullet(w text.Tracker, s string) {
	must(w.Write([]byte(SubBulletPrefix(s) + "\n")))
	flush(w)
}

// Plain writes text with no decoration beyond a trailing newline.
func Plain(w text.Tracker, s string) {
	must(w.Write([]byte(strings.TrimRight(s, " \t\n") + "\n")))
	flush(w)
}

// Inline writes text without a trailing newline. Used for the timer
// label a tick task will continue on the same line.
func Inline(w text.Tracker, s string) {
	must(w.Write([]byte(s)))
	flush(w)
}

// BulletPrefix indents s as a top-level bullet item.
func BulletPrefix(s string) string {
	return text.PrefixFirstRestLines("- ", "  ", strings.TrimSpace(s))
}

// SubBulletPrefix indents s as a nested bullet item.
func SubBulletPrefix(s string) string {
	return text.PrefixFirstRestLines("  - ", "    ", strings.TrimSpace(s))
}

// paragraph writes a colored "! "-prefixed paragraph with a blank line
// on both sides.
func paragraph(w text.Tracker, color ansi.Code, s string) {
	contents := strings.TrimSpace(s)

	paragraphBreak(w)
	body := text.PrefixLines(contents, func(_ int, line string) string {
		// Blank lines get a bare "!" so no trailing whitespace is added.
		if line == "" || line == "\n" {
			return "!"
		}
		return "! "
	})
	must(w.Write([]byte(ansi.WrapEachLine(color, body) + "\n")))
	must(w.Write([]byte("\n")))
	flush(w)
}

// Warning writes a yellow paragraph.
func Warning(w text.Tracker, s string) { paragraph(w, ansi.Yellow, s) }

// Important writes a bold cyan paragraph.
func Important(w text.Tracker, s string) { paragraph(w, ansi.BoldCyan, s) }

// Error writes a red paragraph.
func Error(w text.Tracker, s string) { paragraph(w, ansi.Red, s) }

// AllDone writes the closing bullet, with total wall-clock time when
// the stream recorded a start instant.
func AllDone(w text.Tracker, started time.Time) {
	if started.IsZero() {
		Bullet(w, "Done")
		return
	}
	Bullet(w, fmt.Sprintf("Done (finished in %s)", Human(time.Since(started))))
}

// Details parenthesizes trailing line information such as durations.
func Details(s string) string {
	return "(" + s + ")"
}

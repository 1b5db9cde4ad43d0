package emit

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/bulletstream/pkg/ansi"
	"github.com/arthur-debert/bulletstream/pkg/text"
)

func newWriter() (*bytes.Buffer, *text.ParagraphWriter) {
	var buf bytes.Buffer
	return &buf, text.NewParagraphWriter(&buf)
}

func TestHeaderAtStreamStart(t *testing.T) {
	buf, w := newWriter()
	H1(w, "Build")
	assert.Equal(t, "# Build\n\n", ansi.Strip(buf.String()))
}

func TestHeaderAfterOutput(t *testing.T) {
	buf, w := newWriter()
	Plain(w, "preamble")
	H2(w, "Build")
	assert.Equal(t, "preamble\n\n## Build\n\n", ansi.Strip(buf.String()))
}

func TestConsecutiveHeadersSingleBlankLine(t *testing.T) {
	buf, w := newWriter()
	H2(w, "One")
	H2(w, "Two")
	assert.Equal(t, "## One\n\n## Two\n\n", ansi.Strip(buf.String()))
}

func TestParagraphBlankLinesNeverDouble(t *testing.T) {
	buf, w := newWriter()
	Warning(w, "first")
	Warning(w, "second")
	assert.Equal(t, "! first\n\n! second\n\n", ansi.Strip(buf.String()))
}

func TestWarningBetweenBullets(t *testing.T) {
	buf, w := newWriter()
	Bullet(w, "Guest thoughts")
	SubBullet(w, "The scenery here is wonderful")
	Warning(w, "It's too crowded here\nI'm tired")
	SubBullet(w, "The jumping fountains are great")

	expected := "- Guest thoughts\n" +
		"  - The scenery here is wonderful\n" +
		"\n" +
		"! It's too crowded here\n" +
		"! I'm tired\n" +
		"\n" +
		"  - The jumping fountains are great\n"
	assert.Equal(t, expected, ansi.Strip(buf.String()))
}

func TestPlainThenWarningTriggersParagraphBreak(t *testing.T) {
	buf, w := newWriter()
	Plain(w, "Accidental newline\n")
	Warning(w, "careful")
	assert.Equal(t, "Accidental newline\n\n! careful\n\n", ansi.Strip(buf.String()))
}

func TestParagraphEmptyInteriorLines(t *testing.T) {
	buf, w := newWriter()
	H1(w, "Example\n\n")
	Warning(w, "\n\nhello\n\n\t\t\nworld\n\n")

	expected := "# Example\n" +
		"\n" +
		"! hello\n" +
		"!\n" +
		"! \t\t\n" +
		"! world\n" +
		"\n"
	assert.Equal(t, expected, ansi.Strip(buf.String()))
}

func TestParagraphColors(t *testing.T) {
	buf, w := newWriter()
	Important(w, "Important is bold cyan")
	Warning(w, "Warnings are yellow")
	Error(w, "Errors are red")

	out := buf.String()
	assert.Contains(t, out, string(ansi.BoldCyan)+"! Important is bold cyan"+string(ansi.Reset))
	assert.Contains(t, out, string(ansi.Yellow)+"! Warnings are yellow"+string(ansi.Reset))
	assert.Contains(t, out, string(ansi.Red)+"! Errors are red"+string(ansi.Reset))
}

func TestAllDone(t *testing.T) {
	buf, w := newWriter()
	AllDone(w, time.Time{})
	assert.Equal(t, "- Done\n", ansi.Strip(buf.String()))

	buf2, w2 := newWriter()
	AllDone(w2, time.Now())
	assert.Equal(t, "- Done (finished in < 0.1s)\n", ansi.Strip(buf2.String()))
}

func TestHuman(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{99 * time.Millisecond, "< 0.1s"},
		{100 * time.Millisecond, "0.1s"},
		{1520 * time.Millisecond, "1.5s"},
		{59*time.Second + 900*time.Millisecond, "59.9s"},
		{60 * time.Second, "1m 0s"},
		{time.Minute + 2*time.Second, "1m 2s"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1h 2m 3s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Human(tt.d), "for %v", tt.d)
	}
}

package text

import "io"

// Tracker is a destination that knows how its output currently ends.
//
// Paragraph-style messages (headers, warnings, errors) need an empty
// line before and after them. When several are emitted back to back,
// the blank lines must not double up. Emitters consult the Tracker
// before writing to decide whether a separating newline is owed.
type Tracker interface {
	io.Writer

	// TrailingParagraph reports whether the last write left the stream
	// on a paragraph break (two or more consecutive newlines).
	TrailingParagraph() bool

	// TrailingNewlines returns the number of newlines written since
	// the last non-newline byte.
	TrailingNewlines() int

	// WroteAny reports whether the stream has produced any output yet.
	// The very first message never gets a leading blank line.
	WroteAny() bool
}

// ParagraphWriter wraps a destination and tracks trailing newlines
// across writes. It implements Tracker.
type ParagraphWriter struct {
	inner            io.Writer
	trailingNewlines int
	wasParagraph     bool
	wroteAny         bool
}

// NewParagraphWriter wraps w with fresh paragraph state.
func NewParagraphWriter(w io.Writer) *ParagraphWriter {
	return &ParagraphWriter{inner: w}
}

// Inner returns the wrapped destination.
func (p *ParagraphWriter) Inner() io.Writer {
	return p.inner
}

// TrailingParagraph implements Tracker.
func (p *ParagraphWriter) TrailingParagraph() bool {
	return p.wasParagraph
}

// TrailingNewlines implements Tracker.
func (p *ParagraphWriter) TrailingNewlines() int {
	return p.trailingNewlines
}

// WroteAny implements Tracker.
func (p *ParagraphWriter) WroteAny() bool {
	return p.wroteAny
}

// Write forwards to the destination while updating newline state.
// Newline counting spans writes: "a\n" followed by "\n" ends in a
// paragraph break just like "a\n\n" written at once.
func (p *ParagraphWriter) Write(buf []byte) (int, error) {
	trailing := 0
	for i := len(buf) - 1; i >= 0 && buf[i] == '\n'; i-- {
		trailing++
	}

	if len(buf) == trailing {
		// The buffer is newlines only; they extend the current run.
		p.trailingNewlines += trailing
	} else {
		p.trailingNewlines = trailing
	}
	p.wasParagraph = p.trailingNewlines > 1
	if len(buf) > 0 {
		p.wroteAny = true
	}

	return p.inner.Write(buf)
}

// Flush forwards to the destination when it supports flushing.
func (p *ParagraphWriter) Flush() error {
	if f, ok := p.inner.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

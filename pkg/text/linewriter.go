package text

import "io"

// LineRewriter buffers written bytes until a newline and passes each
// complete line through a mapping function before it reaches the
// destination. The stream state uses it to indent streamed command
// output without the producer knowing about indentation.
type LineRewriter struct {
	inner  io.Writer
	buffer []byte
	fn     func(line []byte) []byte
}

// NewLineRewriter wraps w so that fn rewrites every newline-terminated
// chunk. Call Release to flush a trailing unterminated line.
func NewLineRewriter(w io.Writer, fn func(line []byte) []byte) *LineRewriter {
	return &LineRewriter{inner: w, fn: fn}
}

func (l *LineRewriter) Write(p []byte) (int, error) {
	for _, b := range p {
		l.buffer = append(l.buffer, b)
		if b == '\n' {
			if err := l.emit(); err != nil {
				return 0, err
			}
		}
	}
	return len(p), nil
}

// Flush forwards to the destination when it supports flushing. The
// partial-line buffer is deliberately held back; only Release emits it.
func (l *LineRewriter) Flush() error {
	if f, ok := l.inner.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Release writes any buffered partial line through the mapping
// function and returns the destination.
func (l *LineRewriter) Release() (io.Writer, error) {
	var err error
	if len(l.buffer) > 0 {
		err = l.emit()
	}
	return l.inner, err
}

func (l *LineRewriter) emit() error {
	line := l.fn(l.buffer)
	l.buffer = l.buffer[:0]
	_, err := l.inner.Write(line)
	return err
}

package ansi

import "io"

// StripWriter filters escape sequences out of everything written
// through it. It is used to bind a stream to a non-terminal sink
// (a log file, a CI pipe) without changing the emitting code.
//
// Sequence state is carried across Write calls, so a color code split
// over two writes is still removed. The reported byte count is the
// consumed input length, as io.Writer requires.
type StripWriter struct {
	inner      io.Writer
	inSequence bool
}

// NewStripWriter wraps w in a StripWriter.
func NewStripWriter(w io.Writer) *StripWriter {
	return &StripWriter{inner: w}
}

func (s *StripWriter) Write(p []byte) (int, error) {
	filtered := make([]byte, 0, len(p))
	for _, b := range p {
		switch {
		case b == '\x1b':
			s.inSequence = true
		case s.inSequence:
			// 'm' terminates an SGR sequence. UTF-8 continuation
			// bytes are all >= 0x80, so scanning bytes cannot split
			// a multi-byte character.
			if b == 'm' {
				s.inSequence = false
			}
		default:
			filtered = append(filtered, b)
		}
	}

	if _, err := s.inner.Write(filtered); err != nil {
		return 0, err
	}
	return len(p), nil
}

package bullet

import (
	"time"

	"github.com/arthur-debert/bulletstream/internal/emit"
	"github.com/arthur-debert/bulletstream/pkg/logging"
	"github.com/arthur-debert/bulletstream/pkg/text"
)

// Stream relays external output, most often a child process's stdout
// and stderr, into the progress stream. It implements io.Writer; every
// complete line is indented to the command column. Done closes the
// relay and reports how long the streamed work took.
type Stream struct {
	p       *printer
	lr      *text.LineRewriter
	started time.Time
}

func newStream(p *printer) *Stream {
	return &Stream{
		p:       p,
		started: time.Now(),
		lr: text.NewLineRewriter(p.w, func(line []byte) []byte {
			// Blank lines stay blank; indenting them would add
			// trailing whitespace.
			if len(line) == 0 || (len(line) == 1 && line[0] == '\n') {
				return line
			}
			return append([]byte(emit.CmdIndent), line...)
		}),
	}
}

func (s *Stream) take() *printer {
	if s == nil || s.p == nil {
		panic("bulletstream: use of a finished Stream handle")
	}
	p := s.p
	s.p = nil
	return p
}

// Write relays bytes into the stream. Partial lines are buffered until
// their newline arrives.
func (s *Stream) Write(p []byte) (int, error) {
	if s == nil || s.p == nil {
		panic("bulletstream: use of a finished Stream handle")
	}
	return s.lr.Write(p)
}

// Done flushes any partial line, closes the relay with a blank line,
// and emits the elapsed time. The stream returns to sub-bullet level.
func (s *Stream) Done() *SubBullet {
	elapsed := time.Since(s.started)
	lr := s.lr
	p := s.take()

	if _, err := lr.Release(); err != nil {
		panic("bulletstream: output writer failed: " + err.Error())
	}
	if !p.w.TrailingParagraph() {
		emit.Inline(p.w, "\n")
	}
	emit.SubBullet(p.w, "Done "+emit.Details(emit.Human(elapsed)))
	logging.LogDuration(s.started, "stream relay")
	return &SubBullet{p: p}
}

package bullet

import (
	"io"
	"time"

	"github.com/arthur-debert/bulletstream/internal/emit"
	"github.com/arthur-debert/bulletstream/pkg/global"
	"github.com/arthur-debert/bulletstream/pkg/text"
)

// printer is the stream state shared by whichever handle currently
// owns it. Handles pass it along on every transition; a handle whose
// printer has moved on is dead.
type printer struct {
	w       text.Tracker
	dest    io.Writer
	started time.Time
}

// New binds a stream to a destination and returns the initial Header
// handle. The destination is owned by the stream until Done or Error
// yields it back.
func New(w io.Writer) *Header {
	pw := text.NewParagraphWriter(w)
	return &Header{p: &printer{w: pw, dest: w}}
}

// Global returns a Header handle bound to the process-wide writer
// registry. Paragraph state is shared with every other user of the
// registry, so spacing stays correct across independent instances.
func Global() *Header {
	w := global.Tracker()
	return &Header{p: &printer{w: w, dest: w}}
}

// Header is the initial state: nothing has been written yet. The only
// legal operations announce the stream (or skip the announcement);
// warnings and errors have no context to attach to here.
type Header struct {
	p *printer
}

func (h *Header) take() *printer {
	if h == nil || h.p == nil {
		panic("bulletstream: use of a consumed Header handle")
	}
	p := h.p
	h.p = nil
	return p
}

// H1 writes a top-level header and starts the stream.
func (h *Header) H1(s string) *Bullet {
	p := h.take()
	emit.H1(p.w, s)
	p.started = time.Now()
	return &Bullet{p: p}
}

// H2 writes a second-level header and starts the stream.
func (h *Header) H2(s string) *Bullet {
	p := h.take()
	emit.H2(p.w, s)
	p.started = time.Now()
	return &Bullet{p: p}
}

// WithoutHeader starts the stream without announcing anything.
func (h *Header) WithoutHeader() *Bullet {
	p := h.take()
	p.started = time.Now()
	return &Bullet{p: p}
}

// Bullet is the top-level progress state.
type Bullet struct {
	p *printer
}

func (b *Bullet) take() *printer {
	if b == nil || b.p == nil {
		panic("bulletstream: use of a consumed Bullet handle")
	}
	p := b.p
	b.p = nil
	return p
}

// Bullet appends a top-level item and stays at the top level.
func (b *Bullet) Bullet(s string) *Bullet {
	p := b.take()
	emit.Bullet(p.w, s)
	return &Bullet{p: p}
}

// SubBullet appends an indented item under the current bullet.
func (b *Bullet) SubBullet(s string) *SubBullet {
	p := b.take()
	emit.SubBullet(p.w, s)
	return &SubBullet{p: p}
}

// H2 writes another section header mid-stream.
func (b *Bullet) H2(s string) *Bullet {
	p := b.take()
	emit.H2(p.w, s)
	return &Bullet{p: p}
}

// Plain writes undecorated text at the current level.
func (b *Bullet) Plain(s string) *Bullet {
	p := b.take()
	emit.Plain(p.w, s)
	return &Bullet{p: p}
}

// Warning emits a yellow multi-line paragraph without changing level.
func (b *Bullet) Warning(s string) *Bullet {
	p := b.take()
	emit.Warning(p.w, s)
	return &Bullet{p: p}
}

// Important emits a bold cyan paragraph without changing level.
func (b *Bullet) Important(s string) *Bullet {
	p := b.take()
	emit.Important(p.w, s)
	return &Bullet{p: p}
}

// StartTimer emits the label as a top-level item, holds the line open,
// and begins background ticking.
func (b *Bullet) StartTimer(label string) *Background[*Bullet] {
	p := b.take()
	return startTimer(p, emit.BulletPrefix(label), func(p *printer) *Bullet {
		return &Bullet{p: p}
	})
}

// StartStream opens the external-output relay from the top level. The
// label is written as a sub-bullet, so Done resumes at that level.
func (b *Bullet) StartStream(s string) *Stream {
	p := b.take()
	emit.SubBullet(p.w, s)
	emit.Inline(p.w, "\n")
	return newStream(p)
}

// Error ends the stream abnormally: it emits a red paragraph, consumes
// the state machine, and yields the raw destination back to the
// caller. At most one error can be emitted per stream.
func (b *Bullet) Error(s string) io.Writer {
	p := b.take()
	emit.Error(p.w, s)
	return p.dest
}

// Done announces successful completion with the total elapsed time and
// yields the destination back.
func (b *Bullet) Done() io.Writer {
	p := b.take()
	emit.AllDone(p.w, p.started)
	return p.dest
}

// SubBullet is the nested progress state.
type SubBullet struct {
	p *printer
}

func (s *SubBullet) take() *printer {
	if s == nil || s.p == nil {
		panic("bulletstream: use of a consumed SubBullet handle")
	}
	p := s.p
	s.p = nil
	return p
}

// SubBullet appends another indented item at the same level.
func (s *SubBullet) SubBullet(msg string) *SubBullet {
	p := s.take()
	emit.SubBullet(p.w, msg)
	return &SubBullet{p: p}
}

// Bullet pops back to the top level with the next top-level item.
func (s *SubBullet) Bullet(msg string) *Bullet {
	p := s.take()
	emit.Bullet(p.w, msg)
	return &Bullet{p: p}
}

// Done pops back to the top level without emitting anything.
func (s *SubBullet) Done() *Bullet {
	p := s.take()
	return &Bullet{p: p}
}

// Plain writes undecorated text at the current level.
func (s *SubBullet) Plain(msg string) *SubBullet {
	p := s.take()
	emit.Plain(p.w, msg)
	return &SubBullet{p: p}
}

// Warning emits a yellow multi-line paragraph without changing level.
func (s *SubBullet) Warning(msg string) *SubBullet {
	p := s.take()
	emit.Warning(p.w, msg)
	return &SubBullet{p: p}
}

// Important emits a bold cyan paragraph without changing level.
func (s *SubBullet) Important(msg string) *SubBullet {
	p := s.take()
	emit.Important(p.w, msg)
	return &SubBullet{p: p}
}

// StartTimer emits the label as a sub-bullet, holds the line open, and
// begins background ticking.
func (s *SubBullet) StartTimer(label string) *Background[*SubBullet] {
	p := s.take()
	return startTimer(p, emit.SubBulletPrefix(label), func(p *printer) *SubBullet {
		return &SubBullet{p: p}
	})
}

// StartStream opens an io.Writer that relays external output (most
// often a child process) into the stream, indented to a fixed column.
func (s *SubBullet) StartStream(msg string) *Stream {
	p := s.take()
	emit.SubBullet(p.w, msg)
	emit.Inline(p.w, "\n")
	return newStream(p)
}

// Error ends the stream abnormally. See Bullet.Error.
func (s *SubBullet) Error(msg string) io.Writer {
	p := s.take()
	emit.Error(p.w, msg)
	return p.dest
}

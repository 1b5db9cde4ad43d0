package bullet

import (
	"runtime"
	"time"

	"github.com/arthur-debert/bulletstream/internal/emit"
	"github.com/arthur-debert/bulletstream/internal/tick"
	"github.com/arthur-debert/bulletstream/pkg/logging"
)

// abandonMarker is written when a timer handle is destroyed without
// being resolved, so the line still ends in a well-formed state.
const abandonMarker = "(Error)"

// Background is the timer sub-state. S is the handle type the stream
// returns to when the timer resolves: *Bullet or *SubBullet, matching
// the level StartTimer was called from.
//
// Exactly one Background can be active per stream; while it runs, the
// ticking goroutine owns the output line and no other handle exists to
// write through.
type Background[S any] struct {
	p       *printer
	guard   *tick.Guard
	started time.Time
	resume  func(*printer) S
}

func startTimer[S any](p *printer, label string, resume func(*printer) S) *Background[S] {
	// The label line stays open: ticks and the resolution text are
	// appended to it.
	emit.Inline(p.w, label)

	b := &Background[S]{
		p:       p,
		guard:   tick.Dots(p.w, tick.Interval),
		started: time.Now(),
		resume:  resume,
	}

	// Safety net for handles that are dropped unresolved: Go has no
	// deterministic destructor, so the fallback marker rides on the
	// garbage collector. Done, Cancel and Abandon clear it.
	runtime.SetFinalizer(b, func(b *Background[S]) { b.fallback() })
	return b
}

func (b *Background[S]) take() (*printer, *tick.Guard) {
	if b == nil || b.p == nil {
		panic("bulletstream: use of a resolved Background handle")
	}
	runtime.SetFinalizer(b, nil)
	p, g := b.p, b.guard
	b.p, b.guard = nil, nil
	return p, g
}

// Done stops the ticker and finishes the line with the elapsed time,
// followed by the result text when one is given. It waits for the tick
// goroutine's final write first, so the duration always appears as a
// contiguous suffix.
func (b *Background[S]) Done(result string) S {
	elapsed := time.Since(b.started)
	p, g := b.take()
	g.Stop()

	line := emit.Details(emit.Human(elapsed))
	if result != "" {
		line += " " + result
	}
	emit.Inline(p.w, line+"\n")
	logging.LogDuration(b.started, "background timer")
	return b.resume(p)
}

// Cancel stops the ticker and finishes the line with a message instead
// of a duration, explaining why the timed work did not complete.
func (b *Background[S]) Cancel(message string) S {
	p, g := b.take()
	g.Stop()

	emit.Inline(p.w, emit.Details(message)+"\n")
	return b.resume(p)
}

// Abandon explicitly gives up on the timer without a result. The line
// is closed with the fixed error marker. The stream cannot be resumed;
// prefer Done or Cancel.
func (b *Background[S]) Abandon() {
	p, g := b.take()
	g.Stop()

	emit.Inline(p.w, abandonMarker+"\n")
}

// fallback runs on the finalizer path. It must not panic inside the
// GC goroutine, even when the sink is already gone.
func (b *Background[S]) fallback() {
	defer func() { _ = recover() }()
	b.Abandon()
}

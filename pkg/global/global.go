// Package global holds the process-wide output destination and the
// free-function entry points that write through it.
//
// Scripts that do not want to thread typed stream handles through
// every function can call the free functions here; paragraph spacing
// stays correct because the registry tracks newline state across all
// of them. SetWriter redirects the destination, and WithLockedWriter
// gives a caller exclusive, deterministic use of it for the duration
// of a callback, which is how tests capture concurrent output without
// interleaving.
package global

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/arthur-debert/bulletstream/internal/emit"
	"github.com/arthur-debert/bulletstream/internal/tick"
	"github.com/arthur-debert/bulletstream/pkg/logging"
	"github.com/arthur-debert/bulletstream/pkg/text"
)

var (
	// mu guards the registry cell; every proxied write takes it.
	mu     sync.Mutex
	writer *text.ParagraphWriter

	// captureMu serializes WithLockedWriter scopes against each other.
	captureMu sync.Mutex
)

// current returns the registry's paragraph writer, lazily bound to
// stderr on first use. Callers must hold mu.
func current() *text.ParagraphWriter {
	if writer == nil {
		writer = text.NewParagraphWriter(os.Stderr)
	}
	return writer
}

// proxyWriter forwards to whatever destination is currently
// registered, taking the registry lock for each call.
type proxyWriter struct{}

func (proxyWriter) Write(p []byte) (int, error) {
	mu.Lock()
	defer mu.Unlock()
	return current().Write(p)
}

func (proxyWriter) TrailingParagraph() bool {
	mu.Lock()
	defer mu.Unlock()
	return current().TrailingParagraph()
}

func (proxyWriter) TrailingNewlines() int {
	mu.Lock()
	defer mu.Unlock()
	return current().TrailingNewlines()
}

func (proxyWriter) WroteAny() bool {
	mu.Lock()
	defer mu.Unlock()
	return current().WroteAny()
}

func (proxyWriter) Flush() error {
	mu.Lock()
	defer mu.Unlock()
	return current().Flush()
}

// Tracker returns a paragraph-aware handle on the global destination.
// The handle stays valid across SetWriter calls; each write lands on
// whatever destination is registered at that moment.
func Tracker() text.Tracker {
	return proxyWriter{}
}

// SetWriter replaces the global destination. The replacement takes
// effect for all subsequent writes; paragraph state starts fresh.
func SetWriter(w io.Writer) {
	if _, ok := w.(proxyWriter); ok {
		panic("bulletstream: cannot set the global writer to itself")
	}

	mu.Lock()
	defer mu.Unlock()
	writer = text.NewParagraphWriter(w)
	logger := logging.GetLogger("global")
	logger.Debug().Msg("Global writer replaced")
}

// WithLockedWriter installs w as the global destination, runs fn, and
// restores the previous destination before returning w.
//
// Locked scopes are exclusive: concurrent callers block until the
// current scope finishes, so each caller's output lands in its own
// writer as one uninterrupted sequence. This is the supported way to
// assert on captured output from concurrent producers.
func WithLockedWriter(w io.Writer, fn func()) io.Writer {
	captureMu.Lock()
	defer captureMu.Unlock()

	mu.Lock()
	prev := writer
	writer = text.NewParagraphWriter(w)
	mu.Unlock()

	defer func() {
		mu.Lock()
		writer = prev
		mu.Unlock()
	}()

	fn()
	return w
}

// H1 writes a top-level header to the global destination.
func H1(s string) { emit.H1(Tracker(), s) }

// H2 writes a second-level header to the global destination.
func H2(s string) { emit.H2(Tracker(), s) }

// Plain writes undecorated text to the global destination.
func Plain(s string) { emit.Plain(Tracker(), s) }

// Bullet writes a top-level item to the global destination.
func Bullet(s string) { emit.Bullet(Tracker(), s) }

// SubBullet writes an indented item to the global destination.
func SubBullet(s string) { emit.SubBullet(Tracker(), s) }

// Warning writes a yellow paragraph to the global destination.
func Warning(s string) { emit.Warning(Tracker(), s) }

// Important writes a bold cyan paragraph to the global destination.
func Important(s string) { emit.Important(Tracker(), s) }

// Error writes a red paragraph to the global destination. Unlike the
// typed state machine there is no handle to consume, so the caller is
// responsible for not writing past it.
func Error(s string) { emit.Error(Tracker(), s) }

// AllDone writes the closing bullet with the elapsed time since
// started, or a bare "Done" when started is the zero time.
func AllDone(started time.Time) { emit.AllDone(Tracker(), started) }

// Timer is a background timer bound to the global destination. It has
// the same resolution contract as the typed Background state: exactly
// one of Done or Cancel.
type Timer struct {
	guard   *tick.Guard
	started time.Time
}

// StartTimer writes label as a sub-bullet, keeps the line open, and
// ticks on the global destination until resolved.
func StartTimer(label string) *Timer {
	w := Tracker()
	emit.Inline(w, emit.SubBulletPrefix(label))
	return &Timer{
		guard:   tick.Dots(w, tick.Interval),
		started: time.Now(),
	}
}

func (t *Timer) take() *tick.Guard {
	if t == nil || t.guard == nil {
		panic("bulletstream: use of a resolved global Timer")
	}
	g := t.guard
	t.guard = nil
	return g
}

// Done stops the ticker and finishes the line with the elapsed time
// and optional result text.
func (t *Timer) Done(result string) {
	elapsed := time.Since(t.started)
	t.take().Stop()

	line := emit.Details(emit.Human(elapsed))
	if result != "" {
		line += " " + result
	}
	emit.Inline(Tracker(), line+"\n")
}

// Cancel stops the ticker and finishes the line with a message
// instead of a duration.
func (t *Timer) Cancel(message string) {
	t.take().Stop()
	emit.Inline(Tracker(), emit.Details(message)+"\n")
}

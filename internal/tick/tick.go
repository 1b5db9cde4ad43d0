// Package tick runs the background progress indicator: a goroutine
// that keeps appending dim dots to the current output line while a
// long-running task gives no other sign of life.
package tick

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/arthur-debert/bulletstream/pkg/ansi"
	"github.com/arthur-debert/bulletstream/pkg/logging"
)

// Interval is how often an active timer appends a dot. A policy
// constant shared by every timer entry point, not caller-configurable.
const Interval = time.Second

// Guard owns a running tick goroutine. Exactly one Guard exists per
// background state; stopping it is the only way to get the output
// line back.
type Guard struct {
	stop     chan struct{}
	finished chan struct{}

	stopOnce sync.Once

	mu       sync.Mutex
	writeErr error
}

// Dots starts a ticker with the stream's standard markers: dim dots
// that join the label to the eventual resolution text, " ... ".
func Dots(w io.Writer, interval time.Duration) *Guard {
	return Start(w, interval,
		ansi.WrapEachLine(ansi.Dim, " ."),
		ansi.WrapEachLine(ansi.Dim, "."),
		ansi.WrapEachLine(ansi.Dim, ". "),
	)
}

// Start writes the start marker and begins appending the tick marker
// every interval until Stop is called. The end marker is written after
// the stop signal, before Stop returns, so the caller's next write is
// never interleaved with a tick.
func Start(w io.Writer, interval time.Duration, start, tick, end string) *Guard {
	g := &Guard{
		stop:     make(chan struct{}),
		finished: make(chan struct{}),
	}

	logger := logging.GetLogger("tick")
	logger.Trace().Dur("interval", interval).Msg("Background ticker started")

	go func() {
		defer close(g.finished)

		if !g.write(w, start) {
			return
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		// One tick lands immediately so even an instant resolution
		// renders the full joining marker.
		for {
			if !g.write(w, tick) {
				return
			}
			select {
			case <-g.stop:
				g.write(w, end)
				return
			case <-ticker.C:
			}
		}
	}()

	return g
}

// write records a failure instead of panicking inside the goroutine;
// Stop re-raises it on the owning caller's stack.
func (g *Guard) write(w io.Writer, s string) bool {
	_, err := w.Write([]byte(s))
	if err != nil {
		g.mu.Lock()
		g.writeErr = err
		g.mu.Unlock()
		return false
	}
	if f, ok := w.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
	return true
}

// Stop signals the goroutine and waits for its final write to land.
// It is safe to call more than once. A write failure that happened on
// the ticker goroutine surfaces here, on the owner's stack.
func (g *Guard) Stop() {
	g.stopOnce.Do(func() {
		close(g.stop)
	})
	<-g.finished

	g.mu.Lock()
	err := g.writeErr
	g.mu.Unlock()
	if err != nil {
		panic(fmt.Sprintf("bulletstream: output writer failed: %v", err))
	}
}

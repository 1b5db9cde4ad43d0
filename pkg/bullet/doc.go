// Package bullet renders structured progress output for build tooling
// as a linear, human-readable stream: headers, bullets, sub-bullets,
// warning and error paragraphs, and timed in-progress indicators.
//
// # Output state machine
//
// A stream starts in the Header state and moves through typed handles;
// every operation consumes its receiver and returns the handle for the
// next legal state, so a message can never be emitted out of sequence:
//
//	dest := bullet.New(os.Stdout).
//		H2("Example Buildpack").
//		Bullet("Ruby version").
//		SubBullet("Installing Ruby").
//		Bullet("Running tests").
//		Done()
//
// Reusing a handle after it has been consumed panics: an illegal
// sequence fails loudly at the call site instead of silently
// reordering the stream.
//
// # Paragraph spacing
//
// Headers and warning/important/error paragraphs are separated from
// surrounding output by exactly one blank line, regardless of what was
// emitted before them. Consecutive bullets are never separated. The
// very first message of a stream gets no leading blank line.
//
// # Background timers
//
// Long-running work that produces no output can hold the line open:
//
//	timer := sub.StartTimer("Downloading")
//	// ... slow work ...
//	sub = timer.Done("42 MB")
//
// While the timer runs, a background goroutine appends a dim dot every
// second. Done and Cancel wait for that goroutine's last write before
// emitting the elapsed time, so ticks and results never interleave. A
// timer that is garbage collected unresolved emits a fixed "(Error)"
// marker so the stream stays well-formed.
package bullet

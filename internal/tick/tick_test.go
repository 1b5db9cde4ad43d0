package tick

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lockedBuffer serializes writes between the tick goroutine and the
// test's assertions.
type lockedBuffer struct {
	mu  sync.Mutex
	buf []byte
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf = append(b.buf, p...)
	return len(p), nil
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.buf)
}

func TestIntervalIsOneSecond(t *testing.T) {
	assert.Equal(t, time.Second, Interval)
}

func TestImmediateStopWritesMarkers(t *testing.T) {
	var buf lockedBuffer
	g := Start(&buf, time.Hour, " .", ".", ". ")
	g.Stop()

	assert.Equal(t, " ... ", buf.String())
}

func TestTicksAccumulate(t *testing.T) {
	var buf lockedBuffer
	g := Start(&buf, 5*time.Millisecond, " .", ".", ". ")

	require.Eventually(t, func() bool {
		return len(buf.String()) > len(" .")+3
	}, time.Second, time.Millisecond)

	g.Stop()
	out := buf.String()
	assert.True(t, len(out) > 4)
	assert.Equal(t, ". ", out[len(out)-2:])
}

func TestStopIsIdempotent(t *testing.T) {
	var buf lockedBuffer
	g := Start(&buf, time.Hour, " .", ".", ". ")
	g.Stop()
	g.Stop()

	assert.Equal(t, " ... ", buf.String())
}

func TestNoWritesAfterStop(t *testing.T) {
	var buf lockedBuffer
	g := Start(&buf, time.Millisecond, " .", ".", ". ")
	time.Sleep(10 * time.Millisecond)
	g.Stop()

	settled := buf.String()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, settled, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestWriteFailureSurfacesOnStop(t *testing.T) {
	g := Start(failingWriter{}, time.Hour, " .", ".", ". ")

	assert.PanicsWithValue(t,
		"bulletstream: output writer failed: sink closed",
		func() { g.Stop() },
	)
}

package global_test

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/bulletstream/pkg/ansi"
	"github.com/arthur-debert/bulletstream/pkg/bullet"
	"github.com/arthur-debert/bulletstream/pkg/global"
)

func TestParagraphStateCarriesAcrossInstances(t *testing.T) {
	var buf bytes.Buffer
	global.SetWriter(&buf)

	bullet.Global().
		H1("Genuine Joes").
		Bullet("Dodge").
		SubBullet("A ball").
		Error("A wrench")

	// A second, independent instance sees the registry's newline state,
	// so the two error paragraphs share a single blank line.
	bullet.Global().
		WithoutHeader().
		Error("It's a bold strategy, Cotton.\nLet's see if it pays off for 'em.")

	expected := "# Genuine Joes\n" +
		"\n" +
		"- Dodge\n" +
		"  - A ball\n" +
		"\n" +
		"! A wrench\n" +
		"\n" +
		"! It's a bold strategy, Cotton.\n" +
		"! Let's see if it pays off for 'em.\n" +
		"\n"
	assert.Equal(t, expected, ansi.Strip(buf.String()))
}

func TestFreeFunctions(t *testing.T) {
	var buf bytes.Buffer
	global.SetWriter(&buf)

	global.H2("Deploy")
	global.Bullet("Upload")
	global.SubBullet("artifact.tgz")
	global.Warning("slow network")
	global.Plain("raw line")
	global.AllDone(time.Time{})

	expected := "## Deploy\n" +
		"\n" +
		"- Upload\n" +
		"  - artifact.tgz\n" +
		"\n" +
		"! slow network\n" +
		"\n" +
		"raw line\n" +
		"- Done\n"
	assert.Equal(t, expected, ansi.Strip(buf.String()))
}

func TestSetWriterRejectsProxy(t *testing.T) {
	assert.PanicsWithValue(t,
		"bulletstream: cannot set the global writer to itself",
		func() { global.SetWriter(global.Tracker()) },
	)
}

func TestWithLockedWriterCapturesAndRestores(t *testing.T) {
	var outer bytes.Buffer
	global.SetWriter(&outer)
	global.Bullet("before")

	captured := global.WithLockedWriter(&bytes.Buffer{}, func() {
		global.Bullet("inside")
	})

	global.Bullet("after")

	assert.Equal(t, "- inside\n", ansi.Strip(captured.(*bytes.Buffer).String()))
	assert.Equal(t, "- before\n- after\n", ansi.Strip(outer.String()))
}

func TestConcurrentLockedScopesDoNotInterleave(t *testing.T) {
	global.SetWriter(&bytes.Buffer{})

	var wg sync.WaitGroup
	results := make([]string, 2)
	messages := []string{"alpha", "beta"}

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := global.WithLockedWriter(&bytes.Buffer{}, func() {
				global.H2(messages[i])
				global.Bullet("step one")
				global.SubBullet("detail")
				global.Warning("careful")
				global.AllDone(time.Time{})
			})
			results[i] = ansi.Strip(w.(*bytes.Buffer).String())
		}(i)
	}
	wg.Wait()

	for i, msg := range messages {
		expected := "## " + msg + "\n" +
			"\n" +
			"- step one\n" +
			"  - detail\n" +
			"\n" +
			"! careful\n" +
			"\n" +
			"- Done\n"
		assert.Equal(t, expected, results[i])
	}
}

func TestGlobalTimer(t *testing.T) {
	var buf bytes.Buffer
	global.SetWriter(&buf)

	global.StartTimer("Installing").Done("ok")

	assert.Equal(t, "  - Installing ... (< 0.1s) ok\n", ansi.Strip(buf.String()))
}

func TestGlobalTimerCancel(t *testing.T) {
	var buf bytes.Buffer
	global.SetWriter(&buf)

	global.StartTimer("Installing").Cancel("Interrupted")

	assert.Equal(t, "  - Installing ... (Interrupted)\n", ansi.Strip(buf.String()))
}

func TestResolvedGlobalTimerPanics(t *testing.T) {
	global.SetWriter(&bytes.Buffer{})

	timer := global.StartTimer("slow")
	timer.Done("")

	assert.PanicsWithValue(t,
		"bulletstream: use of a resolved global Timer",
		func() { timer.Done("") },
	)
}

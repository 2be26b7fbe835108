package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	layouterrors "github.com/markolybrx/layout/errors"
)

const waitFor = 5 * time.Second

func writeLayout(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func nextResult(t *testing.T, w *Watcher) Result {
	t.Helper()
	select {
	case r, ok := <-w.Results():
		require.True(t, ok, "results closed")
		return r
	case <-time.After(waitFor):
		t.Fatal("timed out waiting for result")
		return Result{}
	}
}

// awaitResult skips results until match accepts one; a save can surface an
// intermediate truncated file before the final content.
func awaitResult(t *testing.T, w *Watcher, match func(Result) bool) Result {
	t.Helper()
	deadline := time.After(waitFor)
	for {
		select {
		case r, ok := <-w.Results():
			require.True(t, ok, "results closed")
			if match(r) {
				return r
			}
		case <-deadline:
			t.Fatal("timed out waiting for matching result")
			return Result{}
		}
	}
}

func TestWatcherReinterpretsOnChange(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "activity_main.xml")
	writeLayout(t, path, `<LinearLayout><Button/></LinearLayout>`)

	w, err := New(path, Options{Debounce: 20 * time.Millisecond, Logger: zaptest.NewLogger(t)})
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	first := nextResult(t, w)
	require.NoError(t, first.Err)
	assert.Equal(t, 2, first.Node.Count())

	writeLayout(t, path, `<LinearLayout><Button></LinearLayout>`)
	broken := awaitResult(t, w, func(r Result) bool { return r.Err != nil })
	assert.Nil(t, broken.Node)
	assert.True(t, layouterrors.IsMalformed(broken.Err), "error = %v", broken.Err)

	writeLayout(t, path, `<LinearLayout><Button/><TextView/></LinearLayout>`)
	fixed := awaitResult(t, w, func(r Result) bool { return r.Err == nil })
	require.NoError(t, fixed.Err)
	assert.Equal(t, 3, fixed.Node.Count())
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "activity_main.xml")
	writeLayout(t, path, `<FrameLayout/>`)

	w, err := New(path, Options{Debounce: 10 * time.Millisecond})
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	nextResult(t, w)
	writeLayout(t, filepath.Join(dir, "other.xml"), `<LinearLayout/>`)

	select {
	case r := <-w.Results():
		t.Fatalf("unexpected result %+v", r)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherStopClosesResults(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "main.xml")
	writeLayout(t, path, `<FrameLayout/>`)

	w, err := New(path, Options{})
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	nextResult(t, w)

	w.Stop()
	w.Stop()

	_, ok := <-w.Results()
	assert.False(t, ok)
	assert.Error(t, w.Start(context.Background()))
}

func TestWatcherContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "main.xml")
	writeLayout(t, path, `<FrameLayout/>`)

	w, err := New(path, Options{})
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	nextResult(t, w)

	cancel()
	select {
	case _, ok := <-w.Results():
		assert.False(t, ok)
	case <-time.After(waitFor):
		t.Fatal("results not closed after cancel")
	}
	w.Stop()
}

func TestWatcherStopWithoutStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := New(filepath.Join(t.TempDir(), "main.xml"), Options{})
	require.NoError(t, err)
	w.Stop()

	_, ok := <-w.Results()
	assert.False(t, ok)
}

package tracker

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/slidecast-io/slidecast/internal/logger"
)

func testLogger() logger.Logger {
	return logger.NewWithWriter("error", &strings.Builder{})
}

func touch(t *testing.T, path string) string {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFinalizeRemovesIntermediates(t *testing.T) {
	dir := t.TempDir()
	tr := New(testLogger())

	a := touch(t, filepath.Join(dir, "a.png"))
	b := touch(t, filepath.Join(dir, "b.mp3"))
	final := touch(t, filepath.Join(dir, "final.mp4"))

	tr.Track(a)
	tr.Track(b)
	tr.Track(final)

	failures := tr.Finalize(context.Background(), map[string]struct{}{final: {}})
	if len(failures) != 0 {
		t.Fatalf("Finalize() failures = %v", failures)
	}

	for _, p := range []string{a, b} {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Errorf("intermediate %s still exists", p)
		}
	}
	if _, err := os.Stat(final); err != nil {
		t.Errorf("essential artifact removed: %v", err)
	}
}

func TestFinalizeContinuesPastFailures(t *testing.T) {
	dir := t.TempDir()
	tr := New(testLogger())

	first := touch(t, filepath.Join(dir, "first.png"))

	// A non-empty directory cannot be removed with os.Remove, forcing a
	// deletion failure for the middle artifact.
	stuck := filepath.Join(dir, "stuck")
	if err := os.MkdirAll(filepath.Join(stuck, "inner"), 0755); err != nil {
		t.Fatal(err)
	}

	third := touch(t, filepath.Join(dir, "third.mp3"))

	tr.Track(first)
	tr.Track(stuck)
	tr.Track(third)

	failures := tr.Finalize(context.Background(), nil)
	if len(failures) != 1 {
		t.Fatalf("Finalize() failures = %d, want 1", len(failures))
	}
	if !strings.Contains(failures[0].Error(), "stuck") {
		t.Errorf("failure %v does not name the stuck path", failures[0])
	}

	// First and third must still have been attempted and removed
	if _, err := os.Stat(first); !os.IsNotExist(err) {
		t.Errorf("first intermediate still exists")
	}
	if _, err := os.Stat(third); !os.IsNotExist(err) {
		t.Errorf("third intermediate still exists")
	}
}

func TestFinalizeIgnoresAlreadyMissing(t *testing.T) {
	tr := New(testLogger())
	tr.Track(filepath.Join(t.TempDir(), "never-created.png"))

	if failures := tr.Finalize(context.Background(), nil); len(failures) != 0 {
		t.Errorf("Finalize() failures = %v, want none for missing files", failures)
	}
}

func TestFinalizeSweepsInReverseCreationOrder(t *testing.T) {
	dir := t.TempDir()
	tr := New(testLogger())

	// Work dir is registered before the files created inside it; the
	// reverse sweep must empty it before attempting its removal.
	workDir := filepath.Join(dir, "work")
	if err := os.Mkdir(workDir, 0755); err != nil {
		t.Fatal(err)
	}
	tr.Track(workDir)
	tr.Track(touch(t, filepath.Join(workDir, "segment_001.mp4")))
	tr.Track(touch(t, filepath.Join(workDir, "segment_002.mp4")))

	if failures := tr.Finalize(context.Background(), nil); len(failures) != 0 {
		t.Fatalf("Finalize() failures = %v", failures)
	}
	if _, err := os.Stat(workDir); !os.IsNotExist(err) {
		t.Errorf("work dir still exists")
	}
}

func TestTrackConcurrent(t *testing.T) {
	tr := New(testLogger())

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Track("path")
		}()
	}
	wg.Wait()

	if got := len(tr.Tracked()); got != 32 {
		t.Errorf("Tracked() length = %d, want 32", got)
	}
}

package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/asciidag/pkg/errors"
	"github.com/matzehuels/asciidag/pkg/pipeline"
)

func TestWatchFile(t *testing.T) {
	path := writeInput(t, "g.json", chainJSON)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, path, func() { changed <- struct{}{} })
	}()
	time.Sleep(200 * time.Millisecond)

	sibling := filepath.Join(filepath.Dir(path), "other.json")
	if err := os.WriteFile(sibling, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changed:
		t.Fatal("write to a sibling file triggered onChange")
	case <-time.After(3 * watchDebounce):
	}

	if err := os.WriteFile(path, []byte(cycleJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("onChange not called after write")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watchFile() = %v, want nil", err)
		}
	case <-time.After(time.Second):
		t.Fatal("watchFile did not return after cancel")
	}
}

func TestWatchRenderRejectsStdin(t *testing.T) {
	c := New(io.Discard, LogInfo)
	for _, input := range []string{"-", "https://example.com/g.json"} {
		err := c.watchRender(context.Background(), input, &renderOpts{}, pipeline.Options{})
		if !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("watchRender(%q) error = %v, want INVALID_INPUT", input, err)
		}
	}
}

package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestSpinnerDraws(t *testing.T) {
	var buf bytes.Buffer
	s := startSpinnerOn(context.Background(), &buf, "Rendering...", true, 0)
	time.Sleep(2 * spinnerInterval)
	s.SetMessage("Writing...")
	time.Sleep(2 * spinnerInterval)
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "Rendering...") || !strings.Contains(out, "Writing...") {
		t.Errorf("spinner output missing messages: %q", out)
	}
	if !strings.Contains(out, spinnerFrames[0]) {
		t.Errorf("spinner output missing first frame: %q", out)
	}
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("spinner did not clear its line: %q", out)
	}
}

func TestSpinnerQuiet(t *testing.T) {
	var buf bytes.Buffer
	s := startSpinnerOn(context.Background(), &buf, "Rendering...", false, 0)
	time.Sleep(2 * spinnerInterval)
	s.Stop()

	if buf.Len() != 0 {
		t.Errorf("quiet spinner wrote %q", buf.String())
	}
}

func TestSpinnerDelay(t *testing.T) {
	var buf bytes.Buffer
	s := startSpinnerOn(context.Background(), &buf, "Rendering...", true, time.Hour)
	s.Stop()

	if buf.Len() != 0 {
		t.Errorf("spinner stopped before its delay wrote %q", buf.String())
	}
}

func TestSpinnerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var buf bytes.Buffer
	s := startSpinnerOn(ctx, &buf, "Rendering...", true, 0)

	cancel()
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("spinner kept running after cancel")
	}
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := startSpinnerOn(context.Background(), &bytes.Buffer{}, "x", false, 0)
	s.Stop()
	s.Stop()
	s.Stop()
}

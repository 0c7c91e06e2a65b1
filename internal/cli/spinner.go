package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const (
	spinnerInterval = 80 * time.Millisecond
	// spinnerDelay hides the spinner for operations that finish quickly,
	// which is most renders.
	spinnerDelay = 150 * time.Millisecond
)

// spinner animates a status line on a terminal until stopped or until its
// context is cancelled. On anything other than a terminal it draws nothing.
type spinner struct {
	w     io.Writer
	draw  bool
	delay time.Duration

	mu    sync.Mutex
	msg   string
	drawn int // width of the last frame, for clearing

	stop chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// startSpinner starts a spinner on the status output.
func startSpinner(ctx context.Context, msg string) *spinner {
	draw := statusOut == io.Writer(os.Stderr) && isTerminal(os.Stderr)
	return startSpinnerOn(ctx, statusOut, msg, draw, spinnerDelay)
}

func startSpinnerOn(ctx context.Context, w io.Writer, msg string, draw bool, delay time.Duration) *spinner {
	s := &spinner{w: w, draw: draw, delay: delay, msg: msg, stop: make(chan struct{})}
	s.wg.Add(1)
	go s.run(ctx)
	return s
}

func (s *spinner) run(ctx context.Context) {
	defer s.wg.Done()
	defer s.clear()

	select {
	case <-time.After(s.delay):
	case <-s.stop:
		return
	case <-ctx.Done():
		return
	}

	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()
	for i := 0; ; i++ {
		s.frame(spinnerFrames[i%len(spinnerFrames)])
		select {
		case <-ticker.C:
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *spinner) frame(glyph string) {
	if !s.draw {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	line := styleIconSpinner.Render(glyph) + " " + StyleDim.Render(s.msg)
	fmt.Fprintf(s.w, "\r%s", line)
	s.drawn = max(s.drawn, len([]rune(s.msg))+2)
}

func (s *spinner) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drawn == 0 {
		return
	}
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.drawn))
	s.drawn = 0
}

// SetMessage replaces the text shown next to the animation.
func (s *spinner) SetMessage(msg string) {
	s.mu.Lock()
	s.msg = msg
	s.mu.Unlock()
}

// Stop ends the animation and clears the line. It is safe to call more
// than once.
func (s *spinner) Stop() {
	s.once.Do(func() { close(s.stop) })
	s.wg.Wait()
}

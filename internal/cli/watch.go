package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/asciidag/pkg/errors"
	"github.com/matzehuels/asciidag/pkg/httputil"
	"github.com/matzehuels/asciidag/pkg/pipeline"
)

// watchDebounce coalesces the burst of events editors produce on save.
const watchDebounce = 100 * time.Millisecond

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\033[H\033[2J"

// watchRender renders input once, then again after every change until ctx
// is cancelled. Render errors are reported and watching continues.
func (c *CLI) watchRender(ctx context.Context, input string, opts *renderOpts, popts pipeline.Options) error {
	if input == "-" || httputil.IsURL(input) {
		return errors.New(errors.ErrCodeInvalidInput, "--watch needs a local file")
	}
	logger := loggerFromContext(ctx)
	wipe := isTerminal(os.Stdout)

	render := func() {
		if wipe {
			fmt.Fprint(c.out, clearScreen)
		}
		if err := c.runRender(ctx, input, opts, popts); err != nil {
			printError("%s", errors.UserMessage(err))
		}
	}

	render()
	printInfo("Watching %s (ctrl+c to stop)", input)
	return watchFile(ctx, input, func() {
		logger.Debug("input changed", "file", input)
		render()
	})
}

// watchFile calls onChange after path is written, created or replaced.
// The parent directory is watched rather than the file itself, so editors
// that save by renaming a temporary file are still noticed.
func watchFile(ctx context.Context, path string, onChange func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", path, err)
		case <-fire:
			fire = nil
			onChange()
		}
	}
}

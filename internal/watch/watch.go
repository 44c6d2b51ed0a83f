// Package watch re-runs a function whenever a file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gogpu/flo"
)

// DefaultDebounce coalesces the burst of events editors emit on save.
const DefaultDebounce = 100 * time.Millisecond

// Run calls fn once, then again after every change to path, until ctx is
// done. Errors from fn are logged and do not stop the loop.
//
// The parent directory is watched rather than the file itself so that
// editors which replace the file by rename keep being followed.
func Run(ctx context.Context, path string, debounce time.Duration, fn func(context.Context) error) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch: %s: %w", filepath.Dir(abs), err)
	}

	run := func() {
		if err := fn(ctx); err != nil {
			flo.Logger().Warn("watch: run failed", "path", abs, "err", err)
		}
	}
	run()

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

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
			flo.Logger().Debug("watch: change", "path", abs, "op", ev.Op.String())
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			flo.Logger().Warn("watch: watcher error", "err", err)
		case <-timer.C:
			run()
		}
	}
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bthstudent/javcheck/source"
)

const debounceInterval = 100 * time.Millisecond

// watch runs the audit once and then again after every change to one of
// the local source files, until ctx is done. Failed runs are logged and
// do not stop the loop.
func (c *checker) watch(ctx context.Context) error {
	files := map[string]bool{}
	dirs := map[string]bool{}
	for _, loc := range c.cmd.Sources {
		if source.IsURL(loc) {
			continue
		}
		abs, err := filepath.Abs(loc)
		if err != nil {
			return err
		}
		files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	if len(files) == 0 {
		return errors.New("--watch needs at least one local --source file")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()

	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		c.log.InfoContext(ctx, "watching source directory", "dir", dir)
	}

	c.runLogged(ctx)

	var debounceTimer *time.Timer
	for {
		var debounceC <-chan time.Time
		if debounceTimer != nil {
			debounceC = debounceTimer.C
		}

		select {
		case <-debounceC:
			debounceTimer = nil
			c.runLogged(ctx)

		case event, ok := <-watcher.Events:
			if !ok {
				return errors.New("file watcher events channel closed")
			}
			if !files[filepath.Clean(event.Name)] {
				continue
			}
			// editors often replace the file, which shows up as Create or Rename
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			c.log.DebugContext(ctx, "source changed", "event", event.String())
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.NewTimer(debounceInterval)

		case err, ok := <-watcher.Errors:
			if !ok {
				return errors.New("file watcher error channel closed")
			}
			c.log.WarnContext(ctx, "file watcher error", "err", err)

		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			c.log.InfoContext(ctx, "watch stopped")
			return nil
		}
	}
}

func (c *checker) runLogged(ctx context.Context) {
	if err := c.run(ctx); err != nil {
		c.log.ErrorContext(ctx, "audit failed", "err", err)
	}
}

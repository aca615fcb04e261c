package platform

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
)

// Watch rebuilds the output every time the input changes, until ctx is
// cancelled. Every rebuild is a full Run; onRun, if not nil, receives each
// result. Watch does not perform an initial run. A crash of the watch loop
// is returned as an error.
func (c *Converter) Watch(ctx context.Context, onRun func(Report, error)) error {
	if err := checkInputDir(c.inputDir); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(c.inputDir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", c.inputDir, err)
	}
	c.addMediaWatches(watcher)

	c.setWatching(true)
	task := lifecycle.Go(ctx, func(ctx context.Context) error {
		defer c.setWatching(false)
		defer watcher.Close()
		return c.watchLoop(ctx, watcher, onRun)
	})

	if err := task.Wait(); err != nil {
		c.opts.logger.Error("watch loop stopped", "error", err)
		return fmt.Errorf("watch loop: %w", err)
	}
	return nil
}

// watchLoop collects relevant events and triggers a rebuild once they have
// been quiet for the debounce interval.
func (c *Converter) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, onRun func(Report, error)) error {
	timer := time.NewTimer(c.opts.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !c.relevant(event) {
				continue
			}
			c.opts.logger.Debug("change detected", "name", event.Name, "op", event.Op.String())
			if event.Has(fsnotify.Create) && c.inMedia(event.Name) && isDir(event.Name) {
				c.addMediaWatches(watcher)
			}
			timer.Reset(c.opts.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.opts.logger.Error("fsnotify error", "error", err)

		case <-timer.C:
			report, err := c.Run(ctx)
			if err != nil {
				c.opts.logger.Error("rebuild failed", "error", err)
			}
			if onRun != nil {
				onRun(report, err)
			}
		}
	}
}

// relevant reports whether event can change the output: a note file in the
// input directory, or anything under the media directory.
func (c *Converter) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}

	out, err := filepath.Abs(c.outputDir)
	if err == nil {
		if name, err := filepath.Abs(event.Name); err == nil && within(name, out) {
			return false
		}
	}

	if c.inMedia(event.Name) {
		return true
	}

	return filepath.Dir(filepath.Clean(event.Name)) == filepath.Clean(c.inputDir) &&
		strings.HasSuffix(event.Name, c.opts.extension)
}

// inMedia reports whether name is the media directory or lies below it.
func (c *Converter) inMedia(name string) bool {
	return c.opts.mediaDir != "" &&
		within(filepath.Clean(name), filepath.Join(c.inputDir, c.opts.mediaDir))
}

func isDir(name string) bool {
	info, err := os.Stat(name)
	return err == nil && info.IsDir()
}

// addMediaWatches watches every directory of the media tree; fsnotify is
// not recursive. It is re-run whenever a directory appears under media.
func (c *Converter) addMediaWatches(watcher *fsnotify.Watcher) {
	if c.opts.mediaDir == "" {
		return
	}
	root := filepath.Join(c.inputDir, c.opts.mediaDir)
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				c.opts.logger.Debug("failed to watch media directory", "path", path, "error", err)
			}
		}
		return nil
	})
}

func (c *Converter) setWatching(active bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.watching = active
}

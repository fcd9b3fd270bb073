// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icons

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"go.astrophena.name/base/logger"

	"github.com/fsnotify/fsnotify"
)

var watchReadyHook func() // used in tests, called when Watch started watching

// debouncer delays execution of a function until a specified duration has
// passed without any new events.
type debouncer struct {
	d  time.Duration
	mu sync.Mutex
	f  func()
	t  *time.Timer
}

// newDebouncer creates a new debouncer.
func newDebouncer(d time.Duration, f func()) *debouncer {
	return &debouncer{
		d: d,
		f: f,
	}
}

// Do schedules a function to be executed.
func (d *debouncer) Do() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.t != nil {
		d.t.Stop()
	}

	d.t = time.AfterFunc(d.d, d.f)
}

// Stop cancels a scheduled execution, if any.
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.t != nil {
		d.t.Stop()
	}
}

// Watch generates icons and then regenerates them each time the base image
// changes, until ctx is canceled.
func Watch(ctx context.Context, c *Config) error {
	c.setDefaults()

	var mu sync.Mutex
	regenerate := func() {
		mu.Lock()
		defer mu.Unlock()

		if ctx.Err() != nil {
			return
		}
		// Missing base image is already logged by Generate.
		if _, err := Generate(ctx, c); err != nil && !errors.Is(err, ErrBaseMissing) {
			logger.Error(ctx, "failed to generate icons", slog.Any("err", err))
		}
	}

	logger.Info(ctx, "performing an initial generation")
	regenerate()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(c.Base)); err != nil {
		return err
	}

	// Editors tend to write a file in several steps, so wait for a bit.
	debouncer := newDebouncer(250*time.Millisecond, regenerate)

	logger.Info(ctx, "started watching for changes", slog.String("path", c.Base))
	if watchReadyHook != nil {
		watchReadyHook()
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !shouldRegenerate(c.Base, event) {
				continue
			}
			logger.Info(ctx, "detected change, scheduling generation",
				slog.String("name", event.Name),
				slog.Any("op", event.Op),
			)
			debouncer.Do()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error(ctx, "watcher failed", slog.Any("err", err))
		case <-ctx.Done():
			debouncer.Stop()
			// Wait for a generation that may be in progress.
			mu.Lock()
			defer mu.Unlock()
			return nil
		}
	}
}

// shouldRegenerate reports whether event touches the base image in a way that
// changes it. Generated icons live in the same directory, so everything else
// is ignored.
func shouldRegenerate(base string, event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(base) {
		return false
	}
	// Renames and removals are followed by a create when the file comes back;
	// chmod doesn't change the contents.
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write)
}

// Package watch re-runs an export pass whenever the canonical rules
// directory changes on disk.
package watch

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

// debounce batches rapid editor save sequences into one pass.
const debounce = 200 * time.Millisecond

// Run watches rulesDir and calls sync after each debounced burst of rule
// file changes, until ctx is cancelled. sync failures are logged and the
// watch continues; only watcher setup errors are returned.
func Run(ctx context.Context, rulesDir string, logger *slog.Logger, sync func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(rulesDir); err != nil {
		return err
	}
	logger.Info("watch: started", slog.String("dir", rulesDir))

	changed := make(chan struct{}, 1)

	g, ctx := errgroup.WithContext(ctx)

	// Event loop: coalesce relevant events into the changed channel.
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if !strings.HasSuffix(ev.Name, ".md") {
					continue
				}
				if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				select {
				case changed <- struct{}{}:
				default:
				}
			case watchErr, ok := <-w.Errors:
				if !ok {
					return nil
				}
				logger.Error("watch: error", slog.String("error", watchErr.Error()))
			}
		}
	})

	// Debounced runner.
	g.Go(func() error {
		var timer *time.Timer
		var fire <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				logger.Info("watch: stopped")
				return nil
			case <-changed:
				if timer == nil {
					timer = time.NewTimer(debounce)
					fire = timer.C
				} else {
					timer.Reset(debounce)
				}
			case <-fire:
				if err := sync(); err != nil {
					logger.Warn("watch: sync failed", slog.String("error", err.Error()))
				}
			}
		}
	})

	return g.Wait()
}

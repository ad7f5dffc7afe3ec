package template

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch starts a goroutine that logs a warning whenever the template file is
// written, replaced or removed after the cache was populated. The cached copy
// stays in effect until the process restarts; watching only makes staleness
// visible. Stops when ctx is cancelled.
func (s *Store) Watch(ctx context.Context, logger *zap.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	// Watch the directory: editors replace files via rename, which a watch on
	// the file itself would lose.
	dir := filepath.Dir(s.path)
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	target, err := filepath.Abs(s.path)
	if err != nil {
		target = s.path
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				name, err := filepath.Abs(ev.Name)
				if err != nil || name != target {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				if s.isLoaded() {
					logger.Warn("template file changed on disk; cached copy stays in effect until restart",
						zap.String("path", s.path),
						zap.String("op", ev.Op.String()))
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("template watch error", zap.Error(err))
			}
		}
	}()
	return nil
}

package dashboard

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/mkorsa/covidash/internal/pkg/logger"
)

// Watch invalidates the snapshot cache whenever either source file changes.
// The parent directories are watched rather than the files themselves so
// atomic rename-replace writes keep being seen. Non-blocking; the watcher
// stops when ctx is done.
//
// Watching is eager invalidation only. The mtime-based cache key still
// catches any change the watcher misses, so running without Watch is safe.
func (s *Service) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	sources := map[string]struct{}{
		filepath.Clean(s.cfg.CaseSource):        {},
		filepath.Clean(s.cfg.VaccinationSource): {},
	}

	dirs := map[string]struct{}{}
	for path := range sources {
		dirs[filepath.Dir(path)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return err
		}
	}

	go func() {
		defer func() {
			_ = watcher.Close()
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if _, watched := sources[filepath.Clean(event.Name)]; !watched {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				logger.Infof(ctx, "source %s changed (%s), invalidating snapshot", event.Name, event.Op)
				s.Invalidate()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Errorf(ctx, "source watcher: %s", err.Error())
			}
		}
	}()

	return nil
}

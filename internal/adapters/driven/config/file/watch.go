package file

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/hnsearch/internal/logger"
)

// Watch reloads the configuration whenever the file changes on disk and
// signals each successful reload on the returned channel. The channel is
// closed when ctx is done.
//
// The directory is watched rather than the file so that editors which
// replace the file on save are still seen.
func (s *ConfigStore) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(s.filePath)); err != nil {
		watcher.Close() //nolint:errcheck
		return nil, err
	}

	reloads := make(chan struct{}, 1)

	go func() {
		defer close(reloads)
		defer watcher.Close() //nolint:errcheck

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != s.filePath {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) {
					continue
				}
				if err := s.Load(); err != nil {
					logger.Warn("Reloading %s failed: %v", s.filePath, err)
					continue
				}
				logger.Debug("Reloaded %s", s.filePath)

				// Coalesce: a pending signal already covers this reload.
				select {
				case reloads <- struct{}{}:
				default:
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Config watcher error: %v", err)
			}
		}
	}()

	return reloads, nil
}

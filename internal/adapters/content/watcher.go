package content

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/iot-kits/aprsbln/pkg/log"
)

// Watcher monitors the bulletin content file via fsnotify and reloads the
// FileSource when it changes. Editors replace files with write+rename, so
// the watch is on the containing directory and events are filtered by name.
type Watcher struct {
	source *FileSource
	logger log.Logger

	mu       sync.Mutex
	debounce *time.Timer
}

// NewWatcher creates a watcher for the given source.
func NewWatcher(source *FileSource, logger log.Logger) *Watcher {
	return &Watcher{source: source, logger: logger}
}

// Run watches the content file until the context is canceled.
func (w *Watcher) Run(ctx context.Context) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.logger.Error("content watcher: create failed", log.Err(err))
		return
	}
	defer watcher.Close()

	dir := filepath.Dir(w.source.Path())
	if err := watcher.Add(dir); err != nil {
		w.logger.Error("content watcher: watch failed", log.String("dir", dir), log.Err(err))
		return
	}

	name := filepath.Base(w.source.Path())
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.debounceReload(100 * time.Millisecond)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("content watcher: error", log.Err(err))
		}
	}
}

func (w *Watcher) debounceReload(delay time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}

	w.debounce = time.AfterFunc(delay, func() {
		if err := w.source.Reload(); err != nil {
			w.logger.Error("content reload failed", log.Err(err))
			return
		}
		w.logger.Info("content reloaded",
			log.String("path", w.source.Path()),
			log.Int("lines", w.source.Count()))
	})
}

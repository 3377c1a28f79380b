// Package watch re-triggers documentation builds when project sources
// change. Rapid bursts of file events (editor saves, gofmt rewrites,
// branch switches) debounce into a single rebuild.
package watch

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/teranos/typedoc/errors"
	"github.com/teranos/typedoc/logger"
)

// RebuildCallback receives the files that changed since the last rebuild.
type RebuildCallback func(changed []string) error

// Watcher watches a source tree for Go file changes.
type Watcher struct {
	root           string
	watcher        *fsnotify.Watcher
	callbacks      []RebuildCallback
	mu             sync.RWMutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
	pending        map[string]struct{}
}

// New creates a watcher over every directory under root. Hidden
// directories, testdata, and vendor trees are skipped.
func New(root string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create fsnotify watcher")
	}

	w := &Watcher{
		root:           root,
		watcher:        fsw,
		debouncePeriod: 500 * time.Millisecond,
		pending:        make(map[string]struct{}),
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if skipDir(d.Name()) && path != root {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
	if err != nil {
		fsw.Close()
		return nil, errors.Wrapf(err, "watch source tree %s", root)
	}
	return w, nil
}

// OnRebuild registers a callback invoked after changes settle.
func (w *Watcher) OnRebuild(callback RebuildCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// SetDebounce overrides the settle period. Tests shorten it.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debouncePeriod = d
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Stop stops watching. Pending debounced rebuilds may still fire.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Create != 0 {
				// New directories join the watch set so files created
				// inside them are seen.
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					if !skipDir(filepath.Base(event.Name)) {
						if err := w.watcher.Add(event.Name); err != nil {
							logger.Warnw("Failed to watch new directory",
								logger.FieldPath, event.Name,
								logger.FieldError, err)
						}
					}
				}
			}
			if !isSourceFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debugw("Source change detected",
				logger.FieldFile, event.Name,
				"op", event.Op.String(),
			)
			w.scheduleRebuild(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("Source watcher error", logger.FieldError, err)
		}
	}
}

// scheduleRebuild records the change and (re)arms the debounce timer.
func (w *Watcher) scheduleRebuild(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending[path] = struct{}{}
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, w.rebuild)
}

// rebuild drains the pending set and calls every callback.
func (w *Watcher) rebuild() {
	w.mu.Lock()
	changed := make([]string, 0, len(w.pending))
	for path := range w.pending {
		changed = append(changed, path)
	}
	w.pending = make(map[string]struct{})
	callbacks := make([]RebuildCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	sort.Strings(changed)
	logger.Infow("Rebuilding after source changes",
		logger.FieldCount, len(changed),
		logger.FieldPath, w.root,
	)
	for _, callback := range callbacks {
		if err := callback(changed); err != nil {
			logger.Warnw("Rebuild callback error", logger.FieldError, err)
			// Remaining callbacks still run.
		}
	}
}

func isSourceFile(path string) bool {
	return strings.HasSuffix(path, ".go")
}

func skipDir(name string) bool {
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return true
	}
	return name == "vendor" || name == "testdata" || name == "node_modules"
}

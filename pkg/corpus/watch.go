package corpus

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher keeps a corpus snapshot in sync with a clause directory. Every
// relevant file event triggers a full reload that swaps in a fresh
// immutable snapshot; readers holding the previous snapshot are
// unaffected. Reloading while evaluations are in flight is safe because
// snapshots are never mutated in place.
type Watcher struct {
	dir      string
	watcher  *fsnotify.Watcher
	onReload func(*Corpus, []LoadWarning)

	mu       sync.RWMutex
	snapshot *Corpus

	stopOnce sync.Once
	stop     chan struct{}
}

// Watch loads the clause directory and starts watching it for changes.
// onReload, if non-nil, is called with each new snapshot and its load
// warnings (including the initial load).
func Watch(dir string, onReload func(*Corpus, []LoadWarning)) (*Watcher, error) {
	snapshot, warnings, err := Load(dir)
	if err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("watching directory %s: %w", dir, err)
	}

	w := &Watcher{
		dir:      dir,
		watcher:  fsWatcher,
		onReload: onReload,
		snapshot: snapshot,
		stop:     make(chan struct{}),
	}
	if w.onReload != nil {
		w.onReload(snapshot, warnings)
	}

	go w.loop()
	return w, nil
}

// Snapshot returns the current corpus snapshot.
func (w *Watcher) Snapshot() *Corpus {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.snapshot
}

// Close stops watching. The last snapshot stays valid.
func (w *Watcher) Close() error {
	w.stopOnce.Do(func() { close(w.stop) })
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.stop:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !isClauseFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.reload()

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) reload() {
	snapshot, warnings, err := Load(w.dir)
	if err != nil {
		return
	}
	w.mu.Lock()
	w.snapshot = snapshot
	w.mu.Unlock()
	if w.onReload != nil {
		w.onReload(snapshot, warnings)
	}
}

// Package watch reports changes to a single file on disk.
package watch

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher signals on Changes whenever the watched file is written, created or
// renamed into place. Signals coalesce: a burst of events before the reader
// drains the channel yields one signal.
type Watcher struct {
	fs      *fsnotify.Watcher
	changes chan struct{}
	done    chan struct{}

	mu   sync.Mutex
	path string
}

// New starts an event loop with nothing watched yet. Call Watch to pick the
// file.
func New() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("start watcher: %w", err)
	}
	w := &Watcher{
		fs:      fw,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Watch moves the watcher to path. The parent directory is watched so editors
// that save through a temporary file and rename are still seen. On error the
// previous file stays watched.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if abs == w.path {
		return nil
	}
	newDir := filepath.Dir(abs)
	oldDir := ""
	if w.path != "" {
		oldDir = filepath.Dir(w.path)
	}
	if newDir != oldDir {
		if err := w.fs.Add(newDir); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		if oldDir != "" {
			w.fs.Remove(oldDir)
		}
	}
	w.path = abs
	return nil
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.changes)
	for {
		select {
		case e, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.Path() {
				continue
			}
			if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) && !e.Has(fsnotify.Rename) {
				continue
			}
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Println("watch error:", err)
		}
	}
}

// Changes receives one value per batch of changes to the file. It is closed
// by Close.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Path is the absolute path being watched, or "" before the first Watch.
func (w *Watcher) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

// Close stops watching and waits for the event loop to exit.
func (w *Watcher) Close() error {
	err := w.fs.Close()
	<-w.done
	return err
}

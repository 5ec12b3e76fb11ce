package theme

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce batches the burst of events an editor produces on save.
const DefaultDebounce = 200 * time.Millisecond

// Update is the result of reloading a watched theme file.
type Update struct {
	Theme Theme
	Err   error
}

// Watcher reloads a theme file whenever it changes on disk.
//
// The parent directory is watched rather than the file itself, so saves
// that replace the file (write to temp, rename over) are seen too.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	updates  chan Update
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// Watch starts watching path. Close must be called to release it.
func Watch(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving theme path %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating theme watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w := &Watcher{
		path:     abs,
		watcher:  fw,
		debounce: debounce,
		updates:  make(chan Update, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Updates delivers one Update per settled change. It is closed by Close.
func (w *Watcher) Updates() <-chan Update {
	return w.updates
}

// Close stops watching and waits for the event loop to exit.
func (w *Watcher) Close() error {
	select {
	case <-w.stopCh:
		return nil
	default:
	}
	close(w.stopCh)
	err := w.watcher.Close()
	<-w.doneCh
	return err
}

func (w *Watcher) run() {
	defer close(w.doneCh)
	defer close(w.updates)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(Update{Err: fmt.Errorf("watching theme %s: %w", w.path, err)})

		case <-timer.C:
			th, err := Load(w.path)
			w.send(Update{Theme: th, Err: err})
		}
	}
}

// send delivers u, replacing an update nobody has read yet.
func (w *Watcher) send(u Update) {
	for {
		select {
		case w.updates <- u:
			return
		case <-w.stopCh:
			return
		default:
		}
		select {
		case <-w.updates:
		default:
		}
	}
}

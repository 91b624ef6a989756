package document

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event signals that the document at Path was modified and the debounce
// window has elapsed.
type Event struct {
	Path string
}

// Watcher watches a single document for modification and delivers debounced
// change events. Rapid successive writes collapse into one event: a single
// pending timer is reset on each write, so only the last burst fires
// (last-write-wins). Events for other files in the same directory are
// dropped.
type Watcher struct {
	path     string
	debounce time.Duration
	fs       *fsnotify.Watcher
	events   chan Event
	done     chan struct{}
}

// NewWatcher starts watching the document's directory. Watching the
// directory rather than the file survives editors that save via
// rename-and-replace.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		debounce: debounce,
		fs:       fs,
		events:   make(chan Event, 1),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Events delivers debounced modification events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Close stops the watcher. Pending debounced events are discarded.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}

func (w *Watcher) run() {
	defer close(w.events)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-fire:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			// Drop rather than block: the consumer reloads from current
			// text, so a queued event already covers this change.
			select {
			case w.events <- Event{Path: w.path}:
			default:
			}

		case _, ok := <-w.fs.Errors:
			if !ok {
				return
			}

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// relevant filters directory events down to writes of the watched document.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

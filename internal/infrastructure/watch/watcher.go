// Package watch reports edits to scene files on disk.
package watch

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceInterval is how long a file must stay quiet before it is reported
const DebounceInterval = 100 * time.Millisecond

// Watcher forwards writes to scene files in the watched directories.
// Events carries the changed file path.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	doneCh  chan struct{}
	once    sync.Once
}

// NewWatcher starts watching the given directories
func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher and closes both channels
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.doneCh
		close(w.Events)
		close(w.Errors)
	})
	return err
}

// Poll returns the changed paths received since the last call without blocking
func (w *Watcher) Poll() []string {
	var changed []string
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return changed
			}
			changed = append(changed, name)
		default:
			return changed
		}
	}
}

func (w *Watcher) run() {
	defer close(w.doneCh)

	d := newDebouncer(DebounceInterval, w.closeCh)
	defer d.stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !IsSceneFile(event.Name) {
				continue
			}
			d.touch(event.Name)
		case name := <-d.due:
			d.done(name)
			select {
			case w.Events <- name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// debouncer reports a path once it has been quiet for delay.
// Every touch restarts the path's timer, so a truncate followed by a write
// is reported once, after the write.
type debouncer struct {
	delay  time.Duration
	timers map[string]*time.Timer
	due    chan string
	quit   <-chan struct{}
}

func newDebouncer(delay time.Duration, quit <-chan struct{}) *debouncer {
	return &debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
		due:    make(chan string),
		quit:   quit,
	}
}

func (d *debouncer) touch(name string) {
	if t, ok := d.timers[name]; ok {
		t.Reset(d.delay)
		return
	}
	d.timers[name] = time.AfterFunc(d.delay, func() {
		select {
		case d.due <- name:
		case <-d.quit:
		}
	})
}

func (d *debouncer) done(name string) {
	delete(d.timers, name)
}

func (d *debouncer) stop() {
	for name, t := range d.timers {
		t.Stop()
		delete(d.timers, name)
	}
}

// IsSceneFile reports whether path names a scene document
func IsSceneFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".json"
}

// SameScene reports whether a changed path refers to the scene file name
func SameScene(changed, sceneFile string) bool {
	return filepath.Base(changed) == filepath.Base(filepath.FromSlash(sceneFile))
}

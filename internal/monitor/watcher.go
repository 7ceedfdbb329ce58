// Package monitor watches the statusline configuration files so the live
// panel can reload them
package monitor

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events an editor save produces
const DefaultDebounce = 250 * time.Millisecond

// WatcherInterface defines the interface for config watchers
type WatcherInterface interface {
	Reloads() <-chan struct{}
	Errors() <-chan error
	Close() error
}

// Watcher reports changes to a set of config files
type Watcher struct {
	watcher   *fsnotify.Watcher
	files     map[string]bool
	debounce  time.Duration
	reloadCh  chan struct{}
	errorChan chan error
	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// NewWatcher watches the directories holding paths. Directories that do not
// exist are skipped; a config created there later is not seen until restart.
func NewWatcher(paths []string) (*Watcher, error) {
	return NewWatcherWithDebounce(paths, DefaultDebounce)
}

// NewWatcherWithDebounce is NewWatcher with a custom quiet period
func NewWatcherWithDebounce(paths []string, debounce time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	files := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		p = filepath.Clean(p)
		files[p] = true
		dir := filepath.Dir(p)
		if dirs[dir] {
			continue
		}
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		if err := fsWatcher.Add(dir); err != nil {
			fsWatcher.Close()
			return nil, err
		}
		dirs[dir] = true
	}

	w := &Watcher{
		watcher:   fsWatcher,
		files:     files,
		debounce:  debounce,
		reloadCh:  make(chan struct{}, 1),
		errorChan: make(chan error, 10),
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}

	go w.watch()

	return w, nil
}

// watch runs the event loop until Close
func (w *Watcher) watch() {
	defer close(w.stopped)
	defer close(w.reloadCh)
	defer close(w.errorChan)

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.files[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			select {
			case w.reloadCh <- struct{}{}:
			default:
				// a reload is already pending
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errorChan <- err:
			default:
			}
		}
	}
}

// Reloads delivers one value per settled burst of config changes
func (w *Watcher) Reloads() <-chan struct{} {
	return w.reloadCh
}

// Errors returns a channel of errors that occur during watching
func (w *Watcher) Errors() <-chan error {
	return w.errorChan
}

// Close stops watching. Both channels are closed once it returns.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.done)
		w.closeErr = w.watcher.Close()
		<-w.stopped
	})
	return w.closeErr
}

// TestWatcher is a helper for testing that provides direct control over channels
type TestWatcher struct {
	reloadCh  chan struct{}
	errorChan chan error
	closed    bool
	mu        sync.Mutex
}

// NewTestWatcher creates a test watcher with controllable channels
func NewTestWatcher() *TestWatcher {
	return &TestWatcher{
		reloadCh:  make(chan struct{}, 10),
		errorChan: make(chan error, 10),
	}
}

func (tw *TestWatcher) Reloads() <-chan struct{} {
	return tw.reloadCh
}

func (tw *TestWatcher) Errors() <-chan error {
	return tw.errorChan
}

func (tw *TestWatcher) Close() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.closed {
		return nil
	}
	tw.closed = true
	close(tw.reloadCh)
	close(tw.errorChan)
	return nil
}

// Trigger simulates a config change
func (tw *TestWatcher) Trigger() {
	tw.reloadCh <- struct{}{}
}

// SendError sends a test error to the watcher
func (tw *TestWatcher) SendError(err error) {
	tw.errorChan <- err
}

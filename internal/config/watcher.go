package config

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/andrewmd5/dawn-sub002/internal/logging"
)

// Watcher hot-reloads a single config file on write, debouncing rapid
// successive writes the way editors tend to produce when a file is
// saved by an external tool.
type Watcher struct {
	mu      sync.RWMutex
	watcher *fsnotify.Watcher
	done    chan struct{}
	path    string
	onLoad  func(Config)
}

const debounceDuration = 500 * time.Millisecond

// Watch starts watching path for writes, invoking onLoad with the
// freshly reloaded Config each time (after a debounce window). It
// returns a *Watcher the caller must Stop() when done.
func Watch(path string, onLoad func(Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(path); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		done:    make(chan struct{}),
		path:    path,
		onLoad:  onLoad,
	}
	go w.loop()
	return w, nil
}

// Stop shuts the watcher down.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watcher == nil {
		return
	}
	select {
	case <-w.done:
	default:
		close(w.done)
	}
	w.watcher.Close()
	w.watcher = nil
}

func (w *Watcher) loop() {
	var debounce *time.Timer

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(debounceDuration, w.reload)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Debug("config watcher error: %v", err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		logging.Debug("config reload failed for %s: %v", w.path, err)
		return
	}
	w.onLoad(cfg)
}

package strategy

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-applies a configuration file to a registry whenever the file
// changes on disk.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	reg     *Registry
	onError func(error)

	closeOnce sync.Once
	closeCh   chan struct{}
	wg        sync.WaitGroup
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithErrorHandler sets a callback for reload errors. Without one, reload
// errors are dropped and the previous configuration stays in effect.
func WithErrorHandler(fn func(error)) WatchOption {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// Watch applies the configuration at path to reg, then starts watching for
// changes and re-applies on every modification. The containing directory is
// watched rather than the file itself, so editors that replace the file on
// save (write to temp, rename over) are still observed.
func Watch(path string, reg *Registry, opts ...WatchOption) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(absPath)
	if err != nil {
		return nil, err
	}
	cfg.Apply(reg)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fsw,
		path:    absPath,
		reg:     reg,
		closeCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

// Path returns the absolute path of the watched configuration file.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops watching and releases the underlying watcher. Safe to call
// more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.reportError(err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadConfig(w.path)
	if err != nil {
		w.reportError(err)
		return
	}
	cfg.Apply(w.reg)
}

func (w *Watcher) reportError(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}

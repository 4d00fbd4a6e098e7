package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce drops repeat events for a file inside this window; editors
// often write a file several times per save.
const reloadDebounce = 100 * time.Millisecond

// Watcher reports prefab and script edits on disk as cleaned prefab names
// such as "player.yaml" or "scripts/demo.tengo".
type Watcher struct {
	watcher *fsnotify.Watcher
	changes chan string
	errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches Dir and Dir/scripts.
func NewWatcher() (*Watcher, error) {
	return NewWatcherDirs(Dir, filepath.Join(Dir, "scripts"))
}

func NewWatcherDirs(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		watcher: fw,
		changes: make(chan string, 16),
		errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Changes() <-chan string { return w.changes }
func (w *Watcher) Errors() <-chan error   { return w.errors }

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.changes)
		close(w.errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name, ok := prefabName(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, seen := last[name]; seen && now.Sub(t) < reloadDebounce {
				continue
			}
			last[name] = now
			select {
			case w.changes <- name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// prefabName maps a watched path to its prefab name, ignoring other files.
func prefabName(path string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return filepath.Base(path), true
	case ".tengo":
		return "scripts/" + filepath.Base(path), true
	default:
		return "", false
	}
}

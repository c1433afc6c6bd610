package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events editors produce on save.
const DefaultDebounce = 100 * time.Millisecond

// FSWatcher implements Watcher using fsnotify for OS-native notifications.
// It watches the file's directory so that atomic saves (write to a temp file,
// then rename) are still observed.
type FSWatcher struct {
	w        *fsnotify.Watcher
	target   string
	debounce time.Duration
	evC      chan Event
	erC      chan error
	done     chan struct{}
	once     sync.Once
}

// New creates an FSWatcher for path. A debounce of zero disables coalescing.
func New(path string, debounce time.Duration) (*FSWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	fw := &FSWatcher{
		w:        w,
		target:   abs,
		debounce: debounce,
		evC:      make(chan Event, 16),
		erC:      make(chan error, 1),
		done:     make(chan struct{}),
	}
	go fw.loop()
	return fw, nil
}

func (fw *FSWatcher) loop() {
	defer close(fw.evC)

	var (
		pending Op
		timer   *time.Timer
		fire    <-chan time.Time
	)

	for {
		select {
		case <-fw.done:
			if timer != nil {
				timer.Stop()
			}
			return
		case ev, ok := <-fw.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != fw.target {
				continue
			}
			op := translate(ev.Op)
			if op == 0 {
				continue
			}
			if fw.debounce <= 0 {
				fw.emit(op)
				continue
			}
			pending |= op
			if timer == nil {
				timer = time.NewTimer(fw.debounce)
			} else {
				timer.Reset(fw.debounce)
			}
			fire = timer.C
		case <-fire:
			fw.emit(pending)
			pending, fire = 0, nil
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}
			select {
			case fw.erC <- err:
			default:
			}
		}
	}
}

func (fw *FSWatcher) emit(op Op) {
	select {
	case fw.evC <- Event{Path: fw.target, Op: op, Time: time.Now()}:
	case <-fw.done:
	}
}

func translate(o fsnotify.Op) Op {
	var op Op
	if o&fsnotify.Create != 0 {
		op |= OpCreate
	}
	if o&fsnotify.Write != 0 {
		op |= OpWrite
	}
	if o&fsnotify.Remove != 0 {
		op |= OpRemove
	}
	if o&fsnotify.Rename != 0 {
		op |= OpRename
	}
	return op
}

func (fw *FSWatcher) Events() <-chan Event { return fw.evC }
func (fw *FSWatcher) Errors() <-chan error { return fw.erC }

// Close stops the watcher. It is safe to call more than once.
func (fw *FSWatcher) Close() error {
	var err error
	fw.once.Do(func() {
		close(fw.done)
		err = fw.w.Close()
	})
	return err
}

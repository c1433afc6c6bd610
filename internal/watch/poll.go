package watch

import (
	"context"
	"os"
	"sync"
	"time"
)

// PollingWatcher is a polling-based watcher portable across OSes and
// filesystems where native notifications are unavailable.
type PollingWatcher struct {
	evCh chan Event
	erCh chan error
	stop context.CancelFunc
	once sync.Once
}

// NewPolling starts polling path's modification time every interval.
func NewPolling(ctx context.Context, path string, interval time.Duration) *PollingWatcher {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	ctx, cancel := context.WithCancel(ctx)
	w := &PollingWatcher{evCh: make(chan Event, 16), erCh: make(chan error, 1), stop: cancel}

	var lastMod time.Time
	if info, err := os.Stat(path); err == nil {
		lastMod = info.ModTime()
	}

	go func() {
		defer close(w.evCh)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				info, err := os.Stat(path)
				if err != nil {
					select {
					case w.erCh <- err:
					default:
					}
					continue
				}
				if !info.ModTime().After(lastMod) {
					continue
				}
				lastMod = info.ModTime()
				select {
				case w.evCh <- Event{Path: path, Op: OpWrite, Time: time.Now()}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return w
}

func (w *PollingWatcher) Events() <-chan Event { return w.evCh }
func (w *PollingWatcher) Errors() <-chan error { return w.erCh }

func (w *PollingWatcher) Close() error {
	w.once.Do(w.stop)
	return nil
}

// Package watch notifies callers when a source file changes.
package watch

import (
	"context"
	"os"
	"time"
)

// Op describes what happened to a watched file.
type Op uint8

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
)

func (op Op) String() string {
	switch {
	case op&OpRemove != 0:
		return "remove"
	case op&OpRename != 0:
		return "rename"
	case op&OpCreate != 0:
		return "create"
	case op&OpWrite != 0:
		return "write"
	}
	return "none"
}

// Event is a change notification for a single path.
type Event struct {
	Path string
	Op   Op
	Time time.Time
}

// Watcher delivers change events for one file.
type Watcher interface {
	Events() <-chan Event
	Errors() <-chan error
	Close() error
}

// Run calls fn once for path and then again for every event from w, until ctx
// is done or the event channel closes. A removal is skipped only while the
// file is missing, so a delete-and-recreate save is still reported. Watcher
// errors are passed to onErr when it is non-nil.
func Run(ctx context.Context, w Watcher, path string, fn func(path string), onErr func(error)) error {
	fn(path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events():
			if !ok {
				return nil
			}
			if ev.Op&OpRemove != 0 && !exists(path) {
				continue
			}
			fn(path)
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			if onErr != nil {
				onErr(err)
			}
		}
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

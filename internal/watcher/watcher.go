// Package watcher watches a single input file for changes with debouncing.
//
// Watch mode re-runs the full one-shot analysis whenever the file changes;
// nothing incremental happens here. The debouncer exists because editors
// commonly emit several events per save.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeEvent represents a change to the watched file.
type ChangeEvent struct {
	Path    string
	ModTime time.Time
	Size    int64
}

// ChangeHandler handles a debounced batch of file change events.
type ChangeHandler func(events []ChangeEvent) error

// FileWatcher watches one file and delivers debounced change batches.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	target   string
	delay    time.Duration
	handlers []ChangeHandler
}

// NewFileWatcher creates a watcher for the given file. The watch is placed
// on the parent directory so editors that replace the file on save (rename
// plus create) are still observed.
func NewFileWatcher(target string, debounce time.Duration) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		w.Close()
		return nil, err
	}

	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}

	return &FileWatcher{
		watcher: w,
		target:  abs,
		delay:   debounce,
	}, nil
}

// AddHandler registers a change handler. Handlers must be registered
// before Start.
func (fw *FileWatcher) AddHandler(handler ChangeHandler) {
	fw.handlers = append(fw.handlers, handler)
}

// Start runs the watch loop until ctx is cancelled or the underlying
// watcher fails. Events for the target file are grouped within the
// debounce window and delivered to every handler as one batch.
func (fw *FileWatcher) Start(ctx context.Context) error {
	var (
		pending []ChangeEvent
		timer   *time.Timer
		fire    <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if !fw.matches(event) {
				continue
			}

			pending = append(pending, fw.changeEvent())
			if timer == nil {
				timer = time.NewTimer(fw.delay)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(fw.delay)
			}
			fire = timer.C

		case <-fire:
			batch := pending
			pending = nil
			fire = nil
			for _, handler := range fw.handlers {
				if err := handler(batch); err != nil {
					return err
				}
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

// Close releases the underlying filesystem watcher.
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}

// matches reports whether a filesystem event concerns the watched file and
// represents a content change.
func (fw *FileWatcher) matches(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != fw.target {
		return false
	}

	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// changeEvent snapshots the target file's current metadata. A file that is
// momentarily missing (mid-replace) yields a zero-valued event.
func (fw *FileWatcher) changeEvent() ChangeEvent {
	ev := ChangeEvent{Path: fw.target}
	if info, err := os.Stat(fw.target); err == nil {
		ev.ModTime = info.ModTime()
		ev.Size = info.Size()
	}

	return ev
}

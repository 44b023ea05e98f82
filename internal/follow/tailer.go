// Package follow tails the master log: every block appended by a running
// benchmark is delivered, line by line, to a callback. It backs the CLI's
// `log --follow` mode and the live web stream.
package follow

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/logger"
)

// LineCallback receives each newly appended line, without its trailing
// newline.
type LineCallback func(line string)

// Tailer watches one file for appends. The containing directory is watched
// rather than the file itself so the tailer survives the file not existing
// yet; the master log is only created by the first run.
type Tailer struct {
	path     string
	watcher  *fsnotify.Watcher
	callback LineCallback

	mu     sync.Mutex
	offset int64
	cancel context.CancelFunc
}

// NewTailer creates a tailer for path, reporting only lines appended after
// this call.
func NewTailer(path string, callback LineCallback) (*Tailer, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	t := &Tailer{
		path:     path,
		watcher:  watcher,
		callback: callback,
	}
	if info, err := os.Stat(path); err == nil {
		t.offset = info.Size()
	}
	return t, nil
}

// Start begins delivering appended lines until ctx is cancelled or Stop is
// called.
func (t *Tailer) Start(ctx context.Context) {
	ctx, t.cancel = context.WithCancel(ctx)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-t.watcher.Events:
				if !ok {
					return
				}
				t.handleEvent(event)
			case err, ok := <-t.watcher.Errors:
				if !ok {
					return
				}
				logger.Debug("tailer watch error", "err", err)
			}
		}
	}()
}

// Stop stops watching.
func (t *Tailer) Stop() {
	if t.cancel != nil {
		t.cancel()
	}
	t.watcher.Close()
}

func (t *Tailer) handleEvent(event fsnotify.Event) {
	if event.Name != t.path {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}
	t.drain()
}

// drain reads from the recorded offset to EOF and delivers complete lines.
func (t *Tailer) drain() {
	t.mu.Lock()
	defer t.mu.Unlock()

	f, err := os.Open(t.path)
	if err != nil {
		return
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Size() < t.offset {
		// Truncated or replaced; start over from the top.
		t.offset = 0
	}
	if _, err := f.Seek(t.offset, io.SeekStart); err != nil {
		return
	}

	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			// A partial final line stays buffered on disk until the next
			// write completes it; do not advance past it.
			break
		}
		t.offset += int64(len(line))
		if t.callback != nil {
			t.callback(line[:len(line)-1])
		}
	}
}

package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func newTestWatcher(t *testing.T, files ...string) (*Watcher, chan fsnotify.Event, chan error) {
	t.Helper()
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	_ = fsw.Close()

	events := make(chan fsnotify.Event)
	errs := make(chan error, 1)
	fsw.Events = events
	fsw.Errors = errs

	set := make(map[string]bool)
	for _, f := range files {
		abs, _ := filepath.Abs(f)
		set[abs] = true
	}
	return &Watcher{fsw: fsw, files: set, callback: func() {}}, events, errs
}

func TestRunStopsWhenEventsClose(t *testing.T) {
	w, events, _ := newTestWatcher(t)
	done := make(chan struct{})
	go func() {
		w.Run(context.Background(), nil)
		close(done)
	}()
	close(events)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Events channel closed")
	}
}

func TestRunReportsErrors(t *testing.T) {
	w, _, errs := newTestWatcher(t)
	var got atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx, func(error) { got.Add(1) })
		close(done)
	}()
	errs <- errors.New("injected")
	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done
	if got.Load() != 1 {
		t.Fatalf("expected 1 error callback, got %d", got.Load())
	}
}

func TestRunIgnoresOtherFilesAndChmod(t *testing.T) {
	w, events, _ := newTestWatcher(t, "tasks.json")
	var called atomic.Int32
	w.callback = func() { called.Add(1) }
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx, nil)
		close(done)
	}()

	events <- fsnotify.Event{Name: "tasks.json", Op: fsnotify.Chmod}
	events <- fsnotify.Event{Name: "other.json", Op: fsnotify.Write}
	time.Sleep(3 * debounce)
	if called.Load() != 0 {
		t.Fatalf("expected no callbacks, got %d", called.Load())
	}

	events <- fsnotify.Event{Name: "tasks.json", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "tasks.json", Op: fsnotify.Rename}
	time.Sleep(3 * debounce)
	if called.Load() != 1 {
		t.Fatalf("expected one debounced callback, got %d", called.Load())
	}
	cancel()
	<-done
}

func TestWatchRealFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "tasks.json")
	fired := make(chan struct{}, 4)
	w, err := New([]string{target}, func() { fired <- struct{}{} })
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx, nil)

	time.Sleep(20 * time.Millisecond)
	if err := os.WriteFile(target, []byte("[]"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("expected callback after write")
	}
}

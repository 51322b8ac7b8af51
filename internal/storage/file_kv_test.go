package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileKVGetSet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "store")
	kv, err := NewFileKV(dir)
	if err != nil {
		t.Fatalf("new file kv: %v", err)
	}

	if _, err := kv.Get(t.Context(), "tasks"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}

	if err := kv.Set(t.Context(), "tasks", []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(t.Context(), "tasks", []byte(`["x"]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := kv.Get(t.Context(), "tasks")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `["x"]` {
		t.Fatalf("unexpected value: %s", got)
	}
	if _, err := os.Stat(kv.Path("tasks") + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected tmp file to be renamed away, stat err: %v", err)
	}
}

func TestNewFileKVRejectsEmptyDir(t *testing.T) {
	if _, err := NewFileKV("  "); err == nil {
		t.Fatal("expected error for empty dir")
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open("redis", t.TempDir())
	if !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got: %v", err)
	}
}

func TestOpenDefaultsToFileBackend(t *testing.T) {
	kv, err := Open("", t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, ok := kv.(*FileKV); !ok {
		t.Fatalf("expected *FileKV, got %T", kv)
	}
}

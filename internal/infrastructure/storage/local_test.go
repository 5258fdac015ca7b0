package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalStore_SaveTranscript(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path, err := store.SaveTranscript(context.Background(), "meeting.txt", []byte("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join(dir, "meeting.txt") {
		t.Errorf("unexpected path %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved file: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("expected content hello, got %q", data)
	}
}

func TestLocalStore_SaveTranscript_OverwritesDuplicateFilename(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()
	if _, err := store.SaveTranscript(ctx, "meeting.txt", []byte("first")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path, err := store.SaveTranscript(ctx, "meeting.txt", []byte("second"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved file: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("expected later upload to win, got %q", data)
	}
}

func TestLocalStore_SaveTranscript_StripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path, err := store.SaveTranscript(context.Background(), "../escape.txt", []byte("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join(dir, "escape.txt") {
		t.Errorf("expected sanitized path inside upload dir, got %s", path)
	}
}

func TestNewLocalStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	if _, err := NewLocalStore(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("expected directory to exist: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory", dir)
	}
}

package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStartWatcher_RequiresRoots(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if _, _, err := StartWatcher(ctx, WatchConfig{}, nil); err == nil {
		t.Fatal("expected error without roots")
	}
}

func TestStartWatcher_InitialScan(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "existing.txt"), []byte("page\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "ignored.pdf"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, WatchConfig{
		Roots:       []string{root},
		InitialScan: true,
		Debounce:    50 * time.Millisecond,
	}, nil)
	if err != nil {
		t.Fatalf("start watcher: %v", err)
	}

	select {
	case path := <-events:
		if filepath.Base(path) != "existing.txt" {
			t.Errorf("unexpected initial-scan path %q", path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the initial scan")
	}
}

func TestStartWatcher_EmitsNewFiles(t *testing.T) {
	root := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{root},
		Debounce: 50 * time.Millisecond,
	}, nil)
	if err != nil {
		t.Fatalf("start watcher: %v", err)
	}

	path := filepath.Join(root, "dropped.txt")
	if err := os.WriteFile(path, []byte("statement page\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-events:
		if got != path {
			t.Errorf("event path = %q, want %q", got, path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a file event")
	}
}

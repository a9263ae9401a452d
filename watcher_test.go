package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfigWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("cell_width: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan struct{}, 1)
	w := newConfigWatcher(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()

	deadline := time.After(2 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case <-changed:
			cancel()
			if err := <-done; err != nil {
				t.Errorf("Watch: %v", err)
			}
			return
		case <-tick.C:
			os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644)
			os.WriteFile(path, []byte("cell_width: 6\n"), 0o644)
		case <-deadline:
			cancel()
			t.Fatal("no change reported")
		}
	}
}

func TestConfigWatcherMissingDirectory(t *testing.T) {
	w := newConfigWatcher(filepath.Join(t.TempDir(), "missing", "config.yaml"), func() {})
	if err := w.Watch(context.Background()); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

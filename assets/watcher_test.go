package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsAssetFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"hero.png", true},
		{"music/THEME.OGG", true},
		{"fonts/main.ttf", true},
		{"level.yaml", true},
		{"notes.txt", false},
		{"binary", false},
	}
	for _, tt := range tests {
		if got := isAssetFile(tt.path); got != tt.want {
			t.Errorf("isAssetFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestWatcherReportsAssetWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	// Non-asset files must not produce events.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "hero.png")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != target {
			t.Errorf("event path = %q, want %q", got, target)
		}
	case err := <-w.Errors:
		t.Fatal(err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watch event")
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
}

func TestWatcherBadDir(t *testing.T) {
	if _, err := NewWatcher("/nonexistent/assets/dir"); err == nil {
		t.Error("NewWatcher on missing dir: error = nil")
	}
}

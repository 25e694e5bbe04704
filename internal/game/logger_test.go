package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lampy.log")
	log, err := NewLogger(path, true)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	log.Debugw("firefly collected", "peer", 0, "points", 3)
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "firefly collected") || !strings.Contains(out, "DEBUG") {
		t.Errorf("log file contents:\n%s", out)
	}
}

func TestNewLoggerInfoLevelDropsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lampy.log")
	log, err := NewLogger(path, false)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	log.Debugw("hidden")
	log.Infow("match ready", "seed", 1)
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Error("debug line written at info level")
	}
}

func TestNewLoggerRequiresPath(t *testing.T) {
	if _, err := NewLogger("", false); err == nil {
		t.Fatal("expected an error for an empty path")
	}
}

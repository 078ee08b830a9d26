package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.log")
	logger, err := New(Config{Level: "debug", Format: "json", Output: path})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Debug("defined unit")
	logger.Info("converted")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"msg":"defined unit"`) || !strings.Contains(string(data), `"msg":"converted"`) {
		t.Errorf("log file = %q", data)
	}
}

func TestNewLevelFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.log")
	logger, err := New(Config{Level: "loud", Format: "json", Output: path})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown")
	_ = logger.Sync()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") || !strings.Contains(string(data), "shown") {
		t.Errorf("log file = %q, want only the warning", data)
	}
}

func TestNewBadOutput(t *testing.T) {
	if _, err := New(Config{Output: filepath.Join(t.TempDir(), "missing", "calc.log")}); err == nil {
		t.Errorf("New with an unwritable output succeeded")
	}
}

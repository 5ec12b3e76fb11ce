package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "polaroid.log")

	logger, err := New(path, true)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Debug("hung photo")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "hung photo") {
		t.Errorf("debug entry missing from log: %s", data)
	}
}

func TestNewInfoLevelDropsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polaroid.log")

	logger, err := New(path, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Debug("quiet")
	logger.Info("loud")
	_ = logger.Sync()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "quiet") {
		t.Error("debug entry written at info level")
	}
	if !strings.Contains(string(data), "loud") {
		t.Error("info entry missing")
	}
}

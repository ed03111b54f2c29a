package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)
	logger.Debug("scan complete", "records", 3)

	if !strings.Contains(buf.String(), "scan complete") {
		t.Errorf("Expected debug message in output, got %q", buf.String())
	}
}

func TestNew_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)
	logger.Debug("hidden")
	logger.Info("hidden too")

	if buf.Len() != 0 {
		t.Errorf("Expected no output below warn level, got %q", buf.String())
	}

	logger.Warn("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Error("Warnings should be written")
	}
}

func TestNop(t *testing.T) {
	// Must not panic
	Nop().Error("dropped")
}

func TestOpenFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	logger, closer, err := OpenFile(dir, true)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	logger.Debug("to file")
	closer.Close()

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	if err != nil {
		t.Fatalf("Log file missing: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("Expected message in log file, got %q", data)
	}
}

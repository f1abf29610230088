package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogDisabledWritesNothing(t *testing.T) {
	Disable()
	var buf bytes.Buffer
	SetOutput(&buf)
	Disable()

	Log("store", "reset %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("disabled logger wrote %q", buf.String())
	}
}

func TestLogFormatsCategory(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(Disable)

	Log("router", "dispatch %#x", 0x90)
	line := buf.String()
	if !strings.Contains(line, "router") || !strings.Contains(line, "dispatch 0x90") {
		t.Fatalf("log line = %q, want category and message", line)
	}
}

func TestEnableAtCreatesFile(t *testing.T) {
	Disable()
	path := filepath.Join(t.TempDir(), "nested", "debug.log")
	if err := EnableAt(path); err != nil {
		t.Fatalf("EnableAt returned error: %v", err)
	}
	t.Cleanup(Disable)

	Log("undo", "trim to %d", 2)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "trim to 2") {
		t.Fatalf("log file = %q, want trim line", data)
	}
}

func TestLogEvery(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(Disable)

	for i := 0; i < 6; i++ {
		LogEvery(3, "every", "tick")
	}
	if got := strings.Count(buf.String(), "tick"); got != 2 {
		t.Fatalf("LogEvery wrote %d lines, want 2", got)
	}
}

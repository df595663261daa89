package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logs", "test.log")
	Configure(path)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Configure("")
	})
	return path
}

func TestErrorAppendsToConfiguredFile(t *testing.T) {
	path := useTempLog(t)
	Error(errors.New("boom"))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "boom") {
		t.Fatalf("expected error text in log, got %q", data)
	}
}

func TestTraceIsGated(t *testing.T) {
	path := useTempLog(t)
	Trace("menu.cursor", map[string]interface{}{"cursor": 1})
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log writes while tracing is disabled")
	}
	SetTraceEnabled(true)
	Trace("menu.cursor", map[string]interface{}{"cursor": 2})
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"event":"menu.cursor"`) {
		t.Fatalf("expected JSON trace entry, got %q", data)
	}
}

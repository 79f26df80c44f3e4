package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", LogFileName)
	l, err := New(Options{Level: "debug", Path: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Debug("products loaded", zap.String("category", "cement"))
	_ = l.Sync()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := strings.TrimSpace(strings.Split(string(b), "\n")[0])
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("expected JSON log line; got %q: %v", line, err)
	}
	if entry["severity"] != "DEBUG" || entry["message"] != "products loaded" || entry["category"] != "cement" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	t.Setenv("STOREFRONT_LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), LogFileName)
	l, err := New(Options{Level: "chatty", Path: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l.Core().Enabled(zap.DebugLevel) {
		t.Fatalf("expected debug disabled at default level")
	}
	if !l.Core().Enabled(zap.InfoLevel) {
		t.Fatalf("expected info enabled at default level")
	}
	if OrNop(nil) == nil {
		t.Fatalf("expected nop logger")
	}
}

func TestNew_WriterWinsOverPath(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), LogFileName)
	l, err := New(Options{Level: "warn", Path: path, Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Info("dropped")
	l.Warn("kept")
	if strings.Contains(buf.String(), "dropped") || !strings.Contains(buf.String(), `"message":"kept"`) {
		t.Fatalf("unexpected output: %q", buf.String())
	}
	if _, err := os.Stat(path); err == nil {
		t.Fatalf("expected no log file when a writer is given")
	}
}

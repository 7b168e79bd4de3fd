package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	logger, err := New(&Config{
		Level:       LevelDebug,
		LogDir:      logDir,
		MaxLogFiles: 5,
		MaxLogAge:   24 * time.Hour,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer logger.Close()

	logPath := logger.LogPath()
	if !strings.HasPrefix(filepath.Base(logPath), "catsays_") {
		t.Errorf("LogPath() = %q, want catsays_ prefix", logPath)
	}
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("Log file was not created")
	}

	logger.Info("hello", "key", "value")
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "hello") || !strings.Contains(string(data), "key=value") {
		t.Errorf("log file missing record:\n%s", data)
	}
}

func TestNewNoop(t *testing.T) {
	logger := NewNoop()
	logger.Info("discarded")
	if logger.LogPath() != "" {
		t.Error("noop logger should have no log path")
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, &Config{Level: LevelWarn})

	logger.Debug("debug-msg")
	logger.Info("info-msg")
	logger.Warn("warn-msg")
	logger.Error("error-msg")

	out := buf.String()
	if strings.Contains(out, "debug-msg") || strings.Contains(out, "info-msg") {
		t.Errorf("messages below warn should be filtered:\n%s", out)
	}
	if !strings.Contains(out, "warn-msg") || !strings.Contains(out, "error-msg") {
		t.Errorf("warn and error should be logged:\n%s", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, &Config{Level: LevelInfo, JSONFormat: true})

	logger.Info("fetched", "url", "https://cataas.com/cat/1")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if record["msg"] != "fetched" || record["url"] != "https://cataas.com/cat/1" {
		t.Errorf("unexpected record: %v", record)
	}
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, nil)

	ctx := WithSessionID(context.Background(), "session-abc")
	ctx = WithRequestID(ctx, 7)
	logger.WithContext(ctx).Info("tagged")

	out := buf.String()
	if !strings.Contains(out, "session_id=session-abc") {
		t.Errorf("missing session id:\n%s", out)
	}
	if !strings.Contains(out, "request_id=7") {
		t.Errorf("missing request id:\n%s", out)
	}
	if SessionID(ctx) != "session-abc" {
		t.Errorf("SessionID() = %q", SessionID(ctx))
	}
}

func TestNewSessionID(t *testing.T) {
	a, b := NewSessionID(), NewSessionID()
	if a == "" || a == b {
		t.Errorf("session ids should be unique and non-empty: %q %q", a, b)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCleanup(t *testing.T) {
	logDir := t.TempDir()

	old := filepath.Join(logDir, "catsays_20000101_000000.log")
	if err := os.WriteFile(old, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	past := time.Now().Add(-30 * 24 * time.Hour)
	if err := os.Chtimes(old, past, past); err != nil {
		t.Fatal(err)
	}
	unrelated := filepath.Join(logDir, "notes.txt")
	if err := os.WriteFile(unrelated, []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}

	logger, err := New(&Config{Level: LevelInfo, LogDir: logDir, MaxLogFiles: 10, MaxLogAge: 24 * time.Hour})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer logger.Close()

	if err := logger.Cleanup(); err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}
	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Error("old log file should be removed")
	}
	if _, err := os.Stat(unrelated); err != nil {
		t.Error("unrelated files must be kept")
	}
	if _, err := os.Stat(logger.LogPath()); err != nil {
		t.Error("current log file must be kept")
	}
}

func TestGlobal(t *testing.T) {
	if Global() == nil {
		t.Fatal("Global() should never be nil")
	}

	var buf bytes.Buffer
	SetGlobal(NewWithWriter(&buf, nil))
	defer SetGlobal(nil)

	Info("through global", "n", 1)
	With("component", "test").Warn("scoped")

	out := buf.String()
	if !strings.Contains(out, "through global") || !strings.Contains(out, "component=test") {
		t.Errorf("global output missing records:\n%s", out)
	}
}

func TestInitAndCloseGlobal(t *testing.T) {
	ctx := WithSessionID(context.Background(), "s-1")
	if err := InitGlobal(ctx, &Config{Level: LevelInfo, LogDir: t.TempDir()}); err != nil {
		t.Fatalf("InitGlobal() error = %v", err)
	}

	path := Global().LogPath()
	Info("started")

	if err := CloseGlobal(); err != nil {
		t.Fatalf("CloseGlobal() error = %v", err)
	}
	if Global().LogPath() != "" {
		t.Error("CloseGlobal should restore the noop logger")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "session_id=s-1") {
		t.Errorf("global records should carry the session id:\n%s", data)
	}
	if err := CloseGlobal(); err != nil {
		t.Errorf("second CloseGlobal() error = %v", err)
	}
}

func TestLevelString(t *testing.T) {
	if LevelDebug.String() != "DEBUG" || LevelError.String() != "ERROR" || Level(42).String() != "UNKNOWN" {
		t.Error("unexpected level strings")
	}
}

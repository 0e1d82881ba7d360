package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected default level info, got %s", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected default format console, got %s", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected default output stdout, got %s", cfg.Output)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{Level: "verbose", Format: "json"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}
	cfg = Config{Level: "debug", Format: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}
	cfg = Config{Level: "debug", Format: "json"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := FromZerolog(zerolog.New(&buf), "test")

	l.WithComponent("http").Info("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry[FieldComponent] != "http" {
		t.Errorf("expected component=http, got %v", entry[FieldComponent])
	}
	if entry["message"] != "hello" {
		t.Errorf("expected message=hello, got %v", entry["message"])
	}
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := FromZerolog(zerolog.New(&buf), "test")

	l.Info("request", Fields("method", "GET", "status", 200))

	out := buf.String()
	if !strings.Contains(out, `"method":"GET"`) {
		t.Errorf("expected method field, got %s", out)
	}
	if !strings.Contains(out, `"status":200`) {
		t.Errorf("expected status field, got %s", out)
	}
}

func TestFields_OddArgs(t *testing.T) {
	m := Fields("a", 1, "dangling")
	if len(m) != 1 {
		t.Errorf("expected 1 entry, got %d", len(m))
	}
}

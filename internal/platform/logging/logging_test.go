package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewWithWriterJSON(t *testing.T) {
	var out bytes.Buffer
	logger, err := NewWithWriter(Config{Level: "info", Format: "json"}, &out)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	logger.Info("stream opened", "method", "/apps.v0.ChannelService/Receive")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(out.Bytes()), &entry); err != nil {
		t.Fatalf("decode entry: %v", err)
	}
	if entry["msg"] != "stream opened" {
		t.Fatalf("msg = %v", entry["msg"])
	}
	if entry["method"] != "/apps.v0.ChannelService/Receive" {
		t.Fatalf("method = %v", entry["method"])
	}
}

func TestNewWithWriterFiltersByLevel(t *testing.T) {
	var out bytes.Buffer
	logger, err := NewWithWriter(Config{Level: "error", Format: "json"}, &out)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	logger.Info("dropped")
	logger.Error("kept")

	if strings.Contains(out.String(), "dropped") {
		t.Fatalf("info entry should be filtered: %s", out.String())
	}
	if !strings.Contains(out.String(), "kept") {
		t.Fatalf("expected error entry: %s", out.String())
	}
}

func TestNewWithWriterText(t *testing.T) {
	var out bytes.Buffer
	logger, err := NewWithWriter(Config{Level: "debug", Format: "text"}, &out)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	logger.Debug("rpc finished", "code", "OK")

	if !strings.Contains(out.String(), "rpc finished") {
		t.Fatalf("expected text output, got %q", out.String())
	}
}

func TestNewWithWriterRejectsUnknownFormat(t *testing.T) {
	if _, err := NewWithWriter(Config{Format: "xml"}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected format error")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestLoadConfigReadsEnv(t *testing.T) {
	t.Setenv("CAPBRIDGE_LOG_LEVEL", "debug")
	t.Setenv("CAPBRIDGE_LOG_FORMAT", "json")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Level != "debug" || cfg.Format != "json" {
		t.Fatalf("config = %+v", cfg)
	}
}

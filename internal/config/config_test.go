package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Backend != BackendSQLite || cfg.Slot != DefaultSlot || cfg.LogLevel != "info" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestSaveThenLoadConfig(t *testing.T) {
	dir := t.TempDir()
	want := Default()
	want.Backend = BackendFile
	want.FileDir = filepath.Join(dir, "snaps")
	want.Slot = "work"
	want.DragThreshold = 2

	if err := SaveConfig(dir, want); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	got, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if *got != *want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"backend": "file"}`)

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Backend != BackendFile {
		t.Errorf("backend = %q", cfg.Backend)
	}
	if cfg.Slot != DefaultSlot || cfg.LogFormat != "text" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid json", content: `{`},
		{name: "unknown backend", content: `{"backend": "postgres"}`},
		{name: "redis without address", content: `{"backend": "redis"}`},
		{name: "empty slot", content: `{"slot": ""}`},
		{name: "negative threshold", content: `{"drag_threshold": -1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)
			if _, err := LoadConfig(dir); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, ".kanban"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".kanban", "config.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

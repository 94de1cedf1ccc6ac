package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

// DefaultSlot is the snapshot slot used when none is configured.
const DefaultSlot = "kanban-board"

// Config represents the flat kanban configuration
type Config struct {
	Version       string `json:"version"`
	Backend       string `json:"backend"`              // "sqlite", "file" or "redis"
	DBPath        string `json:"db_path,omitempty"`    // sqlite database file
	FileDir       string `json:"file_dir,omitempty"`   // directory for file snapshots
	RedisAddr     string `json:"redis_addr,omitempty"` // host:port
	Slot          string `json:"slot"`
	LogLevel      string `json:"log_level"`
	LogFormat     string `json:"log_format"` // "text" or "json"
	LogFile       string `json:"log_file,omitempty"`
	DragThreshold int    `json:"drag_threshold"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Version:       "1",
		Backend:       BackendSQLite,
		Slot:          DefaultSlot,
		LogLevel:      "info",
		LogFormat:     "text",
		DragThreshold: 0,
	}
}

// LoadConfig reads .kanban/config.json from the specified directory.
// A missing file yields Default(); any other read or parse failure is an error.
// Fields absent from the file keep their default values.
func LoadConfig(dir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(dir, ".kanban", "config.json")
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	kanbanDir := filepath.Join(dir, ".kanban")
	if err := os.MkdirAll(kanbanDir, 0755); err != nil {
		return fmt.Errorf("failed to create .kanban dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(kanbanDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks backend-specific requirements.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSQLite, BackendFile:
	case BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("backend %q requires redis_addr", c.Backend)
		}
	default:
		return fmt.Errorf("unknown backend %q (use sqlite, file or redis)", c.Backend)
	}
	if c.Slot == "" {
		return fmt.Errorf("slot cannot be empty")
	}
	if c.DragThreshold < 0 {
		return fmt.Errorf("drag_threshold cannot be negative")
	}
	return nil
}

// DefaultLogPath returns ~/.kanban/kanban.log, used while the interactive
// board owns the terminal.
func DefaultLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".kanban", "kanban.log"), nil
}

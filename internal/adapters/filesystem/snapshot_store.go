// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/kanban/internal/ports/secondary"
)

// SnapshotStore implements secondary.SlotStore with one JSON file per slot.
type SnapshotStore struct {
	dir string
}

// NewSnapshotStore creates a file-backed store rooted at dir.
// If dir is empty, defaults to ~/.kanban/snapshots.
func NewSnapshotStore(dir string) (*SnapshotStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".kanban", "snapshots")
	}
	return &SnapshotStore{dir: dir}, nil
}

// Dir returns the directory holding the snapshot files.
func (s *SnapshotStore) Dir() string { return s.dir }

// Load reads the file for slot.
func (s *SnapshotStore) Load(ctx context.Context, slot string) ([]byte, error) {
	path, err := s.path(slot)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, secondary.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return data, nil
}

// Save writes the file for slot. The payload is written to a temporary file
// and renamed into place so a failed write never truncates the previous one.
func (s *SnapshotStore) Save(ctx context.Context, slot string, payload []byte) error {
	path, err := s.path(slot)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+slot+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// ListSlots returns the slot names of the snapshot files in the directory.
// A directory that does not exist yet holds no slots.
func (s *SnapshotStore) ListSlots(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	var slots []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".json") {
			continue
		}
		slots = append(slots, strings.TrimSuffix(name, ".json"))
	}
	return slots, nil
}

// Delete removes the file for slot.
func (s *SnapshotStore) Delete(ctx context.Context, slot string) error {
	path, err := s.path(slot)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

func (s *SnapshotStore) path(slot string) (string, error) {
	if slot == "" || strings.ContainsAny(slot, `/\`) || strings.HasPrefix(slot, ".") {
		return "", fmt.Errorf("invalid snapshot slot %q", slot)
	}
	return filepath.Join(s.dir, slot+".json"), nil
}

var _ secondary.SlotStore = (*SnapshotStore)(nil)

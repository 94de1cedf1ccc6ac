// Package persistence contains the board snapshot codec and the repository
// that reads and writes it through a secondary.SnapshotStore.
package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/example/kanban/internal/core/board"
	"github.com/example/kanban/internal/models"
	"github.com/example/kanban/internal/ports/secondary"
)

// ErrMalformedSnapshot wraps every decode and validation failure.
var ErrMalformedSnapshot = errors.New("malformed board snapshot")

// BoardRepository stores the whole board as one snapshot in a named slot.
type BoardRepository struct {
	store secondary.SnapshotStore
	slot  string
}

// NewBoardRepository creates a repository over store using slot.
func NewBoardRepository(store secondary.SnapshotStore, slot string) *BoardRepository {
	return &BoardRepository{store: store, slot: slot}
}

// Slot returns the slot name the repository reads and writes.
func (r *BoardRepository) Slot() string { return r.slot }

// Load reads the board. It always returns a usable board: an empty slot
// yields an empty board and a nil error; a read failure or malformed payload
// yields an empty board and the error. The stored payload is never modified.
func (r *BoardRepository) Load(ctx context.Context) (models.Board, error) {
	data, err := r.store.Load(ctx, r.slot)
	if errors.Is(err, secondary.ErrSnapshotNotFound) {
		return models.NewBoard(), nil
	}
	if err != nil {
		return models.NewBoard(), fmt.Errorf("failed to read snapshot %q: %w", r.slot, err)
	}

	b, err := Decode(data)
	if err != nil {
		return models.NewBoard(), err
	}
	return b, nil
}

// Save writes the full board snapshot.
func (r *BoardRepository) Save(ctx context.Context, b models.Board) error {
	data, err := Encode(b)
	if err != nil {
		return err
	}
	if err := r.store.Save(ctx, r.slot, data); err != nil {
		return fmt.Errorf("failed to write snapshot %q: %w", r.slot, err)
	}
	return nil
}

// Encode renders the snapshot JSON. Empty lanes encode as [] rather than null.
func Encode(b models.Board) ([]byte, error) {
	data, err := json.Marshal(b.Clone())
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses snapshot JSON. All three lane keys must be present as arrays
// and the result must satisfy the board invariants.
func Decode(data []byte) (models.Board, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.Board{}, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}

	b := models.NewBoard()
	for _, lane := range models.Lanes {
		msg, ok := raw[string(lane)]
		if !ok {
			return models.Board{}, fmt.Errorf("%w: missing lane %q", ErrMalformedSnapshot, lane)
		}
		if trimmed := bytes.TrimSpace(msg); len(trimmed) == 0 || trimmed[0] != '[' {
			return models.Board{}, fmt.Errorf("%w: lane %q is not an array", ErrMalformedSnapshot, lane)
		}

		var tasks []models.Task
		if err := json.Unmarshal(msg, &tasks); err != nil {
			return models.Board{}, fmt.Errorf("%w: lane %q: %v", ErrMalformedSnapshot, lane, err)
		}
		b = b.WithLane(lane, append([]models.Task{}, tasks...))
	}

	if err := board.Validate(b); err != nil {
		return models.Board{}, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	return b, nil
}

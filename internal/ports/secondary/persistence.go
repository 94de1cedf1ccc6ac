// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"errors"

	"github.com/example/kanban/internal/models"
)

// ErrSnapshotNotFound is returned by SnapshotStore.Load when the slot is empty.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore defines the secondary port for durable board snapshots.
// A store holds opaque payloads in named slots; it knows nothing about
// the board's shape.
type SnapshotStore interface {
	// Load returns the payload stored in slot, or ErrSnapshotNotFound.
	Load(ctx context.Context, slot string) ([]byte, error)

	// Save replaces the payload stored in slot.
	Save(ctx context.Context, slot string, payload []byte) error
}

// SlotStore is a SnapshotStore that can also enumerate and remove slots.
type SlotStore interface {
	SnapshotStore

	// ListSlots returns the names of all stored slots, sorted.
	ListSlots(ctx context.Context) ([]string, error)

	// Delete removes slot. Deleting a missing slot is not an error.
	Delete(ctx context.Context, slot string) error
}

// BoardRepository defines the secondary port for loading and saving the whole board.
type BoardRepository interface {
	// Load returns the persisted board. The board is always usable: on a
	// non-nil error it is empty and the error explains why.
	Load(ctx context.Context) (models.Board, error)

	// Save writes a full snapshot of the board.
	Save(ctx context.Context, b models.Board) error
}

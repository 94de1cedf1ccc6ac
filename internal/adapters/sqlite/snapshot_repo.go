// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/kanban/internal/ports/secondary"
)

// SnapshotRepository implements secondary.SlotStore with SQLite.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SQLite snapshot repository.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Load retrieves the payload stored in slot.
func (r *SnapshotRepository) Load(ctx context.Context, slot string) ([]byte, error) {
	var payload string
	err := r.db.QueryRowContext(ctx,
		"SELECT payload FROM snapshots WHERE slot = ?",
		slot,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, secondary.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	return []byte(payload), nil
}

// Save upserts the payload for slot.
func (r *SnapshotRepository) Save(ctx context.Context, slot string, payload []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO snapshots (slot, payload) VALUES (?, ?)
		 ON CONFLICT(slot) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP`,
		slot, string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// Delete removes the slot. Deleting a missing slot is not an error.
func (r *SnapshotRepository) Delete(ctx context.Context, slot string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM snapshots WHERE slot = ?", slot)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

// ListSlots returns all slot names, sorted.
func (r *SnapshotRepository) ListSlots(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT slot FROM snapshots ORDER BY slot")
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var slots []string
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		slots = append(slots, slot)
	}

	return slots, rows.Err()
}

var _ secondary.SlotStore = (*SnapshotRepository)(nil)

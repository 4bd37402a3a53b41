package ports

import (
	"context"

	"parcellocker/internal/core/domain/model/cell"
)

// CellStateStore owns per-cell state keyed by (lockerID, cellID).
//
// Callers are responsible for verifying cell membership against the locker's
// cell set (via LockerRegistry) before touching the store; the store itself
// accepts any key. This keeps the "a cell outside the set never materializes"
// invariant at the resolution boundary where the set is known.
type CellStateStore interface {
	// GetOrInit returns the cell's current state, lazily creating the record
	// with (closed, unset pin) on first touch. Initialization is atomic: two
	// racing first-touches both observe the same default state, never a
	// partially written record.
	GetOrInit(ctx context.Context, lockerID int64, cellID string) (*cell.Cell, error)

	// SetStatus unconditionally overwrites the cell's status field.
	SetStatus(ctx context.Context, lockerID int64, cellID string, status cell.Status) error

	// SetPin unconditionally overwrites the cell's pin field.
	SetPin(ctx context.Context, lockerID int64, cellID string, pin cell.Pin) error
}

package services

import (
	"context"

	"parcellocker/internal/core/domain/model/cell"
	"parcellocker/internal/core/domain/model/locker"
)

// CellReader is the read access PinResolver needs from cell state storage.
// Reading through GetOrInit means the scan also lazily initializes cells
// that have never been touched, keeping the "absent record equals freshly
// initialized cell" equivalence intact.
type CellReader interface {
	GetOrInit(ctx context.Context, lockerID int64, cellID string) (*cell.Cell, error)
}

// PinResolver is a domain service that builds the reverse pin-to-cell
// mapping for one locker. The mapping serves two purposes: uniqueness checks
// before a PIN assignment, and resolving an entered PIN to the cell that
// should open.
//
// The mapping is rebuilt on every call with an O(|cells|) scan. Locker cell
// counts are small (tens), so the full scan is acceptable; a future O(1)
// index can replace the implementation without changing the contract.
type PinResolver struct{}

// NewPinResolver creates a new PinResolver instance.
func NewPinResolver() PinResolver {
	return PinResolver{}
}

// AllPins reads the current PIN of every cell in the locker's set except
// excludeCellID (pass "" to scan the whole set) and returns the reverse
// pin-to-cell mapping. Sentinel pins are omitted: they never participate in
// matching or uniqueness.
//
// Under the per-locker PIN-uniqueness invariant the mapping is well defined;
// each usable PIN maps to exactly one cell.
func (r PinResolver) AllPins(
	ctx context.Context,
	reader CellReader,
	lkr *locker.Locker,
	excludeCellID string,
) (map[cell.Pin]string, error) {
	if err := lkr.Validate(); err != nil {
		return nil, err
	}

	pins := make(map[cell.Pin]string)
	for _, cellID := range lkr.Cells() {
		if cellID == excludeCellID {
			continue
		}

		c, err := reader.GetOrInit(ctx, lkr.ID(), cellID)
		if err != nil {
			return nil, err
		}

		if !c.HasUsablePin() {
			continue
		}
		pins[c.Pin()] = cellID
	}

	return pins, nil
}

package cell

import (
	"errors"
)

// ErrCellIsNotConstructed is returned when a Cell instance was not created
// through NewCell or RestoreCell.
var ErrCellIsNotConstructed = errors.New("Cell must be created via NewCell or RestoreCell constructor")

// Cell represents the state of one lockable compartment, keyed by
// (lockerID, cellID).
//
// Cell follows these invariants:
//   - Status is exactly Closed or Open
//   - Pin is either a valid six-digit value or one of the two sentinels
//   - A freshly initialized cell is (Closed, UnsetPin)
//   - Closing a cell always masks its pin
type Cell struct {
	lockerID int64
	id       string
	status   Status
	pin      Pin

	isConstructed bool
}

// NewCell creates the default state record for a first-touched cell:
// status Closed, pin UnsetPin.
func NewCell(lockerID int64, cellID string) (*Cell, error) {
	return RestoreCell(lockerID, cellID, Closed, UnsetPin)
}

// RestoreCell reconstructs a Cell from persisted state.
// The status must be a valid member of the state machine; the pin must be
// either a usable six-digit value or a sentinel.
func RestoreCell(lockerID int64, cellID string, status Status, pin Pin) (*Cell, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if !pin.IsSentinel() {
		if err := pin.Validate(); err != nil {
			return nil, err
		}
	}

	return &Cell{
		lockerID:      lockerID,
		id:            cellID,
		status:        status,
		pin:           pin,
		isConstructed: true,
	}, nil
}

// Validate ensures the Cell instance was properly constructed.
func (c *Cell) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCellIsNotConstructed
	}
	return nil
}

// LockerID returns the identifier of the locker this cell belongs to.
func (c *Cell) LockerID() int64 {
	return c.lockerID
}

// ID returns the cell's identifier, unique within its locker.
func (c *Cell) ID() string {
	return c.id
}

// Status returns the cell's current door status.
func (c *Cell) Status() Status {
	return c.status
}

// Pin returns the cell's current PIN, which may be a sentinel.
func (c *Cell) Pin() Pin {
	return c.pin
}

// HasUsablePin reports whether the cell currently has a matchable PIN.
func (c *Cell) HasUsablePin() bool {
	return !c.pin.IsSentinel()
}

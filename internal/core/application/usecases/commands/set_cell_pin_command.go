package commands

import (
	"errors"

	"parcellocker/internal/core/domain/model/cell"
	"parcellocker/internal/pkg/errs"
	"parcellocker/internal/pkg/guard"
)

var ErrSetCellPinCommandIsNotConstructed = errors.New(
	"SetCellPinCommand must be created via NewSetCellPinCommand constructor",
)

// SetCellPinCommand represents a request to assign a new PIN to a cell.
// Assignment never changes the cell's door status.
type SetCellPinCommand struct { //nolint:recvcheck //using for validation
	lockerID int64
	cellID   string
	pin      cell.Pin

	guard guard.ConstructorGuard
}

// NewSetCellPinCommand creates a command to assign a PIN to a cell.
// The PIN format is validated up front; sentinels and anything else that is
// not six ASCII digits fail with an InvalidPinError.
func NewSetCellPinCommand(lockerID int64, cellID, rawPin string) (SetCellPinCommand, error) {
	cmd := SetCellPinCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLockerID(lockerID),
		cmd.setCellID(cellID),
		cmd.setPin(rawPin),
	); err != nil {
		return SetCellPinCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCellPinCommand) Validate() error {
	return c.guard.Validate(ErrSetCellPinCommandIsNotConstructed)
}

// LockerID returns the identifier of the locker containing the cell.
func (c SetCellPinCommand) LockerID() int64 {
	return c.lockerID
}

// CellID returns the identifier of the cell the PIN is assigned to.
func (c SetCellPinCommand) CellID() string {
	return c.cellID
}

// Pin returns the validated six-digit PIN to assign.
func (c SetCellPinCommand) Pin() cell.Pin {
	return c.pin
}

func (c *SetCellPinCommand) setLockerID(lockerID int64) error {
	if lockerID <= 0 {
		return errs.NewValueIsInvalidError("lockerId")
	}

	c.lockerID = lockerID
	return nil
}

func (c *SetCellPinCommand) setCellID(cellID string) error {
	if cellID == "" {
		return errs.NewValueIsRequiredError("cellId")
	}

	c.cellID = cellID
	return nil
}

func (c *SetCellPinCommand) setPin(rawPin string) error {
	pin, err := cell.NewPin(rawPin)
	if err != nil {
		return err
	}

	c.pin = pin
	return nil
}

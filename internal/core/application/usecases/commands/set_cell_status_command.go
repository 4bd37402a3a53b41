package commands

import (
	"errors"

	"parcellocker/internal/core/domain/model/cell"
	"parcellocker/internal/pkg/errs"
	"parcellocker/internal/pkg/guard"
)

var ErrSetCellStatusCommandIsNotConstructed = errors.New(
	"SetCellStatusCommand must be created via NewSetCellStatusCommand constructor",
)

// SetCellStatusCommand represents an explicit open or close request for a
// single cell. Closing a cell revokes its PIN as a side effect.
type SetCellStatusCommand struct { //nolint:recvcheck //using for validation
	lockerID int64
	cellID   string
	status   cell.Status

	guard guard.ConstructorGuard
}

// NewSetCellStatusCommand creates a command to set a cell's door status.
// The status must be a member of the state machine (closed or open).
func NewSetCellStatusCommand(lockerID int64, cellID string, status cell.Status) (SetCellStatusCommand, error) {
	cmd := SetCellStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLockerID(lockerID),
		cmd.setCellID(cellID),
		cmd.setStatus(status),
	); err != nil {
		return SetCellStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCellStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetCellStatusCommandIsNotConstructed)
}

// LockerID returns the identifier of the locker containing the cell.
func (c SetCellStatusCommand) LockerID() int64 {
	return c.lockerID
}

// CellID returns the identifier of the cell to open or close.
func (c SetCellStatusCommand) CellID() string {
	return c.cellID
}

// Status returns the requested door status.
func (c SetCellStatusCommand) Status() cell.Status {
	return c.status
}

func (c *SetCellStatusCommand) setLockerID(lockerID int64) error {
	if lockerID <= 0 {
		return errs.NewValueIsInvalidError("lockerId")
	}

	c.lockerID = lockerID
	return nil
}

func (c *SetCellStatusCommand) setCellID(cellID string) error {
	if cellID == "" {
		return errs.NewValueIsRequiredError("cellId")
	}

	c.cellID = cellID
	return nil
}

func (c *SetCellStatusCommand) setStatus(status cell.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

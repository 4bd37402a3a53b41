package commands

import (
	"errors"

	"parcellocker/internal/core/domain/model/cell"
	"parcellocker/internal/pkg/errs"
	"parcellocker/internal/pkg/guard"
)

var ErrEnterPinCommandIsNotConstructed = errors.New(
	"EnterPinCommand must be created via NewEnterPinCommand constructor",
)

// EnterPinCommand represents a request to open whichever cell of a locker
// the entered PIN belongs to.
//
// Example:
//
//	cmd, err := NewEnterPinCommand(1234, "111111")
//	if err != nil {
//	    return err // malformed PIN or locker id
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrPinNoMatch) {
//	    // the PIN does not belong to any cell of this locker
//	}
type EnterPinCommand struct { //nolint:recvcheck //using for validation
	lockerID int64
	pin      cell.Pin

	guard guard.ConstructorGuard
}

// NewEnterPinCommand creates a command to resolve an entered PIN.
// The PIN format is validated up front: anything other than six ASCII digits
// fails with an InvalidPinError before any store access happens.
func NewEnterPinCommand(lockerID int64, rawPin string) (EnterPinCommand, error) {
	cmd := EnterPinCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLockerID(lockerID),
		cmd.setPin(rawPin),
	); err != nil {
		return EnterPinCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EnterPinCommand) Validate() error {
	return c.guard.Validate(ErrEnterPinCommandIsNotConstructed)
}

// LockerID returns the identifier of the locker the PIN was entered at.
func (c EnterPinCommand) LockerID() int64 {
	return c.lockerID
}

// Pin returns the validated six-digit PIN.
func (c EnterPinCommand) Pin() cell.Pin {
	return c.pin
}

func (c *EnterPinCommand) setLockerID(lockerID int64) error {
	if lockerID <= 0 {
		return errs.NewValueIsInvalidError("lockerId")
	}

	c.lockerID = lockerID
	return nil
}

func (c *EnterPinCommand) setPin(rawPin string) error {
	pin, err := cell.NewPin(rawPin)
	if err != nil {
		return err
	}

	c.pin = pin
	return nil
}

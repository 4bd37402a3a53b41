package commands

import (
	"context"

	"parcellocker/internal/core/domain/model/cell"
	"parcellocker/internal/core/domain/services"
	"parcellocker/internal/core/ports"
	"parcellocker/internal/pkg/errs"
)

// SetCellPinResult is returned on a successful PIN assignment.
type SetCellPinResult struct {
	// Status is the cell's door status, unchanged by the assignment.
	Status cell.Status

	// Pin is the newly assigned PIN.
	Pin cell.Pin
}

// SetCellPinCommandHandler assigns a PIN to a cell while enforcing
// per-locker PIN uniqueness. The uniqueness check and the write run inside
// the per-locker atomic scope; two concurrent assignments of the same PIN to
// different cells cannot both pass the check.
type SetCellPinCommandHandler struct {
	registry LockerResolver
	uow      LockerUoW
	resolver services.PinResolver
}

// NewSetCellPinCommandHandler creates a handler for PIN assignments.
func NewSetCellPinCommandHandler(registry LockerResolver, uow LockerUoW) SetCellPinCommandHandler {
	return SetCellPinCommandHandler{
		registry: registry,
		uow:      uow,
		resolver: services.NewPinResolver(),
	}
}

// Handle processes a PIN assignment.
// Resolves the locker, verifies cell membership, scans the other cells'
// pins excluding the target cell, and writes the PIN unless it is already
// assigned elsewhere in the locker (PinConflictError). The cell's door
// status is returned untouched.
func (h *SetCellPinCommandHandler) Handle(ctx context.Context, cmd SetCellPinCommand) (SetCellPinResult, error) {
	if err := cmd.Validate(); err != nil {
		return SetCellPinResult{}, err
	}

	lkr, err := h.registry.Resolve(ctx, cmd.LockerID())
	if err != nil {
		return SetCellPinResult{}, err
	}

	if !lkr.HasCell(cmd.CellID()) {
		return SetCellPinResult{}, errs.NewCellNotFoundError(lkr.ID(), cmd.CellID())
	}

	var result SetCellPinResult
	err = h.uow.Execute(ctx, lkr, func(store ports.CellStateStore) error {
		current, err := store.GetOrInit(ctx, lkr.ID(), cmd.CellID())
		if err != nil {
			return err
		}

		pins, err := h.resolver.AllPins(ctx, store, lkr, cmd.CellID())
		if err != nil {
			return err
		}

		if _, taken := pins[cmd.Pin()]; taken {
			return errs.NewPinConflictError(lkr.ID(), cmd.CellID())
		}

		if err := store.SetPin(ctx, lkr.ID(), cmd.CellID(), cmd.Pin()); err != nil {
			return err
		}

		result = SetCellPinResult{
			Status: current.Status(),
			Pin:    cmd.Pin(),
		}
		return nil
	})
	if err != nil {
		return SetCellPinResult{}, err
	}

	return result, nil
}

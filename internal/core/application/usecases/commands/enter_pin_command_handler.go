package commands

import (
	"context"

	"parcellocker/internal/core/domain/model/cell"
	"parcellocker/internal/core/domain/services"
	"parcellocker/internal/core/ports"
	"parcellocker/internal/pkg/errs"
)

// EnterPinResult is returned when an entered PIN resolves to a cell.
type EnterPinResult struct {
	// CellID identifies the cell the PIN belongs to.
	CellID string

	// Status is the cell's status after the operation: always open.
	Status cell.Status

	// Pin echoes the entered PIN. Unlike a close, a successful entry
	// leaves the stored PIN unchanged.
	Pin cell.Pin
}

// EnterPinCommandHandler resolves an entered PIN to the cell that should
// open. The scan-then-transition sequence runs inside the per-locker atomic
// scope, so a concurrent PIN reassignment cannot interleave with the match.
type EnterPinCommandHandler struct {
	registry LockerResolver
	uow      LockerUoW
	resolver services.PinResolver
}

// NewEnterPinCommandHandler creates a handler for PIN-entry operations.
func NewEnterPinCommandHandler(registry LockerResolver, uow LockerUoW) EnterPinCommandHandler {
	return EnterPinCommandHandler{
		registry: registry,
		uow:      uow,
		resolver: services.NewPinResolver(),
	}
}

// Handle processes a PIN entry.
// Resolves the locker, builds the pin-to-cell mapping over the whole cell
// set, and opens the matched cell. Fails with PinNoMatchError when the PIN
// is not present in the mapping. The matched cell's PIN is left unchanged.
func (h *EnterPinCommandHandler) Handle(ctx context.Context, cmd EnterPinCommand) (EnterPinResult, error) {
	if err := cmd.Validate(); err != nil {
		return EnterPinResult{}, err
	}

	lkr, err := h.registry.Resolve(ctx, cmd.LockerID())
	if err != nil {
		return EnterPinResult{}, err
	}

	var result EnterPinResult
	err = h.uow.Execute(ctx, lkr, func(store ports.CellStateStore) error {
		pins, err := h.resolver.AllPins(ctx, store, lkr, "")
		if err != nil {
			return err
		}

		cellID, ok := pins[cmd.Pin()]
		if !ok {
			return errs.NewPinNoMatchError(lkr.ID())
		}

		if err := store.SetStatus(ctx, lkr.ID(), cellID, cell.Open); err != nil {
			return err
		}

		result = EnterPinResult{
			CellID: cellID,
			Status: cell.Open,
			Pin:    cmd.Pin(),
		}
		return nil
	})
	if err != nil {
		return EnterPinResult{}, err
	}

	return result, nil
}

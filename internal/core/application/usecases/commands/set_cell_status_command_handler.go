package commands

import (
	"context"

	"parcellocker/internal/core/domain/model/cell"
	"parcellocker/internal/core/ports"
	"parcellocker/internal/pkg/errs"
)

// SetCellStatusCommandHandler applies explicit open and close requests.
//
// Transitions follow the cell state machine: closed to open on an open
// request, open to closed on a close request. Every close request
// overwrites the PIN with the masked sentinel, invalidating whatever PIN
// the cell had, including when the cell is already closed. The status
// field itself is only written when the requested status differs from the
// current one, so an open request for an already open cell writes nothing.
type SetCellStatusCommandHandler struct {
	registry LockerResolver
	uow      LockerUoW
}

// NewSetCellStatusCommandHandler creates a handler for open/close requests.
func NewSetCellStatusCommandHandler(registry LockerResolver, uow LockerUoW) SetCellStatusCommandHandler {
	return SetCellStatusCommandHandler{
		registry: registry,
		uow:      uow,
	}
}

// Handle processes an open or close request for one cell.
// Resolves the locker, verifies cell membership, lazily initializes the cell
// record, writes the status if it actually changes, and masks the PIN on
// every close request.
func (h *SetCellStatusCommandHandler) Handle(ctx context.Context, cmd SetCellStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	lkr, err := h.registry.Resolve(ctx, cmd.LockerID())
	if err != nil {
		return err
	}

	if !lkr.HasCell(cmd.CellID()) {
		return errs.NewCellNotFoundError(lkr.ID(), cmd.CellID())
	}

	return h.uow.Execute(ctx, lkr, func(store ports.CellStateStore) error {
		current, err := store.GetOrInit(ctx, lkr.ID(), cmd.CellID())
		if err != nil {
			return err
		}

		if current.Status() != cmd.Status() {
			if err := store.SetStatus(ctx, lkr.ID(), cmd.CellID(), cmd.Status()); err != nil {
				return err
			}
		}

		// Masking is not gated by the write-avoidance check: every close
		// request revokes whatever PIN the cell holds, even when the cell
		// is already closed.
		if cmd.Status() == cell.Closed {
			return store.SetPin(ctx, lkr.ID(), cmd.CellID(), cell.MaskedPin)
		}
		return nil
	})
}

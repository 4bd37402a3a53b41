package queries

import (
	"context"

	"parcellocker/internal/core/domain/model/cell"
	"parcellocker/internal/core/ports"
	"parcellocker/internal/pkg/errs"
)

// GetCellQueryResponse is the read model for one cell.
type GetCellQueryResponse struct {
	LockerID int64
	CellID   string
	Status   cell.Status
	Pin      cell.Pin
}

// GetCellQueryHandler retrieves the state of a single cell, lazily
// initializing its record on first touch. A cell without a stored record is
// indistinguishable from a freshly initialized closed cell with the unset
// PIN sentinel.
type GetCellQueryHandler struct {
	registry ports.LockerRegistry
	cells    ports.CellStateStore
}

// NewGetCellQueryHandler creates a handler for cell retrieval queries.
func NewGetCellQueryHandler(registry ports.LockerRegistry, cells ports.CellStateStore) GetCellQueryHandler {
	return GetCellQueryHandler{
		registry: registry,
		cells:    cells,
	}
}

// Handle executes the query.
// Resolves the locker first, then verifies cell membership before touching
// the cell store, so a cell outside the cell set never materializes even if
// stale state exists under its key.
func (h GetCellQueryHandler) Handle(ctx context.Context, query GetCellQuery) (GetCellQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCellQueryResponse{}, err
	}

	lkr, err := h.registry.Resolve(ctx, query.LockerID())
	if err != nil {
		return GetCellQueryResponse{}, err
	}

	if !lkr.HasCell(query.CellID()) {
		return GetCellQueryResponse{}, errs.NewCellNotFoundError(lkr.ID(), query.CellID())
	}

	c, err := h.cells.GetOrInit(ctx, lkr.ID(), query.CellID())
	if err != nil {
		return GetCellQueryResponse{}, err
	}

	return GetCellQueryResponse{
		LockerID: c.LockerID(),
		CellID:   c.ID(),
		Status:   c.Status(),
		Pin:      c.Pin(),
	}, nil
}

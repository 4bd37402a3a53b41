package queries

import (
	"context"

	"parcellocker/internal/core/ports"
)

// GetLockerQueryResponse is the read model for one locker.
type GetLockerQueryResponse struct {
	LockerID int64
	Cells    []string
}

// GetLockerQueryHandler resolves a locker through the registry and returns
// its identity and cell set. Side-effect free.
type GetLockerQueryHandler struct {
	registry ports.LockerRegistry
}

// NewGetLockerQueryHandler creates a handler for locker retrieval queries.
func NewGetLockerQueryHandler(registry ports.LockerRegistry) GetLockerQueryHandler {
	return GetLockerQueryHandler{registry: registry}
}

// Handle executes the query. Propagates LockerNotFoundError from resolution.
func (h GetLockerQueryHandler) Handle(ctx context.Context, query GetLockerQuery) (GetLockerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLockerQueryResponse{}, err
	}

	lkr, err := h.registry.Resolve(ctx, query.LockerID())
	if err != nil {
		return GetLockerQueryResponse{}, err
	}

	return GetLockerQueryResponse{
		LockerID: lkr.ID(),
		Cells:    lkr.Cells(),
	}, nil
}

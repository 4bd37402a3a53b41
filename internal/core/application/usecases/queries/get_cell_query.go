package queries

import (
	"errors"

	"parcellocker/internal/pkg/errs"
	"parcellocker/internal/pkg/guard"
)

var ErrGetCellQueryIsNotConstructed = errors.New(
	"GetCellQuery must be created via NewGetCellQuery constructor",
)

// GetCellQuery retrieves one cell's current status and PIN.
type GetCellQuery struct {
	lockerID int64
	cellID   string

	guard guard.ConstructorGuard
}

// NewGetCellQuery creates a query for the given (locker, cell) pair.
func NewGetCellQuery(lockerID int64, cellID string) (GetCellQuery, error) {
	if lockerID <= 0 {
		return GetCellQuery{}, errs.NewValueIsInvalidError("lockerId")
	}
	if cellID == "" {
		return GetCellQuery{}, errs.NewValueIsRequiredError("cellId")
	}

	return GetCellQuery{
		lockerID: lockerID,
		cellID:   cellID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCellQuery) Validate() error {
	return q.guard.Validate(ErrGetCellQueryIsNotConstructed)
}

// LockerID returns the requested locker identifier.
func (q GetCellQuery) LockerID() int64 {
	return q.lockerID
}

// CellID returns the requested cell identifier.
func (q GetCellQuery) CellID() string {
	return q.cellID
}

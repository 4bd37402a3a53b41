// Package queries contains read operations for retrieving locker and cell
// state. Implements the Query pattern for read operations in the CQRS
// architecture. Note that reading a cell is not entirely side-effect free:
// first touch lazily initializes the cell's state record.
package queries

import (
	"errors"

	"parcellocker/internal/pkg/errs"
	"parcellocker/internal/pkg/guard"
)

var ErrGetLockerQueryIsNotConstructed = errors.New(
	"GetLockerQuery must be created via NewGetLockerQuery constructor",
)

// GetLockerQuery retrieves a locker's identity and cell set.
type GetLockerQuery struct {
	lockerID int64

	guard guard.ConstructorGuard
}

// NewGetLockerQuery creates a query for the given locker identifier.
func NewGetLockerQuery(lockerID int64) (GetLockerQuery, error) {
	if lockerID <= 0 {
		return GetLockerQuery{}, errs.NewValueIsInvalidError("lockerId")
	}

	return GetLockerQuery{
		lockerID: lockerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLockerQuery) Validate() error {
	return q.guard.Validate(ErrGetLockerQueryIsNotConstructed)
}

// LockerID returns the requested locker identifier.
func (q GetLockerQuery) LockerID() int64 {
	return q.lockerID
}

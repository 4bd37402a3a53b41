package ports

import (
	"context"

	"parcellocker/internal/core/domain/model/locker"
)

// LockerUnitOfWork serializes check-then-act sequences over one locker's
// cell records. PIN-uniqueness enforcement and PIN-entry resolution both
// scan the locker's cells and then conditionally write; without an atomic
// scope, two concurrent assignments of the same PIN could both pass the
// uniqueness check.
type LockerUnitOfWork interface {
	// Execute runs fn atomically with respect to every cell record of the
	// given locker. Reads made through the supplied store are revalidated at
	// commit time; if a concurrent mutation invalidates them, the writes are
	// discarded and fn is re-run (optimistic transaction).
	//
	// fn may therefore be invoked more than once and must be side-effect
	// free apart from operations on the supplied store. An error returned
	// by fn aborts the transaction without retry and is propagated as-is.
	Execute(ctx context.Context, lkr *locker.Locker, fn func(store CellStateStore) error) error
}

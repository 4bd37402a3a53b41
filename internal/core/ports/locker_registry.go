// Package ports defines the contracts between the locker/cell core and the
// backing key-value store. These interfaces establish dependency inversion:
// the core depends on them, while the redis and memory adapters implement
// them.
package ports

import (
	"context"

	"parcellocker/internal/core/domain/model/locker"
)

// LockerRegistry resolves a locker identifier to its authoritative cell set.
// It is a read-only leaf component: lockers are provisioned externally and
// never mutated by the core.
type LockerRegistry interface {
	// Resolve looks up the locker's stored record.
	// Returns a LockerNotFoundError if no record exists, or if the stored
	// identifier field disagrees with the requested one (defends against
	// stale or partially written keys).
	Resolve(ctx context.Context, lockerID int64) (*locker.Locker, error)
}

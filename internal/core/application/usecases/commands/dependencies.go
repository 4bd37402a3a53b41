// Package commands contains business operations that modify cell state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation, locker
// resolution, and an atomic per-locker store transaction.
//
// Every handler is stateless: locker and pin-mapping data live only in the
// local scope of a single Handle call, never in fields that outlive a
// request.
package commands

import (
	"parcellocker/internal/core/ports"
)

// Dependencies shared by all command handlers.
type (
	// LockerResolver resolves a locker identifier to its cell set.
	// Every public operation begins with a resolution through this port.
	LockerResolver = ports.LockerRegistry

	// LockerUoW provides the atomic per-locker scope in which
	// check-then-act sequences over cell records run.
	LockerUoW = ports.LockerUnitOfWork
)

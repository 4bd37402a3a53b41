// Package locker contains the Locker aggregate: a physical unit with an
// integer identifier and a fixed set of cell identifiers. Lockers are
// provisioned externally and are read-only within the core; the aggregate
// exists to answer membership questions and to scope per-locker operations.
package locker

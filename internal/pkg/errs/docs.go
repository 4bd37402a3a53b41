// Package errs provides standardized error types for the parcel locker
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes two families of errors:
//
// Generic validation errors used by constructors and value objects:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//
// Access error kinds produced by the locker/cell core. Each kind is
// distinguishable with errors.Is and carries the locker and cell identifiers
// needed for a caller-facing message:
//   - LockerNotFoundError: The locker record does not exist
//   - CellNotFoundError: The cell is not part of the locker's cell set
//   - InvalidPinError: The PIN is not exactly six ASCII digits
//   - PinNoMatchError: The PIN does not resolve to any cell in the locker
//   - PinConflictError: The PIN is already assigned to another cell
//   - StoreUnavailableError: The backing key-value store failed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrLockerNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel for errors.Is classification
//
// The core only produces these typed values; mapping each kind to a
// transport-specific status code belongs to the boundary layer.
package errs

package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrValueIsRequired  = errors.New("value is required")
	ErrValueIsInvalid   = errors.New("value is invalid")
	ErrLockerNotFound   = errors.New("locker not found")
	ErrCellNotFound     = errors.New("cell not found")
	ErrInvalidPin       = errors.New("invalid PIN")
	ErrPinNoMatch       = errors.New("PIN does not match any cell")
	ErrPinConflict      = errors.New("PIN already assigned to another cell")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError with a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError with a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// LockerNotFoundError indicates that no locker record exists for the
// requested identifier, or that the stored record failed its integrity check.
type LockerNotFoundError struct {
	LockerID int64
	Cause    error
}

// NewLockerNotFoundError creates a LockerNotFoundError without a cause.
func NewLockerNotFoundError(lockerID int64) *LockerNotFoundError {
	return &LockerNotFoundError{LockerID: lockerID}
}

// NewLockerNotFoundErrorWithCause creates a LockerNotFoundError with a cause.
func NewLockerNotFoundErrorWithCause(lockerID int64, cause error) *LockerNotFoundError {
	return &LockerNotFoundError{LockerID: lockerID, Cause: cause}
}

func (e *LockerNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %d (cause: %s)", ErrLockerNotFound, e.LockerID, e.Cause)
	}
	return fmt.Sprintf("%s: %d", ErrLockerNotFound, e.LockerID)
}

func (e *LockerNotFoundError) Unwrap() error {
	return ErrLockerNotFound
}

// CellNotFoundError indicates that the requested cell is not a member of the
// locker's cell set.
type CellNotFoundError struct {
	LockerID int64
	CellID   string
	Cause    error
}

// NewCellNotFoundError creates a CellNotFoundError without a cause.
func NewCellNotFoundError(lockerID int64, cellID string) *CellNotFoundError {
	return &CellNotFoundError{LockerID: lockerID, CellID: cellID}
}

// NewCellNotFoundErrorWithCause creates a CellNotFoundError with a cause.
func NewCellNotFoundErrorWithCause(lockerID int64, cellID string, cause error) *CellNotFoundError {
	return &CellNotFoundError{LockerID: lockerID, CellID: cellID, Cause: cause}
}

func (e *CellNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (locker ID: %d) (cause: %s)", ErrCellNotFound, e.CellID, e.LockerID, e.Cause)
	}
	return fmt.Sprintf("%s: %s (locker ID: %d)", ErrCellNotFound, e.CellID, e.LockerID)
}

func (e *CellNotFoundError) Unwrap() error {
	return ErrCellNotFound
}

// InvalidPinError indicates that a PIN is not exactly six ASCII digits.
// The rejected value is deliberately not echoed back.
type InvalidPinError struct {
	Cause error
}

// NewInvalidPinError creates an InvalidPinError without a cause.
func NewInvalidPinError() *InvalidPinError {
	return &InvalidPinError{}
}

// NewInvalidPinErrorWithCause creates an InvalidPinError with a cause.
func NewInvalidPinErrorWithCause(cause error) *InvalidPinError {
	return &InvalidPinError{Cause: cause}
}

func (e *InvalidPinError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: enter a valid 6 digit PIN (cause: %s)", ErrInvalidPin, e.Cause)
	}
	return fmt.Sprintf("%s: enter a valid 6 digit PIN", ErrInvalidPin)
}

func (e *InvalidPinError) Unwrap() error {
	return ErrInvalidPin
}

// PinNoMatchError indicates that a well-formed PIN does not resolve to any
// cell of the locker.
type PinNoMatchError struct {
	LockerID int64
	Cause    error
}

// NewPinNoMatchError creates a PinNoMatchError without a cause.
func NewPinNoMatchError(lockerID int64) *PinNoMatchError {
	return &PinNoMatchError{LockerID: lockerID}
}

// NewPinNoMatchErrorWithCause creates a PinNoMatchError with a cause.
func NewPinNoMatchErrorWithCause(lockerID int64, cause error) *PinNoMatchError {
	return &PinNoMatchError{LockerID: lockerID, Cause: cause}
}

func (e *PinNoMatchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (locker ID: %d) (cause: %s)", ErrPinNoMatch, e.LockerID, e.Cause)
	}
	return fmt.Sprintf("%s (locker ID: %d)", ErrPinNoMatch, e.LockerID)
}

func (e *PinNoMatchError) Unwrap() error {
	return ErrPinNoMatch
}

// PinConflictError indicates that a PIN is already assigned to a different
// cell within the same locker.
type PinConflictError struct {
	LockerID int64
	CellID   string
	Cause    error
}

// NewPinConflictError creates a PinConflictError without a cause.
func NewPinConflictError(lockerID int64, cellID string) *PinConflictError {
	return &PinConflictError{LockerID: lockerID, CellID: cellID}
}

// NewPinConflictErrorWithCause creates a PinConflictError with a cause.
func NewPinConflictErrorWithCause(lockerID int64, cellID string, cause error) *PinConflictError {
	return &PinConflictError{LockerID: lockerID, CellID: cellID, Cause: cause}
}

func (e *PinConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (locker ID: %d, cell ID: %s) (cause: %s)", ErrPinConflict, e.LockerID, e.CellID, e.Cause)
	}
	return fmt.Sprintf("%s (locker ID: %d, cell ID: %s)", ErrPinConflict, e.LockerID, e.CellID)
}

func (e *PinConflictError) Unwrap() error {
	return ErrPinConflict
}

// StoreUnavailableError indicates that the backing key-value store failed
// while serving the in-flight request. The core never retries; retry policy
// belongs to the store client.
type StoreUnavailableError struct {
	Op    string
	Cause error
}

// NewStoreUnavailableError creates a StoreUnavailableError for the given
// store operation and underlying cause.
func NewStoreUnavailableError(op string, cause error) *StoreUnavailableError {
	return &StoreUnavailableError{Op: op, Cause: cause}
}

func (e *StoreUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrStoreUnavailable, e.Op, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStoreUnavailable, e.Op)
}

func (e *StoreUnavailableError) Unwrap() error {
	return ErrStoreUnavailable
}

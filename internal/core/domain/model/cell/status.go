package cell

import (
	"fmt"

	"parcellocker/internal/pkg/errs"
)

// Status represents the physical state of a cell door.
// It implements a two-state machine:
//
//	Closed ──> Open    (explicit open request, or successful PIN entry)
//	Open   ──> Closed  (explicit close request; masks the PIN as a side effect)
//
// Requesting the status a cell already has is a write-avoidance no-op, not a
// transition. Status is a value object whose string form is the persisted
// wire representation.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Closed is the initial status of every cell.
	Closed

	// Open indicates the cell door is open.
	Open
)

// getStatusStrings returns a map of Status values to their persisted string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "unknown",
		Closed:  "closed",
		Open:    "open",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Closed: "closed",
		Open:   "open",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are exactly Closed and Open.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status: "closed" or "open".
// Invalid values render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a persisted status representation.
// Returns an error for anything other than "closed" or "open"; state read
// back from the store must always be one of the two.
func StatusFromString(raw string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if raw == str {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", raw))
}

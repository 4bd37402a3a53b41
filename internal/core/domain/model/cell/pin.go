package cell

import (
	"regexp"

	"parcellocker/internal/pkg/errs"
)

// Pin is a cell access code. A usable Pin is exactly six ASCII digits;
// the two sentinel values are placeholders that never validate and never
// participate in PIN matching or uniqueness.
type Pin string

const (
	// UnsetPin is the sentinel written when a cell record is first
	// initialized: the cell has never had a PIN assigned.
	UnsetPin Pin = "------"

	// MaskedPin is the sentinel written when a cell transitions to closed:
	// any previously assigned PIN is deliberately revoked.
	//
	// Both sentinels are behaviorally identical (non-matching by
	// construction); they are kept distinct so that "never assigned" and
	// "revoked" remain distinguishable in stored state.
	MaskedPin Pin = "xxxxxx"
)

var pinPattern = regexp.MustCompile(`^[0-9]{6}$`)

// NewPin validates raw as a usable six-digit PIN.
// Rejects anything else, including both sentinel values.
func NewPin(raw string) (Pin, error) {
	p := Pin(raw)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// Validate reports whether the Pin is exactly six ASCII digits.
// Sentinels fail validation by construction.
func (p Pin) Validate() error {
	if !pinPattern.MatchString(string(p)) {
		return errs.NewInvalidPinError()
	}
	return nil
}

// IsSentinel reports whether the Pin is one of the placeholder values.
// Sentinel pins are omitted from the pin-to-cell mapping.
func (p Pin) IsSentinel() bool {
	return p == UnsetPin || p == MaskedPin
}

// String returns the raw PIN value.
func (p Pin) String() string {
	return string(p)
}

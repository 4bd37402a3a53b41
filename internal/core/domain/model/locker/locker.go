package locker

import (
	"errors"
	"sort"
	"strings"

	"parcellocker/internal/pkg/errs"
)

// ErrLockerIsNotConstructed is returned when a Locker instance was not
// created through the NewLocker factory method.
var ErrLockerIsNotConstructed = errors.New("Locker must be created via NewLocker constructor")

// Locker represents a physical parcel locker: an integer identifier plus the
// authoritative set of cell identifiers it contains.
//
// Locker follows these invariants:
//   - The identifier must be positive
//   - The cell set is non-empty, and every cell identifier is non-blank
//   - The cell set is immutable for the lifetime of the aggregate
//
// A cell identifier outside this set must never be materialized into state,
// even if a record already exists under that key.
type Locker struct {
	id      int64
	cells   []string
	cellSet map[string]struct{}

	isConstructed bool
}

// NewLocker creates a Locker from its identifier and cell set. Cell
// identifiers are trimmed, deduplicated, and sorted so that iteration order
// is deterministic.
//
// Returns a validation error if the identifier is not positive, the set is
// empty, or any cell identifier is blank.
func NewLocker(id int64, cells []string) (*Locker, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("lockerId")
	}

	cellSet := make(map[string]struct{}, len(cells))
	for _, cellID := range cells {
		cellID = strings.TrimSpace(cellID)
		if cellID == "" {
			return nil, errs.NewValueIsRequiredError("cellId")
		}
		cellSet[cellID] = struct{}{}
	}
	if len(cellSet) == 0 {
		return nil, errs.NewValueIsRequiredError("cells")
	}

	sorted := make([]string, 0, len(cellSet))
	for cellID := range cellSet {
		sorted = append(sorted, cellID)
	}
	sort.Strings(sorted)

	return &Locker{
		id:            id,
		cells:         sorted,
		cellSet:       cellSet,
		isConstructed: true,
	}, nil
}

// Validate ensures the Locker instance was properly constructed via NewLocker.
func (l *Locker) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLockerIsNotConstructed
	}
	return nil
}

// ID returns the locker's identifier.
func (l *Locker) ID() int64 {
	return l.id
}

// Cells returns the locker's cell identifiers in deterministic (sorted)
// order. The returned slice is a copy.
func (l *Locker) Cells() []string {
	out := make([]string, len(l.cells))
	copy(out, l.cells)
	return out
}

// HasCell reports whether cellID is a member of the locker's cell set.
func (l *Locker) HasCell(cellID string) bool {
	_, ok := l.cellSet[cellID]
	return ok
}

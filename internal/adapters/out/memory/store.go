// Package memory provides an in-memory implementation of the locker ports.
// It backs handler scenario tests and local development runs where no Redis
// instance is available. Not suitable for multi-process deployments: state
// lives in the process.
package memory

import (
	"context"
	"fmt"
	"sync"

	"parcellocker/internal/core/domain/model/cell"
	"parcellocker/internal/core/domain/model/locker"
	"parcellocker/internal/core/ports"
	"parcellocker/internal/pkg/errs"
)

// Store is a mutex-guarded in-memory locker registry and cell state store.
// Execute holds the mutex for the whole callback, which makes every
// per-locker sequence trivially atomic (it is in fact a global lock; good
// enough for tests and single-process development).
type Store struct {
	mu      sync.Mutex
	lockers map[int64]*locker.Locker
	cells   map[string]record
}

type record struct {
	status cell.Status
	pin    cell.Pin
}

// Interface conformance checks.
var (
	_ ports.LockerRegistry   = (*Store)(nil)
	_ ports.CellStateStore   = (*Store)(nil)
	_ ports.LockerUnitOfWork = (*Store)(nil)
)

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		lockers: make(map[int64]*locker.Locker),
		cells:   make(map[string]record),
	}
}

// AddLocker registers a locker and its cell set. Seeding happens at
// bootstrap; the cell set is static afterwards.
func (s *Store) AddLocker(lkr *locker.Locker) error {
	if err := lkr.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lockers[lkr.ID()] = lkr
	return nil
}

// Resolve implements ports.LockerRegistry.
func (s *Store) Resolve(_ context.Context, lockerID int64) (*locker.Locker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lkr, ok := s.lockers[lockerID]
	if !ok {
		return nil, errs.NewLockerNotFoundError(lockerID)
	}
	return lkr, nil
}

// GetOrInit implements ports.CellStateStore.
func (s *Store) GetOrInit(_ context.Context, lockerID int64, cellID string) (*cell.Cell, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrInitLocked(lockerID, cellID)
}

// SetStatus implements ports.CellStateStore.
func (s *Store) SetStatus(_ context.Context, lockerID int64, cellID string, status cell.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setStatusLocked(lockerID, cellID, status)
}

// SetPin implements ports.CellStateStore.
func (s *Store) SetPin(_ context.Context, lockerID int64, cellID string, pin cell.Pin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setPinLocked(lockerID, cellID, pin)
}

// Execute implements ports.LockerUnitOfWork. The mutex is held for the
// duration of fn, so the callback runs exactly once.
func (s *Store) Execute(_ context.Context, lkr *locker.Locker, fn func(store ports.CellStateStore) error) error {
	if err := lkr.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(lockedView{s})
}

func (s *Store) getOrInitLocked(lockerID int64, cellID string) (*cell.Cell, error) {
	key := cellKey(lockerID, cellID)
	rec, ok := s.cells[key]
	if !ok {
		rec = record{status: cell.Closed, pin: cell.UnsetPin}
		s.cells[key] = rec
	}
	return cell.RestoreCell(lockerID, cellID, rec.status, rec.pin)
}

func (s *Store) setStatusLocked(lockerID int64, cellID string, status cell.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	key := cellKey(lockerID, cellID)
	rec, ok := s.cells[key]
	if !ok {
		rec = record{status: cell.Closed, pin: cell.UnsetPin}
	}
	rec.status = status
	s.cells[key] = rec
	return nil
}

func (s *Store) setPinLocked(lockerID int64, cellID string, pin cell.Pin) error {
	key := cellKey(lockerID, cellID)
	rec, ok := s.cells[key]
	if !ok {
		rec = record{status: cell.Closed, pin: cell.UnsetPin}
	}
	rec.pin = pin
	s.cells[key] = rec
	return nil
}

// lockedView exposes the store's cell operations without re-acquiring the
// mutex. Execute passes it to its callback while holding the lock.
type lockedView struct {
	s *Store
}

func (v lockedView) GetOrInit(_ context.Context, lockerID int64, cellID string) (*cell.Cell, error) {
	return v.s.getOrInitLocked(lockerID, cellID)
}

func (v lockedView) SetStatus(_ context.Context, lockerID int64, cellID string, status cell.Status) error {
	return v.s.setStatusLocked(lockerID, cellID, status)
}

func (v lockedView) SetPin(_ context.Context, lockerID int64, cellID string, pin cell.Pin) error {
	return v.s.setPinLocked(lockerID, cellID, pin)
}

func cellKey(lockerID int64, cellID string) string {
	return fmt.Sprintf("%d_%s", lockerID, cellID)
}

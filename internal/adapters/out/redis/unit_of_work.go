package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"parcellocker/internal/core/domain/model/cell"
	"parcellocker/internal/core/domain/model/locker"
	"parcellocker/internal/core/ports"
	"parcellocker/internal/pkg/errs"
)

// defaultMaxRetries bounds the optimistic retry loop. Contention on a single
// locker is a handful of concurrent requests at most, so a conflict storm
// that exhausts this means the store itself is misbehaving.
const defaultMaxRetries = 8

// UnitOfWork implements ports.LockerUnitOfWork with an optimistic WATCH
// transaction over all of a locker's cell keys.
//
// The callback's reads execute immediately through the watched connection;
// its writes are queued and flushed in one MULTI/EXEC at the end. If any
// watched key changes before EXEC, the transaction fails, the queued writes
// are discarded, and the callback is re-run.
type UnitOfWork struct {
	client     *redis.Client
	maxRetries int
}

var _ ports.LockerUnitOfWork = (*UnitOfWork)(nil)

// NewUnitOfWork creates a unit of work over the given client.
func NewUnitOfWork(client *redis.Client) *UnitOfWork {
	return &UnitOfWork{
		client:     client,
		maxRetries: defaultMaxRetries,
	}
}

// Execute implements ports.LockerUnitOfWork.
func (u *UnitOfWork) Execute(ctx context.Context, lkr *locker.Locker, fn func(store ports.CellStateStore) error) error {
	if err := lkr.Validate(); err != nil {
		return err
	}

	cells := lkr.Cells()
	keys := make([]string, len(cells))
	for i, cellID := range cells {
		keys[i] = cellKey(lkr.ID(), cellID)
	}

	for attempt := 0; attempt < u.maxRetries; attempt++ {
		var fnErr error
		err := u.client.Watch(ctx, func(tx *redis.Tx) error {
			store := newTxCellStore(tx)
			if err := fn(store); err != nil {
				fnErr = err
				return err
			}
			return store.flush(ctx)
		}, keys...)

		switch {
		case fnErr != nil:
			// The callback aborted; propagate its typed error untouched.
			return fnErr
		case err == nil:
			return nil
		case errors.Is(err, redis.TxFailedErr):
			// A watched cell changed under us; rerun the callback.
			continue
		default:
			return errs.NewStoreUnavailableError(fmt.Sprintf("transaction on locker %d", lkr.ID()), err)
		}
	}

	return errs.NewStoreUnavailableError(
		fmt.Sprintf("transaction on locker %d", lkr.ID()),
		fmt.Errorf("conflict retries exhausted after %d attempts: %w", u.maxRetries, redis.TxFailedErr),
	)
}

// txCellStore is the CellStateStore handed to Execute callbacks. Reads go
// through the watched transaction connection; writes are queued and flushed
// atomically by flush.
type txCellStore struct {
	tx     *redis.Tx
	queued []func(pipe redis.Pipeliner)
}

var _ ports.CellStateStore = (*txCellStore)(nil)

func newTxCellStore(tx *redis.Tx) *txCellStore {
	return &txCellStore{tx: tx}
}

// GetOrInit reads the cell through the watched connection. For fields that
// are absent it queues HSETNX defaults for the commit and returns the
// default state; the WATCH guarantees no concurrent initializer slipped in
// between the read and the commit.
func (s *txCellStore) GetOrInit(ctx context.Context, lockerID int64, cellID string) (*cell.Cell, error) {
	key := cellKey(lockerID, cellID)

	vals, err := s.tx.HMGet(ctx, key, fieldStatus, fieldPin).Result()
	if err != nil {
		return nil, errs.NewStoreUnavailableError("HMGET "+key, err)
	}

	if len(vals) < 2 || vals[0] == nil || vals[1] == nil {
		s.queued = append(s.queued, func(pipe redis.Pipeliner) {
			pipe.HSetNX(ctx, key, fieldStatus, cell.Closed.String())
			pipe.HSetNX(ctx, key, fieldPin, cell.UnsetPin.String())
		})
	}

	return parseCellRecord(lockerID, cellID, key, vals)
}

// SetStatus queues an unconditional status overwrite.
func (s *txCellStore) SetStatus(ctx context.Context, lockerID int64, cellID string, status cell.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	key := cellKey(lockerID, cellID)
	s.queued = append(s.queued, func(pipe redis.Pipeliner) {
		pipe.HSet(ctx, key, fieldStatus, status.String())
	})
	return nil
}

// SetPin queues an unconditional pin overwrite.
func (s *txCellStore) SetPin(ctx context.Context, lockerID int64, cellID string, pin cell.Pin) error {
	key := cellKey(lockerID, cellID)
	s.queued = append(s.queued, func(pipe redis.Pipeliner) {
		pipe.HSet(ctx, key, fieldPin, pin.String())
	})
	return nil
}

// flush commits the queued writes in one MULTI/EXEC. With nothing queued the
// transaction is a pure read and there is nothing to commit.
func (s *txCellStore) flush(ctx context.Context) error {
	if len(s.queued) == 0 {
		return nil
	}

	_, err := s.tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, queued := range s.queued {
			queued(pipe)
		}
		return nil
	})
	return err
}

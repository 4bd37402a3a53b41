package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"parcellocker/internal/core/domain/model/cell"
	"parcellocker/internal/core/ports"
	"parcellocker/internal/pkg/errs"
)

// CellStore implements ports.CellStateStore directly against a Redis client,
// outside any per-locker transaction. Single-cell reads and writes need no
// WATCH: GetOrInit is made atomic with HSETNX inside one MULTI block, and
// SetStatus/SetPin are unconditional single-field overwrites.
type CellStore struct {
	client redis.Cmdable
}

var _ ports.CellStateStore = (*CellStore)(nil)

// NewCellStore creates a cell store over the given client.
func NewCellStore(client redis.Cmdable) *CellStore {
	return &CellStore{client: client}
}

// GetOrInit implements ports.CellStateStore.
// HSETNX writes the (closed, unset) defaults only when the fields are
// absent; because the defaults are constants, two racing first-touches both
// observe the same record. The conditional writes and the read travel in a
// single MULTI/EXEC round trip.
func (s *CellStore) GetOrInit(ctx context.Context, lockerID int64, cellID string) (*cell.Cell, error) {
	key := cellKey(lockerID, cellID)

	var read *redis.SliceCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSetNX(ctx, key, fieldStatus, cell.Closed.String())
		pipe.HSetNX(ctx, key, fieldPin, cell.UnsetPin.String())
		read = pipe.HMGet(ctx, key, fieldStatus, fieldPin)
		return nil
	})
	if err != nil {
		return nil, errs.NewStoreUnavailableError("MULTI "+key, err)
	}

	return parseCellRecord(lockerID, cellID, key, read.Val())
}

// SetStatus implements ports.CellStateStore.
func (s *CellStore) SetStatus(ctx context.Context, lockerID int64, cellID string, status cell.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	key := cellKey(lockerID, cellID)
	if err := s.client.HSet(ctx, key, fieldStatus, status.String()).Err(); err != nil {
		return errs.NewStoreUnavailableError("HSET "+key, err)
	}
	return nil
}

// SetPin implements ports.CellStateStore.
func (s *CellStore) SetPin(ctx context.Context, lockerID int64, cellID string, pin cell.Pin) error {
	key := cellKey(lockerID, cellID)
	if err := s.client.HSet(ctx, key, fieldPin, pin.String()).Err(); err != nil {
		return errs.NewStoreUnavailableError("HSET "+key, err)
	}
	return nil
}

// parseCellRecord rebuilds a Cell from the HMGET result for (status, pin).
func parseCellRecord(lockerID int64, cellID, key string, vals []interface{}) (*cell.Cell, error) {
	status := cell.Closed
	pin := cell.UnsetPin

	if len(vals) > 0 && vals[0] != nil {
		raw, _ := vals[0].(string)
		parsed, err := cell.StatusFromString(raw)
		if err != nil {
			return nil, errInvalidCellRecord(key, err)
		}
		status = parsed
	}
	if len(vals) > 1 && vals[1] != nil {
		raw, _ := vals[1].(string)
		pin = cell.Pin(raw)
	}

	c, err := cell.RestoreCell(lockerID, cellID, status, pin)
	if err != nil {
		return nil, errInvalidCellRecord(key, err)
	}
	return c, nil
}

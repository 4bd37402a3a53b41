package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"parcellocker/internal/core/domain/model/locker"
	"parcellocker/internal/core/ports"
	"parcellocker/internal/pkg/errs"
)

// LockerRegistry resolves lockers from their Redis hash records.
type LockerRegistry struct {
	client redis.Cmdable
}

var _ ports.LockerRegistry = (*LockerRegistry)(nil)

// NewLockerRegistry creates a registry reading from the given client.
func NewLockerRegistry(client redis.Cmdable) *LockerRegistry {
	return &LockerRegistry{client: client}
}

// Resolve implements ports.LockerRegistry.
// The stored lockerId field must echo the requested identifier; a mismatch
// marks a stale or partially written record and resolves to not-found.
func (r *LockerRegistry) Resolve(ctx context.Context, lockerID int64) (*locker.Locker, error) {
	key := lockerKey(lockerID)

	vals, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, errs.NewStoreUnavailableError("HGETALL "+key, err)
	}

	storedID, ok := vals[fieldLockerID]
	if !ok || storedID != strconv.FormatInt(lockerID, 10) {
		return nil, errs.NewLockerNotFoundError(lockerID)
	}

	cells := strings.Split(vals[fieldCells], ",")
	lkr, err := locker.NewLocker(lockerID, cells)
	if err != nil {
		// The record exists but its cell list is unusable; surface it as
		// not-found rather than leaking a malformed locker into the core.
		return nil, errs.NewLockerNotFoundErrorWithCause(lockerID, err)
	}

	return lkr, nil
}

// SeedLocker writes a locker record. Locker provisioning is outside the
// core's scope; the process bootstrap uses this to install the statically
// configured lockers, mirroring how the service has always been deployed.
func SeedLocker(ctx context.Context, client redis.Cmdable, lkr *locker.Locker) error {
	if err := lkr.Validate(); err != nil {
		return err
	}

	key := lockerKey(lkr.ID())
	err := client.HSet(ctx, key,
		fieldLockerID, strconv.FormatInt(lkr.ID(), 10),
		fieldCells, strings.Join(lkr.Cells(), ","),
	).Err()
	if err != nil {
		return errs.NewStoreUnavailableError("HSET "+key, err)
	}
	return nil
}

// Ping verifies the store connection, for bootstrap and health checks.
func Ping(ctx context.Context, client *redis.Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errs.NewStoreUnavailableError("PING", err)
	}
	return nil
}

// errInvalidCellRecord annotates a cell hash whose fields cannot be parsed
// back into the state machine.
func errInvalidCellRecord(key string, cause error) error {
	if errors.Is(cause, errs.ErrValueIsInvalid) || errors.Is(cause, errs.ErrInvalidPin) {
		return errs.NewStoreUnavailableError(fmt.Sprintf("corrupt record %s", key), cause)
	}
	return cause
}

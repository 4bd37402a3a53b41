package redis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisadapter "parcellocker/internal/adapters/out/redis"
	"parcellocker/internal/core/domain/model/cell"
	"parcellocker/internal/core/domain/model/locker"
	"parcellocker/internal/core/ports"
	"parcellocker/internal/pkg/errs"
)

func testLocker(t *testing.T) *locker.Locker {
	t.Helper()
	lkr, err := locker.NewLocker(1234, []string{"C-001", "C-002"})
	require.NoError(t, err)
	return lkr
}

func TestUnitOfWork_Execute_CommitsWrites(t *testing.T) {
	ctx := t.Context()
	mr, client := newTestClient(t)
	uow := redisadapter.NewUnitOfWork(client)
	lkr := testLocker(t)

	err := uow.Execute(ctx, lkr, func(store ports.CellStateStore) error {
		c, err := store.GetOrInit(ctx, 1234, "C-001")
		if err != nil {
			return err
		}
		assert.Equal(t, cell.Closed, c.Status())

		if err := store.SetStatus(ctx, 1234, "C-001", cell.Open); err != nil {
			return err
		}
		return store.SetPin(ctx, 1234, "C-001", cell.Pin("111111"))
	})

	require.NoError(t, err)
	assert.Equal(t, "open", mr.HGet("cell:1234_C-001", "status"))
	assert.Equal(t, "111111", mr.HGet("cell:1234_C-001", "pin"))
}

func TestUnitOfWork_Execute_InitializesAbsentCells(t *testing.T) {
	ctx := t.Context()
	mr, client := newTestClient(t)
	uow := redisadapter.NewUnitOfWork(client)
	lkr := testLocker(t)

	err := uow.Execute(ctx, lkr, func(store ports.CellStateStore) error {
		_, err := store.GetOrInit(ctx, 1234, "C-002")
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, "closed", mr.HGet("cell:1234_C-002", "status"))
	assert.Equal(t, "------", mr.HGet("cell:1234_C-002", "pin"))
}

func TestUnitOfWork_Execute_RetriesOnWatchedKeyChange(t *testing.T) {
	ctx := t.Context()
	mr, client := newTestClient(t)
	uow := redisadapter.NewUnitOfWork(client)
	lkr := testLocker(t)

	mr.HSet("cell:1234_C-001", "status", "closed", "pin", "------")

	attempts := 0
	err := uow.Execute(ctx, lkr, func(store ports.CellStateStore) error {
		attempts++
		if attempts == 1 {
			// Sneak a concurrent write onto a watched key between the read
			// and the commit; EXEC must fail and the callback must re-run.
			mr.HSet("cell:1234_C-001", "pin", "999999")
		}

		if _, err := store.GetOrInit(ctx, 1234, "C-001"); err != nil {
			return err
		}
		return store.SetStatus(ctx, 1234, "C-001", cell.Open)
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, "open", mr.HGet("cell:1234_C-001", "status"))
	// The concurrent write survives; only our queued writes were discarded
	// and replayed.
	assert.Equal(t, "999999", mr.HGet("cell:1234_C-001", "pin"))
}

func TestUnitOfWork_Execute_CallbackErrorAbortsWithoutRetry(t *testing.T) {
	ctx := t.Context()
	mr, client := newTestClient(t)
	uow := redisadapter.NewUnitOfWork(client)
	lkr := testLocker(t)

	attempts := 0
	err := uow.Execute(ctx, lkr, func(store ports.CellStateStore) error {
		attempts++
		if err := store.SetPin(ctx, 1234, "C-001", cell.Pin("111111")); err != nil {
			return err
		}
		return errs.NewPinConflictError(1234, "C-001")
	})

	require.ErrorIs(t, err, errs.ErrPinConflict)
	assert.Equal(t, 1, attempts)
	// Queued writes from the aborted callback are never flushed.
	assert.False(t, mr.Exists("cell:1234_C-001"))
}

func TestUnitOfWork_Execute_PureReadNeedsNoCommit(t *testing.T) {
	ctx := t.Context()
	mr, client := newTestClient(t)
	uow := redisadapter.NewUnitOfWork(client)
	lkr := testLocker(t)

	mr.HSet("cell:1234_C-001", "status", "open", "pin", "123456")
	mr.HSet("cell:1234_C-002", "status", "closed", "pin", "------")

	var seen cell.Status
	err := uow.Execute(ctx, lkr, func(store ports.CellStateStore) error {
		c, err := store.GetOrInit(ctx, 1234, "C-001")
		if err != nil {
			return err
		}
		seen = c.Status()
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, cell.Open, seen)
}

func TestUnitOfWork_Execute_StoreDown(t *testing.T) {
	ctx := t.Context()
	mr, client := newTestClient(t)
	uow := redisadapter.NewUnitOfWork(client)
	lkr := testLocker(t)

	mr.Close()

	err := uow.Execute(ctx, lkr, func(store ports.CellStateStore) error {
		_, err := store.GetOrInit(ctx, 1234, "C-001")
		return err
	})
	require.ErrorIs(t, err, errs.ErrStoreUnavailable)
}

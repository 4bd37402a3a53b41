package queries_test

import (
	"context"
	"testing"

	"parcellocker/internal/core/application/usecases/queries"
	"parcellocker/internal/core/domain/model/cell"
	"parcellocker/internal/core/domain/model/locker"
	"parcellocker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGetCellRegistry struct{ mock.Mock }

func (m *MockGetCellRegistry) Resolve(ctx context.Context, lockerID int64) (*locker.Locker, error) {
	args := m.Called(ctx, lockerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*locker.Locker), args.Error(1)
}

type MockGetCellStore struct{ mock.Mock }

func (m *MockGetCellStore) GetOrInit(ctx context.Context, lockerID int64, cellID string) (*cell.Cell, error) {
	args := m.Called(ctx, lockerID, cellID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cell.Cell), args.Error(1)
}

func (m *MockGetCellStore) SetStatus(ctx context.Context, lockerID int64, cellID string, status cell.Status) error {
	args := m.Called(ctx, lockerID, cellID, status)
	return args.Error(0)
}

func (m *MockGetCellStore) SetPin(ctx context.Context, lockerID int64, cellID string, pin cell.Pin) error {
	args := m.Called(ctx, lockerID, cellID, pin)
	return args.Error(0)
}

func getCellLocker(t *testing.T) *locker.Locker {
	t.Helper()
	lkr, err := locker.NewLocker(1234, []string{"C-001", "C-002"})
	require.NoError(t, err)
	return lkr
}

func TestGetCellQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	q, err := queries.NewGetCellQuery(1234, "C-001")
	require.NoError(t, err)

	lkr := getCellLocker(t)
	stored, err := cell.RestoreCell(1234, "C-001", cell.Open, cell.Pin("123456"))
	require.NoError(t, err)

	registry := new(MockGetCellRegistry)
	store := new(MockGetCellStore)

	mock.InOrder(
		registry.On("Resolve", ctx, int64(1234)).Return(lkr, nil).Once(),
		store.On("GetOrInit", ctx, int64(1234), "C-001").Return(stored, nil).Once(),
	)

	handler := queries.NewGetCellQueryHandler(registry, store)
	resp, err := handler.Handle(ctx, q)

	require.NoError(t, err)
	assert.Equal(t, int64(1234), resp.LockerID)
	assert.Equal(t, "C-001", resp.CellID)
	assert.Equal(t, cell.Open, resp.Status)
	assert.Equal(t, cell.Pin("123456"), resp.Pin)
	registry.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestGetCellQueryHandler_Handle_FirstTouchDefaults(t *testing.T) {
	ctx := t.Context()
	q, err := queries.NewGetCellQuery(1234, "C-002")
	require.NoError(t, err)

	lkr := getCellLocker(t)
	fresh, err := cell.NewCell(1234, "C-002")
	require.NoError(t, err)

	registry := new(MockGetCellRegistry)
	store := new(MockGetCellStore)

	mock.InOrder(
		registry.On("Resolve", ctx, int64(1234)).Return(lkr, nil).Once(),
		store.On("GetOrInit", ctx, int64(1234), "C-002").Return(fresh, nil).Once(),
	)

	handler := queries.NewGetCellQueryHandler(registry, store)
	resp, err := handler.Handle(ctx, q)

	require.NoError(t, err)
	assert.Equal(t, cell.Closed, resp.Status)
	assert.Equal(t, cell.UnsetPin, resp.Pin)
}

func TestGetCellQueryHandler_Handle_CellNotFound(t *testing.T) {
	ctx := t.Context()
	q, err := queries.NewGetCellQuery(1234, "C-999")
	require.NoError(t, err)

	lkr := getCellLocker(t)

	registry := new(MockGetCellRegistry)
	registry.On("Resolve", ctx, int64(1234)).Return(lkr, nil).Once()

	store := new(MockGetCellStore)

	handler := queries.NewGetCellQueryHandler(registry, store)
	_, err = handler.Handle(ctx, q)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrCellNotFound)
	// Membership is checked before the store is touched.
	store.AssertNotCalled(t, "GetOrInit")
}

func TestGetCellQueryHandler_Handle_LockerNotFound(t *testing.T) {
	ctx := t.Context()
	q, err := queries.NewGetCellQuery(9999, "C-001")
	require.NoError(t, err)

	registry := new(MockGetCellRegistry)
	registry.On("Resolve", ctx, int64(9999)).
		Return(nil, errs.NewLockerNotFoundError(9999)).Once()

	handler := queries.NewGetCellQueryHandler(registry, new(MockGetCellStore))
	_, err = handler.Handle(ctx, q)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrLockerNotFound)
}

func TestGetCellQueryHandler_Handle_StoreError(t *testing.T) {
	ctx := t.Context()
	q, err := queries.NewGetCellQuery(1234, "C-001")
	require.NoError(t, err)

	lkr := getCellLocker(t)

	registry := new(MockGetCellRegistry)
	store := new(MockGetCellStore)

	mock.InOrder(
		registry.On("Resolve", ctx, int64(1234)).Return(lkr, nil).Once(),
		store.On("GetOrInit", ctx, int64(1234), "C-001").
			Return(nil, errs.NewStoreUnavailableError("read cell 1234_C-001", assert.AnError)).Once(),
	)

	handler := queries.NewGetCellQueryHandler(registry, store)
	_, err = handler.Handle(ctx, q)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrStoreUnavailable)
}

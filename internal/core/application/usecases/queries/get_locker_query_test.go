package queries_test

import (
	"testing"

	"parcellocker/internal/core/application/usecases/queries"
	"parcellocker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetLockerQuery_ValidInput(t *testing.T) {
	q, err := queries.NewGetLockerQuery(1234)

	require.NoError(t, err)
	assert.NotZero(t, q)
	assert.Equal(t, int64(1234), q.LockerID())
	assert.NoError(t, q.Validate())
}

func TestNewGetLockerQuery_InvalidLockerID(t *testing.T) {
	testCases := []struct {
		name     string
		lockerID int64
	}{
		{name: "zero", lockerID: 0},
		{name: "negative", lockerID: -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := queries.NewGetLockerQuery(tc.lockerID)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestGetLockerQuery_Validate_ZeroValue(t *testing.T) {
	var q queries.GetLockerQuery

	err := q.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrGetLockerQueryIsNotConstructed)
}

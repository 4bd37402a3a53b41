package commands_test

import (
	"testing"

	"parcellocker/internal/core/application/usecases/commands"
	"parcellocker/internal/core/domain/model/cell"
	"parcellocker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSetCellPinCommand_ValidInput(t *testing.T) {
	// Act
	cmd, err := commands.NewSetCellPinCommand(1234, "C-001", "654321")

	// Assert
	require.NoError(t, err)
	assert.NotZero(t, cmd)
	assert.Equal(t, int64(1234), cmd.LockerID())
	assert.Equal(t, "C-001", cmd.CellID())
	assert.Equal(t, cell.Pin("654321"), cmd.Pin())
}

func TestNewSetCellPinCommand_InvalidLockerID(t *testing.T) {
	_, err := commands.NewSetCellPinCommand(0, "C-001", "654321")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewSetCellPinCommand_EmptyCellID(t *testing.T) {
	_, err := commands.NewSetCellPinCommand(1234, "", "654321")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewSetCellPinCommand_InvalidPin(t *testing.T) {
	testCases := []struct {
		name string
		pin  string
	}{
		{name: "too short", pin: "12"},
		{name: "non numeric", pin: "abcdef"},
		{name: "unset sentinel", pin: "------"},
		{name: "masked sentinel", pin: "xxxxxx"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewSetCellPinCommand(1234, "C-001", tc.pin)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrInvalidPin)
		})
	}
}

func TestNewSetCellPinCommand_CombinedErrors(t *testing.T) {
	_, err := commands.NewSetCellPinCommand(-1, "", "nope")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrInvalidPin)
}

func TestSetCellPinCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.SetCellPinCommand

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrSetCellPinCommandIsNotConstructed)
}

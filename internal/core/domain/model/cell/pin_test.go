package cell_test

import (
	"testing"

	"parcellocker/internal/core/domain/model/cell"
	"parcellocker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPin(t *testing.T) {
	t.Run("accepts exactly six ASCII digits", func(t *testing.T) {
		for _, raw := range []string{"000000", "123456", "999999", "111111"} {
			pin, err := cell.NewPin(raw)
			require.NoError(t, err, "raw=%q", raw)
			assert.Equal(t, raw, pin.String())
		}
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		rejected := []string{
			"",
			"12345",
			"1234567",
			"12345a",
			"abcdef",
			"12 456",
			"１２３４５６", // full-width digits are not ASCII
			string(cell.UnsetPin),
			string(cell.MaskedPin),
		}
		for _, raw := range rejected {
			_, err := cell.NewPin(raw)
			require.ErrorIs(t, err, errs.ErrInvalidPin, "raw=%q", raw)
		}
	})
}

func TestPin_IsSentinel(t *testing.T) {
	assert.True(t, cell.UnsetPin.IsSentinel())
	assert.True(t, cell.MaskedPin.IsSentinel())
	assert.False(t, cell.Pin("123456").IsSentinel())
}

func TestPin_SentinelsAreDistinct(t *testing.T) {
	// Unset ("never assigned") and masked ("revoked on close") stay
	// distinguishable in stored state even though both are non-matching.
	assert.NotEqual(t, cell.UnsetPin, cell.MaskedPin)
	require.ErrorIs(t, cell.UnsetPin.Validate(), errs.ErrInvalidPin)
	require.ErrorIs(t, cell.MaskedPin.Validate(), errs.ErrInvalidPin)
}

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_LockerSeeds(t *testing.T) {
	config := Config{Lockers: "1234:C-001,C-002;1235:C-003"}

	seeds, err := config.LockerSeeds()

	require.NoError(t, err)
	require.Len(t, seeds, 2)
	assert.Equal(t, int64(1234), seeds[0].LockerID)
	assert.Equal(t, []string{"C-001", "C-002"}, seeds[0].Cells)
	assert.Equal(t, int64(1235), seeds[1].LockerID)
	assert.Equal(t, []string{"C-003"}, seeds[1].Cells)
}

func TestConfig_LockerSeeds_WhitespaceTolerant(t *testing.T) {
	config := Config{Lockers: " 1234 : C-001 , C-002 ; "}

	seeds, err := config.LockerSeeds()

	require.NoError(t, err)
	require.Len(t, seeds, 1)
	assert.Equal(t, int64(1234), seeds[0].LockerID)
	assert.Equal(t, []string{"C-001", "C-002"}, seeds[0].Cells)
}

func TestConfig_LockerSeeds_Empty(t *testing.T) {
	seeds, err := Config{Lockers: ""}.LockerSeeds()

	require.NoError(t, err)
	assert.Empty(t, seeds)
}

func TestConfig_LockerSeeds_Malformed(t *testing.T) {
	testCases := []struct {
		name    string
		lockers string
	}{
		{name: "missing separator", lockers: "1234"},
		{name: "bad locker id", lockers: "abc:C-001"},
		{name: "no cells", lockers: "1234:"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Config{Lockers: tc.lockers}.LockerSeeds()
			require.Error(t, err)
		})
	}
}

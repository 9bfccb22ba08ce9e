package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDateFormat(t *testing.T) {
	cases := []struct {
		date string
		want bool
	}{
		{"2026-08-24", true},
		{"2026-01-01", true},
		{"2026-02-30", false},
		{"2026-1-05", false},
		{"24-08-2026", false},
		{"2026/08/24", false},
		{"", false},
		{"not-a-date", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ValidateDateFormat(tc.date), "date %q", tc.date)
	}
}

func TestValidateTimeSlot(t *testing.T) {
	cases := []struct {
		slot string
		want bool
	}{
		{"09:30", true},
		{"9:30", true},
		{"00:00", true},
		{"23:59", true},
		{"24:00", false},
		{"12:60", false},
		{"12:5", false},
		{"12", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ValidateTimeSlot(tc.slot), "slot %q", tc.slot)
	}
}

func TestCombineDateTime(t *testing.T) {
	at, err := CombineDateTime("2026-08-24", "14:30")
	require.NoError(t, err)
	assert.Equal(t, 2026, at.Year())
	assert.Equal(t, time.August, at.Month())
	assert.Equal(t, 24, at.Day())
	assert.Equal(t, 14, at.Hour())
	assert.Equal(t, 30, at.Minute())

	_, err = CombineDateTime("bad", "14:30")
	assert.Error(t, err)
}

func TestIsFutureDateTime(t *testing.T) {
	future := time.Now().Add(48 * time.Hour)
	assert.True(t, IsFutureDateTime(future.Format(DateLayout), future.Format(TimeLayout)))

	past := time.Now().Add(-48 * time.Hour)
	assert.False(t, IsFutureDateTime(past.Format(DateLayout), past.Format(TimeLayout)))

	assert.False(t, IsFutureDateTime("bad", "14:30"))
}

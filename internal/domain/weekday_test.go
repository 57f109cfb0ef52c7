package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayOf_MondayIsZero(t *testing.T) {
	monday := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		assert.Equal(t, WeekdayIndex(i), WeekdayOf(monday.AddDate(0, 0, i)))
	}
}

func TestWeekdaySet(t *testing.T) {
	set, err := NewWeekdaySet(6, 5, 5)
	require.NoError(t, err)

	assert.True(t, set.Contains(Saturday))
	assert.True(t, set.Contains(Sunday))
	assert.False(t, set.Contains(Monday))
	assert.Equal(t, []int{5, 6}, set.Ints())
	assert.False(t, set.IsFull())

	saturday := time.Date(2026, 10, 24, 0, 0, 0, 0, time.UTC)
	assert.True(t, set.ContainsDate(saturday))
	assert.False(t, set.ContainsDate(saturday.AddDate(0, 0, 2)))

	full, err := NewWeekdaySet(0, 1, 2, 3, 4, 5, 6)
	require.NoError(t, err)
	assert.True(t, full.IsFull())

	empty, err := NewWeekdaySet()
	require.NoError(t, err)
	assert.Empty(t, empty.Ints())
}

func TestWeekdaySet_RejectsOutOfRange(t *testing.T) {
	_, err := NewWeekdaySet(7)
	assert.Error(t, err)

	_, err = NewWeekdaySet(-1)
	assert.Error(t, err)
}

func TestScheduleConfig_Defaults(t *testing.T) {
	cfg := DefaultScheduleConfig()

	assert.Empty(t, cfg.NonWorkingWeekdays.Ints())
	assert.Equal(t, 90, cfg.HorizonDays)
	assert.Equal(t, "09:00", cfg.OpenTime.String())
	assert.Equal(t, "17:00", cfg.CloseTime.String())
	assert.Equal(t, 30*time.Minute, cfg.SlotDuration())
	assert.False(t, cfg.IsPersisted())

	today := time.Date(2026, 10, 16, 15, 4, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2027, 1, 14, 0, 0, 0, 0, time.UTC), cfg.LastDay(today))
}

func TestNaive(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	ts := time.Date(2026, 10, 19, 9, 30, 15, 999, loc)

	assert.Equal(t, time.Date(2026, 10, 19, 9, 30, 15, 0, time.UTC), Naive(ts))
}

func TestParseDateTime(t *testing.T) {
	ts, err := ParseDateTime("2026-10-19 09:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC), ts)

	_, err = ParseDateTime("19.10.2026 09:30")
	assert.Error(t, err)
}

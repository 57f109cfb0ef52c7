package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/pkg/types"
)

// 2026-10-19 is a Monday
var monday = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

func weekdays(t *testing.T, days ...int) domain.WeekdaySet {
	t.Helper()
	set, err := domain.NewWeekdaySet(days...)
	require.NoError(t, err)
	return set
}

func newConfig(t *testing.T, nonWorking []int, horizon int, open, closing string, duration int) *domain.ScheduleConfig {
	t.Helper()
	return &domain.ScheduleConfig{
		NonWorkingWeekdays:  weekdays(t, nonWorking...),
		HorizonDays:         horizon,
		OpenTime:            types.MustTimeString(open),
		CloseTime:           types.MustTimeString(closing),
		SlotDurationMinutes: duration,
	}
}

func TestGenerate_MondayScenario(t *testing.T) {
	require.Equal(t, time.Monday, monday.Weekday())

	cfg := newConfig(t, []int{5, 6}, 1, "09:00", "10:00", 30)

	// horizon = 1 covers Monday and Tuesday
	got := Generate(cfg, monday)
	require.Len(t, got, 4)

	assert.Equal(t, monday, got[0].Date)
	assert.Equal(t, types.TimeString("09:00"), got[0].Time)
	assert.Equal(t, monday, got[1].Date)
	assert.Equal(t, types.TimeString("09:30"), got[1].Time)
	assert.Equal(t, monday.AddDate(0, 0, 1), got[2].Date)
	assert.Equal(t, types.TimeString("09:00"), got[2].Time)
}

func TestGenerate_MondayOnly(t *testing.T) {
	cfg := newConfig(t, []int{5, 6}, 0, "09:00", "10:00", 30)

	got := Generate(cfg, monday)
	require.Len(t, got, 2)
	assert.Equal(t, time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC), got[0].StartsAt())
	assert.Equal(t, time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC), got[1].StartsAt())

	reserved := []time.Time{time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)}
	available := ExcludeReserved(got, reserved)
	require.Len(t, available, 1)
	assert.Equal(t, types.TimeString("09:30"), available[0].Time)
}

func TestGenerate_ZeroHorizonOnNonWorkingDay(t *testing.T) {
	saturday := monday.AddDate(0, 0, 5)
	require.Equal(t, time.Saturday, saturday.Weekday())

	cfg := newConfig(t, []int{5, 6}, 0, "09:00", "17:00", 30)

	assert.Empty(t, Generate(cfg, saturday))
}

func TestGenerate_AllDaysNonWorking(t *testing.T) {
	cfg := newConfig(t, []int{0, 1, 2, 3, 4, 5, 6}, 30, "09:00", "17:00", 30)

	assert.Empty(t, Generate(cfg, monday))
}

func TestGenerate_SweepsWholeHorizon(t *testing.T) {
	// first days of the horizon are non-working, later days still produce slots
	saturday := monday.AddDate(0, 0, 5)
	cfg := newConfig(t, []int{5, 6}, 3, "09:00", "10:00", 60)

	got := Generate(cfg, saturday)
	require.Len(t, got, 2)
	assert.Equal(t, time.Monday, got[0].Date.Weekday())
	assert.Equal(t, time.Tuesday, got[1].Date.Weekday())
}

func TestGenerate_BoundsAndStep(t *testing.T) {
	tests := []struct {
		name     string
		open     string
		closing  string
		duration int
		perDay   int
	}{
		{name: "default hours", open: "09:00", closing: "17:00", duration: 30, perDay: 16},
		{name: "hourly", open: "08:00", closing: "12:00", duration: 60, perDay: 4},
		{name: "uneven duration keeps overrunning start", open: "09:00", closing: "10:00", duration: 25, perDay: 3},
		{name: "slot one minute before close", open: "09:00", closing: "09:31", duration: 30, perDay: 2},
		{name: "late evening", open: "22:00", closing: "23:59", duration: 45, perDay: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newConfig(t, nil, 2, tt.open, tt.closing, tt.duration)
			got := Generate(cfg, monday)
			require.Len(t, got, 3*tt.perDay)

			for i, slot := range got {
				assert.False(t, slot.Time.IsBefore(cfg.OpenTime), "slot %s before open", slot.Time)
				assert.True(t, slot.Time.IsBefore(cfg.CloseTime), "slot %s not before close", slot.Time)

				if i > 0 {
					prev := got[i-1]
					assert.True(t, prev.StartsAt().Before(slot.StartsAt()), "slots must be ascending")
					if prev.Date.Equal(slot.Date) {
						assert.Equal(t, tt.duration, slot.Time.Minutes()-prev.Time.Minutes())
					}
				}
			}
		})
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	cfg := newConfig(t, []int{6}, 14, "09:00", "17:00", 30)

	first := Generate(cfg, monday)
	second := Generate(cfg, monday)

	assert.Equal(t, first, second)
	assert.Equal(t, 14, cfg.HorizonDays)
}

func TestGenerate_InvalidConfig(t *testing.T) {
	assert.Empty(t, Generate(nil, monday))
	assert.Empty(t, Generate(newConfig(t, nil, 1, "09:00", "17:00", 0), monday))
	assert.Empty(t, Generate(newConfig(t, nil, 1, "17:00", "09:00", 30), monday))
}

func TestExcludeReserved_SecondPrecision(t *testing.T) {
	cfg := newConfig(t, nil, 0, "09:00", "10:00", 30)
	all := Generate(cfg, monday)

	reserved := []time.Time{time.Date(2026, 10, 19, 9, 30, 0, 400, time.UTC)}
	available := ExcludeReserved(all, reserved)

	require.Len(t, available, 1)
	assert.Equal(t, types.TimeString("09:00"), available[0].Time)
}

func TestContains(t *testing.T) {
	cfg := newConfig(t, []int{5, 6}, 7, "09:00", "17:00", 30)

	tests := []struct {
		name string
		ts   time.Time
		want bool
	}{
		{name: "first slot", ts: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC), want: true},
		{name: "last slot", ts: time.Date(2026, 10, 19, 16, 30, 0, 0, time.UTC), want: true},
		{name: "close time is exclusive", ts: time.Date(2026, 10, 19, 17, 0, 0, 0, time.UTC), want: false},
		{name: "before open", ts: time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC), want: false},
		{name: "off grid", ts: time.Date(2026, 10, 19, 9, 15, 0, 0, time.UTC), want: false},
		{name: "weekend", ts: time.Date(2026, 10, 24, 9, 0, 0, 0, time.UTC), want: false},
		{name: "past day", ts: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC), want: false},
		{name: "last horizon day", ts: time.Date(2026, 10, 26, 9, 0, 0, 0, time.UTC), want: true},
		{name: "beyond horizon", ts: time.Date(2026, 10, 27, 9, 0, 0, 0, time.UTC), want: false},
		{name: "seconds set", ts: time.Date(2026, 10, 19, 9, 0, 1, 0, time.UTC), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Contains(cfg, monday, tt.ts))
		})
	}
}

func TestContains_AgreesWithGenerate(t *testing.T) {
	cfg := newConfig(t, []int{2}, 10, "08:15", "18:40", 35)

	for _, slot := range Generate(cfg, monday) {
		assert.True(t, Contains(cfg, monday, slot.StartsAt()), "slot %v", slot.StartsAt())
	}
}

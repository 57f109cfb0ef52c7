package domain

import (
	"time"

	"github.com/m04kA/SMC-SlotBooking/pkg/types"
)

// ScheduleConfig represents the provider's working-hour constraints
// There is a single configuration per deployment (ID = ScheduleConfigID)
type ScheduleConfig struct {
	ID                  int64
	NonWorkingWeekdays  WeekdaySet
	HorizonDays         int
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	SlotDurationMinutes int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DefaultScheduleConfig returns the configuration used until one is persisted
func DefaultScheduleConfig() *ScheduleConfig {
	return &ScheduleConfig{
		ID:                  ScheduleConfigID,
		NonWorkingWeekdays:  0,
		HorizonDays:         DefaultHorizonDays,
		OpenTime:            types.TimeString(DefaultOpenTime),
		CloseTime:           types.TimeString(DefaultCloseTime),
		SlotDurationMinutes: DefaultSlotDurationMinutes,
	}
}

// IsPersisted returns true if the configuration came from storage
func (c *ScheduleConfig) IsPersisted() bool {
	return !c.CreatedAt.IsZero()
}

// IsWorkingDay returns true if slots are offered on the date
func (c *ScheduleConfig) IsWorkingDay(date time.Time) bool {
	return !c.NonWorkingWeekdays.ContainsDate(date)
}

// SlotDuration returns the slot duration as time.Duration
func (c *ScheduleConfig) SlotDuration() time.Duration {
	return time.Duration(c.SlotDurationMinutes) * time.Minute
}

// LastDay returns the last calendar day of the booking horizon starting at today
func (c *ScheduleConfig) LastDay(today time.Time) time.Time {
	return StartOfDay(today).AddDate(0, 0, c.HorizonDays)
}

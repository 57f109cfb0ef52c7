package domain

import (
	"time"

	"github.com/m04kA/SMC-SlotBooking/pkg/types"
)

// Slot is a candidate (date, time) pair at which an appointment could be booked
// Slots are derived from ScheduleConfig and never stored
type Slot struct {
	Date time.Time // midnight of the slot's day
	Time types.TimeString
}

// StartsAt combines the date and time of day into a timestamp
func (s Slot) StartsAt() time.Time {
	return s.Time.On(s.Date)
}

// Key returns the second-precision key used to match slots against reservations
func (s Slot) Key() int64 {
	return SlotKey(s.StartsAt())
}

// SlotKey normalises a timestamp to second precision
func SlotKey(t time.Time) int64 {
	return t.Truncate(time.Second).Unix()
}

// StartOfDay returns midnight of the given day in its location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Naive drops the location of t keeping its wall clock
// All timestamps in the system are naive and compared in UTC
func Naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// ParseDateTime parses "YYYY-MM-DD HH:MM" into a naive timestamp
func ParseDateTime(s string) (time.Time, error) {
	return time.Parse(DateTimeFormat, s)
}

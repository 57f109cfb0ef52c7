package domain

import (
	"fmt"
	"sort"
	"time"
)

// WeekdayIndex is a day of week with Monday = 0 ... Sunday = 6
type WeekdayIndex int

const (
	Monday WeekdayIndex = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// WeekdayOf returns the index of the date's weekday
func WeekdayOf(date time.Time) WeekdayIndex {
	return WeekdayIndex((int(date.Weekday()) + 6) % 7)
}

// Valid reports whether the index is within 0..6
func (w WeekdayIndex) Valid() bool {
	return w >= Monday && w <= Sunday
}

// WeekdaySet is a bit set of weekday indices
type WeekdaySet uint8

// NewWeekdaySet builds a set, rejecting indices outside 0..6
func NewWeekdaySet(days ...int) (WeekdaySet, error) {
	var set WeekdaySet
	for _, d := range days {
		w := WeekdayIndex(d)
		if !w.Valid() {
			return 0, fmt.Errorf("weekday index %d out of range 0..6", d)
		}
		set = set.With(w)
	}
	return set, nil
}

// With returns a copy of the set including w
func (s WeekdaySet) With(w WeekdayIndex) WeekdaySet {
	return s | 1<<uint(w)
}

// Contains reports whether w is in the set
func (s WeekdaySet) Contains(w WeekdayIndex) bool {
	return w.Valid() && s&(1<<uint(w)) != 0
}

// ContainsDate reports whether the date falls on a weekday in the set
func (s WeekdaySet) ContainsDate(date time.Time) bool {
	return s.Contains(WeekdayOf(date))
}

// IsFull reports whether every day of the week is in the set
func (s WeekdaySet) IsFull() bool {
	return s&0x7f == 0x7f
}

// Ints returns the indices in ascending order
func (s WeekdaySet) Ints() []int {
	days := make([]int, 0, 7)
	for w := Monday; w <= Sunday; w++ {
		if s.Contains(w) {
			days = append(days, int(w))
		}
	}
	sort.Ints(days)
	return days
}

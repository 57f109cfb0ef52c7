package domain

import "time"

// Default configuration values (used until the provider saves a configuration)
const (
	DefaultHorizonDays         = 90
	DefaultOpenTime            = "09:00"
	DefaultCloseTime           = "17:00"
	DefaultSlotDurationMinutes = 30
)

// ScheduleConfigID is the primary key of the singleton configuration row
const ScheduleConfigID int64 = 1

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MinHorizonDays         = 0
	MaxHorizonDays         = 365 // 1 year
	MaxClientNameLength    = 100
	MaxClientEmailLength   = 120
)

// CancellationWindow is the minimum lead time a client must leave before cancelling
const CancellationWindow = 48 * time.Hour

// Time format constants
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04" // YYYY-MM-DD HH:MM
)

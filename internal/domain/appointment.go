package domain

import (
	"strings"
	"time"
)

// Appointment is a client-attributed reservation of one slot
// At most one appointment exists per StartsAt
type Appointment struct {
	ID          int64
	ClientName  string
	ClientEmail string
	StartsAt    time.Time // naive, second precision
	Paid        bool      // opaque, never interpreted

	CreatedAt time.Time
}

// TimeUntilStart returns how long remains until the appointment starts
func (a *Appointment) TimeUntilStart(now time.Time) time.Duration {
	return a.StartsAt.Sub(now)
}

// CanBeCancelledBy applies the cancellation policy
// Providers may cancel at any time; clients only while at least CancellationWindow remains
func (a *Appointment) CanBeCancelledBy(role Role, now time.Time) bool {
	if role == RoleProvider {
		return true
	}
	return a.TimeUntilStart(now) >= CancellationWindow
}

// BelongsTo returns true if the appointment was booked for the given email
func (a *Appointment) BelongsTo(email string) bool {
	return strings.EqualFold(strings.TrimSpace(a.ClientEmail), strings.TrimSpace(email))
}

// IsPast returns true if the appointment has already started
func (a *Appointment) IsPast(now time.Time) bool {
	return !a.StartsAt.After(now)
}

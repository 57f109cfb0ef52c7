package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointment_CanBeCancelledBy(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		startsIn time.Duration
		role     Role
		want     bool
	}{
		{name: "client just inside window", startsIn: 47*time.Hour + 59*time.Minute, role: RoleClient, want: false},
		{name: "client exactly at window", startsIn: 48 * time.Hour, role: RoleClient, want: true},
		{name: "client well ahead", startsIn: 10 * 24 * time.Hour, role: RoleClient, want: true},
		{name: "client after start", startsIn: -time.Hour, role: RoleClient, want: false},
		{name: "provider inside window", startsIn: 47*time.Hour + 59*time.Minute, role: RoleProvider, want: true},
		{name: "provider at window", startsIn: 48 * time.Hour, role: RoleProvider, want: true},
		{name: "provider after start", startsIn: -time.Hour, role: RoleProvider, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{StartsAt: now.Add(tt.startsIn)}
			assert.Equal(t, tt.want, a.CanBeCancelledBy(tt.role, now))
		})
	}
}

func TestAppointment_BelongsTo(t *testing.T) {
	a := &Appointment{ClientEmail: "Ann@Example.com"}

	assert.True(t, a.BelongsTo("ann@example.com"))
	assert.True(t, a.BelongsTo(" ANN@EXAMPLE.COM "))
	assert.False(t, a.BelongsTo("bob@example.com"))
}

func TestAppointment_IsPast(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	assert.True(t, (&Appointment{StartsAt: now}).IsPast(now))
	assert.False(t, (&Appointment{StartsAt: now.Add(time.Minute)}).IsPast(now))
}

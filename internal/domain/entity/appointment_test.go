package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{StatusScheduled, StatusConfirmed, true},
		{StatusScheduled, StatusCancelled, true},
		{StatusScheduled, StatusUnderConsultation, false},
		{StatusScheduled, StatusCompleted, false},
		{StatusConfirmed, StatusUnderConsultation, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, false},
		{StatusConfirmed, StatusScheduled, false},
		{StatusUnderConsultation, StatusCompleted, true},
		{StatusUnderConsultation, StatusCancelled, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusScheduled, false},
		{StatusCancelled, StatusScheduled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusScheduled, StatusScheduled, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusScheduled.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusUnderConsultation.IsTerminal())
}

func TestOccupies(t *testing.T) {
	assert.True(t, StatusScheduled.Occupies())
	assert.True(t, StatusConfirmed.Occupies())
	assert.True(t, StatusUnderConsultation.Occupies())
	assert.False(t, StatusCompleted.Occupies())
	assert.False(t, StatusCancelled.Occupies())
}

func TestParseAppointmentStatus(t *testing.T) {
	status, ok := ParseAppointmentStatus("under_consultation")
	assert.True(t, ok)
	assert.Equal(t, StatusUnderConsultation, status)

	_, ok = ParseAppointmentStatus("archived")
	assert.False(t, ok)

	_, ok = ParseAppointmentStatus("")
	assert.False(t, ok)
}

func TestDisplayStatus(t *testing.T) {
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	tests := []struct {
		name   string
		status AppointmentStatus
		date   time.Time
		portal Portal
		want   string
	}{
		{"cancelled wins on any portal", StatusCancelled, today, PortalAdmin, "Cancelled"},
		{"cancelled wins even today", StatusCancelled, today, PortalPatient, "Cancelled"},
		{"completed staff wording", StatusCompleted, tomorrow, PortalDoctor, "Appointment Done"},
		{"completed patient wording", StatusCompleted, tomorrow, PortalPatient, "Completed"},
		{"completed today still done", StatusCompleted, today, PortalAdmin, "Appointment Done"},
		{"same day overrides scheduled", StatusScheduled, today, PortalDoctor, "Today Scheduled"},
		{"same day overrides confirmed", StatusConfirmed, today, PortalPatient, "Today Scheduled"},
		{"future scheduled staff wording", StatusScheduled, tomorrow, PortalReceptionist, "Appointment Booked"},
		{"future scheduled patient wording", StatusScheduled, tomorrow, PortalPatient, "Scheduled"},
		{"future confirmed title case", StatusConfirmed, tomorrow, PortalAdmin, "Confirmed"},
		{"under consultation title case", StatusUnderConsultation, tomorrow, PortalDoctor, "Under Consultation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayStatus(tt.status, tt.date, today, tt.portal))
		})
	}
}

func TestDoctorIsBookable(t *testing.T) {
	doctor := &Doctor{IsActive: true, IsVerified: true}
	assert.True(t, doctor.IsBookable())

	assert.False(t, (&Doctor{IsActive: false, IsVerified: true}).IsBookable())
	assert.False(t, (&Doctor{IsActive: true, IsVerified: false}).IsBookable())
}

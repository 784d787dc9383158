package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusIsValid(t *testing.T) {
	for _, status := range []AppointmentStatus{
		AppointmentStatusPending,
		AppointmentStatusConfirmed,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
	} {
		assert.True(t, status.IsValid(), "expected %s to be valid", status)
	}

	assert.False(t, AppointmentStatus("scheduled").IsValid())
	assert.False(t, AppointmentStatus("").IsValid())
}

func TestAppointmentCanTransitionTo(t *testing.T) {
	statuses := []AppointmentStatus{
		AppointmentStatusPending,
		AppointmentStatusConfirmed,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
	}

	allowed := map[AppointmentStatus]map[AppointmentStatus]bool{
		AppointmentStatusPending: {
			AppointmentStatusConfirmed: true,
			AppointmentStatusCancelled: true,
		},
		AppointmentStatusConfirmed: {
			AppointmentStatusCompleted: true,
			AppointmentStatusCancelled: true,
		},
		AppointmentStatusCompleted: {},
		AppointmentStatusCancelled: {},
	}

	for _, from := range statuses {
		for _, to := range statuses {
			appointment := &Appointment{Status: from}
			want := from == to || allowed[from][to]
			got := appointment.CanTransitionTo(to)
			assert.Equal(t, want, got, "transition %s -> %s", from, to)
		}
	}
}

func TestAppointmentSameStatusIsLegalNoOp(t *testing.T) {
	for _, status := range []AppointmentStatus{
		AppointmentStatusPending,
		AppointmentStatusConfirmed,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
	} {
		appointment := &Appointment{Status: status}
		assert.True(t, appointment.CanTransitionTo(status), "writing back %s should be allowed", status)
	}
}

func TestAppointmentIsTerminal(t *testing.T) {
	assert.False(t, (&Appointment{Status: AppointmentStatusPending}).IsTerminal())
	assert.False(t, (&Appointment{Status: AppointmentStatusConfirmed}).IsTerminal())
	assert.True(t, (&Appointment{Status: AppointmentStatusCompleted}).IsTerminal())
	assert.True(t, (&Appointment{Status: AppointmentStatusCancelled}).IsTerminal())
}

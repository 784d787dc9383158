package usecase

import (
	"testing"
	"time"

	"pet-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appointmentOn(date time.Time, status entity.AppointmentStatus) entity.Appointment {
	return entity.Appointment{
		ID:     uuid.New(),
		Date:   date,
		Time:   "10:00",
		Status: status,
		Customer: entity.Customer{
			ID:    uuid.New(),
			Name:  "Jordan Reyes",
			Email: "jordan@example.com",
		},
		Pet:    entity.Pet{ID: uuid.New(), Name: "Milo"},
		Doctor: entity.Doctor{ID: uuid.New(), Name: "Dr. Patel"},
	}
}

func TestBuildNotificationsTypesAndPriorities(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	confirmed := []entity.Appointment{appointmentOn(today, entity.AppointmentStatusConfirmed)}
	pending := []entity.Appointment{appointmentOn(today.AddDate(0, 0, 3), entity.AppointmentStatusPending)}
	contacts := []entity.ContactMessage{{
		ID:        uuid.New(),
		Name:      "Sam Okafor",
		Email:     "sam@example.com",
		Subject:   "Boarding question",
		CreatedAt: today.AddDate(0, 0, -2),
	}}

	notifications := buildNotifications(confirmed, pending, contacts)
	require.Len(t, notifications, 3)

	// High priority pending alert first, then the confirmed appointment,
	// then the contact message.
	assert.Equal(t, "alert", notifications[0].Type)
	assert.Equal(t, "high", notifications[0].Priority)
	assert.Equal(t, "appointment", notifications[1].Type)
	assert.Equal(t, "medium", notifications[1].Priority)
	assert.Equal(t, "info", notifications[2].Type)
	assert.Equal(t, "low", notifications[2].Priority)

	for _, n := range notifications {
		assert.False(t, n.IsRead, "synthesized notifications are never read")
	}
}

func TestBuildNotificationsOrdersByDateWithinPriority(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	later := appointmentOn(today.AddDate(0, 0, 5), entity.AppointmentStatusPending)
	sooner := appointmentOn(today.AddDate(0, 0, 1), entity.AppointmentStatusPending)

	notifications := buildNotifications(nil, []entity.Appointment{sooner, later}, nil)
	require.Len(t, notifications, 2)

	// Newest date first within the same priority
	assert.Equal(t, later.ID.String(), notifications[0].AppointmentID)
	assert.Equal(t, sooner.ID.String(), notifications[1].AppointmentID)
}

func TestBuildNotificationsMessages(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	confirmed := appointmentOn(today, entity.AppointmentStatusConfirmed)

	notifications := buildNotifications([]entity.Appointment{confirmed}, nil, nil)
	require.Len(t, notifications, 1)

	assert.Equal(t, "Upcoming appointment for Milo with Dr. Patel on 2025-06-15 at 10:00", notifications[0].Message)
	assert.Equal(t, "jordan@example.com", notifications[0].UserEmail)
	assert.Equal(t, "appointment-"+confirmed.ID.String(), notifications[0].ID)
}

func TestBuildNotificationsEmptyInputs(t *testing.T) {
	notifications := buildNotifications(nil, nil, nil)
	assert.Empty(t, notifications)
}

func TestPriorityRank(t *testing.T) {
	assert.Greater(t, priorityRank("high"), priorityRank("medium"))
	assert.Greater(t, priorityRank("medium"), priorityRank("low"))
	assert.Greater(t, priorityRank("low"), priorityRank("unknown"))
}

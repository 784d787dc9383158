package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// IsValid reports whether s is a member of the closed status set
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment represents a scheduled visit linking an owner, pet and doctor
type Appointment struct {
	ID         uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CustomerID uuid.UUID         `gorm:"type:uuid;not null;index" json:"customer_id"`
	PetID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"pet_id"`
	DoctorID   uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Date       time.Time         `gorm:"type:date;not null;index" json:"date"`
	Time       string            `gorm:"type:varchar(8);not null" json:"time"`
	Status     AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Type       string            `gorm:"column:appointment_type;type:varchar(100)" json:"appointment_type,omitempty"`
	Reason     string            `gorm:"column:reason_for_visit;type:text" json:"reason_for_visit,omitempty"`
	Notes      string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Pet      Pet      `gorm:"foreignKey:PetID" json:"pet,omitempty"`
	Doctor   Doctor   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if the appointment is still awaiting approval
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsConfirmed checks if the appointment has been approved
func (a *Appointment) IsConfirmed() bool {
	return a.Status == AppointmentStatusConfirmed
}

// IsTerminal reports whether no further transition is allowed
func (a *Appointment) IsTerminal() bool {
	return a.Status == AppointmentStatusCompleted || a.Status == AppointmentStatusCancelled
}

// CanTransitionTo reports whether moving from the current status to target
// is a legal lifecycle transition. Writing the current status back is treated
// as a legal no-op.
//
//	pending   -> confirmed, cancelled
//	confirmed -> completed, cancelled
//	completed -> (terminal)
//	cancelled -> (terminal)
func (a *Appointment) CanTransitionTo(target AppointmentStatus) bool {
	if a.Status == target {
		return true
	}
	switch a.Status {
	case AppointmentStatusPending:
		return target == AppointmentStatusConfirmed || target == AppointmentStatusCancelled
	case AppointmentStatusConfirmed:
		return target == AppointmentStatusCompleted || target == AppointmentStatusCancelled
	}
	return false
}

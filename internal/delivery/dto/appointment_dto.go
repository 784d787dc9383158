package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid"`
	PetID      string `json:"pet_id" validate:"required,uuid"`
	DoctorID   string `json:"doctor_id" validate:"required,uuid"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Time       string `json:"time" validate:"required"`
	Type       string `json:"appointment_type" validate:"omitempty,max=100"`
	Reason     string `json:"reason_for_visit" validate:"omitempty"`
	Notes      string `json:"notes" validate:"omitempty"`
}

type UpdateAppointmentRequest struct {
	PetID    string `json:"pet_id" validate:"omitempty,uuid"`
	DoctorID string `json:"doctor_id" validate:"omitempty,uuid"`
	Date     string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time     string `json:"time" validate:"omitempty"`
	Type     string `json:"appointment_type" validate:"omitempty,max=100"`
	Reason   string `json:"reason_for_visit" validate:"omitempty"`
	Notes    string `json:"notes" validate:"omitempty"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

type AppointmentResponse struct {
	ID           uuid.UUID `json:"id"`
	CustomerID   uuid.UUID `json:"customer_id"`
	CustomerName string    `json:"customer_name,omitempty"`
	OwnerEmail   string    `json:"owner_email,omitempty"`
	PetID        uuid.UUID `json:"pet_id"`
	PetName      string    `json:"pet_name,omitempty"`
	DoctorID     uuid.UUID `json:"doctor_id"`
	DoctorName   string    `json:"doctor_name,omitempty"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Status       string    `json:"status"`
	Type         string    `json:"appointment_type,omitempty"`
	Reason       string    `json:"reason_for_visit,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDoctorRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"omitempty,min=7,max=20"`
	Specialization string `json:"specialization" validate:"required,max=100"`
	Experience     int    `json:"experience" validate:"omitempty,gte=0"`
	Education      string `json:"education" validate:"omitempty,max=255"`
	Available      *bool  `json:"available" validate:"omitempty"`
}

type UpdateDoctorRequest struct {
	Name           string `json:"name" validate:"omitempty,min=2,max=100"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone" validate:"omitempty,min=7,max=20"`
	Specialization string `json:"specialization" validate:"omitempty,max=100"`
	Experience     *int   `json:"experience" validate:"omitempty,gte=0"`
	Education      string `json:"education" validate:"omitempty,max=255"`
	Available      *bool  `json:"available" validate:"omitempty"`
}

type DoctorResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Specialization string    `json:"specialization"`
	Experience     int       `json:"experience"`
	Education      string    `json:"education,omitempty"`
	Available      bool      `json:"available"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

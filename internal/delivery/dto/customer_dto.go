package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=255"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"omitempty,min=7,max=20"`
}

type UpdateCustomerRequest struct {
	Name     string `json:"name" validate:"omitempty,min=2,max=255"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty,min=7,max=20"`
	IsActive *bool  `json:"is_active" validate:"omitempty"`
}

type CustomerResponse struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone,omitempty"`
	IsActive  bool          `json:"is_active"`
	Pets      []PetResponse `json:"pets,omitempty"`
	TotalPets int           `json:"total_pets"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
	Total     int                `json:"total"`
}

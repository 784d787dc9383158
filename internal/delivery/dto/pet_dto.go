package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePetRequest struct {
	OwnerID string `json:"owner_id" validate:"required,uuid"`
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Type    string `json:"type" validate:"omitempty,max=100"`
	Breed   string `json:"breed" validate:"omitempty,max=100"`
	Age     int    `json:"age" validate:"omitempty,gte=0"`
	Gender  string `json:"gender" validate:"omitempty,oneof=male female"`
	Weight  string `json:"weight" validate:"omitempty"`
	Notes   string `json:"notes" validate:"omitempty"`
}

type UpdatePetRequest struct {
	Name     string `json:"name" validate:"omitempty,min=1,max=100"`
	Type     string `json:"type" validate:"omitempty,max=100"`
	Breed    string `json:"breed" validate:"omitempty,max=100"`
	Age      *int   `json:"age" validate:"omitempty,gte=0"`
	Gender   string `json:"gender" validate:"omitempty,oneof=male female"`
	Weight   string `json:"weight" validate:"omitempty"`
	Notes    string `json:"notes" validate:"omitempty"`
	IsActive *bool  `json:"is_active" validate:"omitempty"`
}

type PetResponse struct {
	ID        uuid.UUID       `json:"id"`
	OwnerID   uuid.UUID       `json:"owner_id"`
	OwnerName string          `json:"owner_name,omitempty"`
	Name      string          `json:"name"`
	Type      string          `json:"type,omitempty"`
	Breed     string          `json:"breed,omitempty"`
	Age       int             `json:"age"`
	Gender    string          `json:"gender,omitempty"`
	Weight    decimal.Decimal `json:"weight"`
	Notes     string          `json:"notes,omitempty"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type PetListResponse struct {
	Pets  []PetResponse `json:"pets"`
	Total int           `json:"total"`
}

package repository

import (
	"pet-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PetRepository interface {
	Create(db *gorm.DB, pet *entity.Pet) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Pet, error)
	FindAll(db *gorm.DB) ([]entity.Pet, error)
	FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) ([]entity.Pet, error)
	Update(db *gorm.DB, pet *entity.Pet) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	Count(db *gorm.DB) (int64, error)
}

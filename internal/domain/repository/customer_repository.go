package repository

import (
	"pet-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(db *gorm.DB, customer *entity.Customer) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Customer, error)
	FindAllWithPets(db *gorm.DB) ([]entity.Customer, error)
	Update(db *gorm.DB, customer *entity.Customer) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	Count(db *gorm.DB) (int64, error)
}

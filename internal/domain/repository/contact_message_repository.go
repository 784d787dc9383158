package repository

import (
	"time"

	"pet-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ContactMessageRepository interface {
	Create(db *gorm.DB, message *entity.ContactMessage) error
	FindAll(db *gorm.DB) ([]entity.ContactMessage, error)
	FindRecent(db *gorm.DB, since time.Time, limit int) ([]entity.ContactMessage, error)
}

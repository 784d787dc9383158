package repository

import (
	"time"

	"pet-clinic-api/internal/domain/entity"
	domainRepo "pet-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type contactMessageRepository struct{}

func NewContactMessageRepository() domainRepo.ContactMessageRepository {
	return &contactMessageRepository{}
}

func (r *contactMessageRepository) Create(db *gorm.DB, message *entity.ContactMessage) error {
	return db.Create(message).Error
}

func (r *contactMessageRepository) FindAll(db *gorm.DB) ([]entity.ContactMessage, error) {
	var messages []entity.ContactMessage
	err := db.Order("created_at DESC").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *contactMessageRepository) FindRecent(db *gorm.DB, since time.Time, limit int) ([]entity.ContactMessage, error) {
	var messages []entity.ContactMessage
	err := db.Where("created_at >= ?", since).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

package repository

import (
	"errors"

	"pet-clinic-api/internal/domain/entity"
	domainRepo "pet-clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type customerRepository struct{}

func NewCustomerRepository() domainRepo.CustomerRepository {
	return &customerRepository{}
}

func (r *customerRepository) Create(db *gorm.DB, customer *entity.Customer) error {
	return db.Create(customer).Error
}

func (r *customerRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Customer, error) {
	var customer entity.Customer
	err := db.Preload("Pets").Where("id = ?", id).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) FindAllWithPets(db *gorm.DB) ([]entity.Customer, error) {
	var customers []entity.Customer
	err := db.Preload("Pets").Order("created_at DESC").Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepository) Update(db *gorm.DB, customer *entity.Customer) error {
	return db.Save(customer).Error
}

func (r *customerRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Customer{})
	return result.RowsAffected, result.Error
}

func (r *customerRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Customer{}).Count(&count).Error
	return count, err
}

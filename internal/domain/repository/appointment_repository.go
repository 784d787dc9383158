package repository

import (
	"time"

	"pet-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Appointment, error)
	FindByDate(db *gorm.DB, date time.Time) ([]entity.Appointment, error)
	FindByStatusBetween(db *gorm.DB, status entity.AppointmentStatus, from, to time.Time) ([]entity.Appointment, error)
	FindByStatusFrom(db *gorm.DB, status entity.AppointmentStatus, from time.Time) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)

	// Aggregations
	Count(db *gorm.DB) (int64, error)
	CountOnDate(db *gorm.DB, date time.Time) (int64, error)
	CountByStatus(db *gorm.DB) ([]entity.StatusCount, error)
	CountByDoctor(db *gorm.DB) ([]entity.DoctorCount, error)
	CountByMonth(db *gorm.DB) ([]entity.MonthCount, error)
	TopClients(db *gorm.DB, limit int) ([]entity.TopClient, error)
	CountDistinctClients(db *gorm.DB) (int64, error)
}

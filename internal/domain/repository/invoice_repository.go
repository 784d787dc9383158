package repository

import (
	"pet-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvoiceRepository interface {
	Create(db *gorm.DB, invoice *entity.Invoice) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Invoice, error)
	FindAll(db *gorm.DB) ([]entity.Invoice, error)
	FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Invoice, error)
	Update(db *gorm.DB, invoice *entity.Invoice) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)

	// Aggregations
	SumTotal(db *gorm.DB) (decimal.Decimal, error)
	SumTotalByStatuses(db *gorm.DB, statuses []entity.PaymentStatus) (decimal.Decimal, error)
	Count(db *gorm.DB) (int64, error)
	RevenueByMonth(db *gorm.DB) ([]entity.MonthRevenue, error)
	RevenueByDoctor(db *gorm.DB) ([]entity.DoctorRevenue, error)
	RevenueByService(db *gorm.DB) ([]entity.ServiceRevenue, error)
	FindOutstanding(db *gorm.DB) ([]entity.Invoice, error)
}

package repository

import (
	"errors"

	"pet-clinic-api/internal/domain/entity"
	domainRepo "pet-clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type invoiceRepository struct{}

func NewInvoiceRepository() domainRepo.InvoiceRepository {
	return &invoiceRepository{}
}

func (r *invoiceRepository) Create(db *gorm.DB, invoice *entity.Invoice) error {
	return db.Create(invoice).Error
}

func (r *invoiceRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := db.Preload("Customer").Preload("Doctor").Preload("Service").Preload("Pet").
		Where("id = ?", id).First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) FindAll(db *gorm.DB) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := db.Preload("Customer").Preload("Doctor").Preload("Service").
		Order("issue_date DESC, created_at DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *invoiceRepository) FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := db.Preload("Doctor").Preload("Service").
		Where("customer_id = ?", customerID).
		Order("issue_date DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *invoiceRepository) Update(db *gorm.DB, invoice *entity.Invoice) error {
	return db.Save(invoice).Error
}

func (r *invoiceRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Invoice{})
	return result.RowsAffected, result.Error
}

func (r *invoiceRepository) SumTotal(db *gorm.DB) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := db.Model(&entity.Invoice{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}

func (r *invoiceRepository) SumTotalByStatuses(db *gorm.DB, statuses []entity.PaymentStatus) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := db.Model(&entity.Invoice{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("payment_status IN ?", statuses).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}

func (r *invoiceRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Invoice{}).Count(&count).Error
	return count, err
}

func (r *invoiceRepository) RevenueByMonth(db *gorm.DB) ([]entity.MonthRevenue, error) {
	var rows []entity.MonthRevenue
	err := db.Model(&entity.Invoice{}).
		Select("TO_CHAR(issue_date, 'YYYY-MM') AS month, COALESCE(SUM(total_amount), 0) AS revenue").
		Group("TO_CHAR(issue_date, 'YYYY-MM')").
		Order("month ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *invoiceRepository) RevenueByDoctor(db *gorm.DB) ([]entity.DoctorRevenue, error) {
	var rows []entity.DoctorRevenue
	err := db.Model(&entity.Invoice{}).
		Select("invoices.doctor_id, doctors.name AS doctor_name, COALESCE(SUM(invoices.total_amount), 0) AS revenue").
		Joins("JOIN doctors ON doctors.id = invoices.doctor_id").
		Group("invoices.doctor_id, doctors.name").
		Order("revenue DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *invoiceRepository) RevenueByService(db *gorm.DB) ([]entity.ServiceRevenue, error) {
	var rows []entity.ServiceRevenue
	err := db.Model(&entity.Invoice{}).
		Select("invoices.service_id, services.name AS service_name, COALESCE(SUM(invoices.total_amount), 0) AS revenue").
		Joins("JOIN services ON services.id = invoices.service_id").
		Group("invoices.service_id, services.name").
		Order("revenue DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *invoiceRepository) FindOutstanding(db *gorm.DB) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := db.Preload("Customer").
		Where("payment_status IN ?", []entity.PaymentStatus{
			entity.PaymentStatusUnpaid,
			entity.PaymentStatusPartiallyPaid,
			entity.PaymentStatusOverdue,
		}).
		Order("due_date ASC NULLS LAST").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

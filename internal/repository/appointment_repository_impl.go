package repository

import (
	"errors"
	"time"

	"pet-clinic-api/internal/domain/entity"
	domainRepo "pet-clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Customer").Preload("Pet").Preload("Doctor").
		Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Customer").Preload("Pet").Preload("Doctor").
		Order("date DESC, time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Pet").Preload("Doctor").
		Where("customer_id = ?", customerID).
		Order("date DESC, time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDate(db *gorm.DB, date time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Customer").Preload("Pet").Preload("Doctor").
		Where("date = ?", date.Format("2006-01-02")).
		Order("time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByStatusBetween(db *gorm.DB, status entity.AppointmentStatus, from, to time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Customer").Preload("Pet").Preload("Doctor").
		Where("status = ? AND date >= ? AND date <= ?", status, from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("date ASC, time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByStatusFrom(db *gorm.DB, status entity.AppointmentStatus, from time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Customer").Preload("Pet").Preload("Doctor").
		Where("status = ? AND date >= ?", status, from.Format("2006-01-02")).
		Order("date ASC, time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Save(appointment).Error
}

func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error {
	return db.Model(&entity.Appointment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountOnDate(db *gorm.DB, date time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("date = ?", date.Format("2006-01-02")).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountByStatus(db *gorm.DB) ([]entity.StatusCount, error) {
	var rows []entity.StatusCount
	err := db.Model(&entity.Appointment{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *appointmentRepository) CountByDoctor(db *gorm.DB) ([]entity.DoctorCount, error) {
	var rows []entity.DoctorCount
	err := db.Model(&entity.Appointment{}).
		Select("appointments.doctor_id, doctors.name AS doctor_name, COUNT(*) AS count").
		Joins("JOIN doctors ON doctors.id = appointments.doctor_id").
		Group("appointments.doctor_id, doctors.name").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *appointmentRepository) CountByMonth(db *gorm.DB) ([]entity.MonthCount, error) {
	var rows []entity.MonthCount
	err := db.Model(&entity.Appointment{}).
		Select("TO_CHAR(date, 'YYYY-MM') AS month, COUNT(*) AS count").
		Group("TO_CHAR(date, 'YYYY-MM')").
		Order("month ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *appointmentRepository) TopClients(db *gorm.DB, limit int) ([]entity.TopClient, error) {
	var rows []entity.TopClient
	err := db.Model(&entity.Appointment{}).
		Select("appointments.customer_id, customers.name AS customer_name, customers.email, COUNT(*) AS visit_count").
		Joins("JOIN customers ON customers.id = appointments.customer_id").
		Group("appointments.customer_id, customers.name, customers.email").
		Order("visit_count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *appointmentRepository) CountDistinctClients(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Distinct("customer_id").
		Count(&count).Error
	return count, err
}

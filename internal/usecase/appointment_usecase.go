package usecase

import (
	"context"
	"errors"
	"time"

	"pet-clinic-api/internal/converter"
	"pet-clinic-api/internal/delivery/dto"
	"pet-clinic-api/internal/domain/entity"
	"pet-clinic-api/internal/domain/repository"
	"pet-clinic-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrAppointmentCustomer    = errors.New("customer not found")
	ErrAppointmentPet         = errors.New("pet not found")
	ErrAppointmentDoctor      = errors.New("doctor not found")
	ErrPetNotOwnedByCustomer  = errors.New("pet does not belong to customer")
	ErrIllegalTransition      = errors.New("illegal appointment status transition")
	ErrInvalidDate            = errors.New("invalid date value")
	ErrAppointmentHasInvoices = errors.New("appointment still has linked invoices")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	GetAll(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetByCustomer(ctx context.Context, customerID uuid.UUID) (*dto.AppointmentListResponse, error)
	GetToday(ctx context.Context) (*dto.AppointmentListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	customerRepo    repository.CustomerRepository
	petRepo         repository.PetRepository
	doctorRepo      repository.DoctorRepository
	mailer          service.Mailer
	clinicName      string
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	customerRepo repository.CustomerRepository,
	petRepo repository.PetRepository,
	doctorRepo repository.DoctorRepository,
	mailer service.Mailer,
	clinicName string,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		customerRepo:    customerRepo,
		petRepo:         petRepo,
		doctorRepo:      doctorRepo,
		mailer:          mailer,
		clinicName:      clinicName,
	}
}

// Create books an appointment. Every booking starts out pending; confirmation
// is a separate status transition done by staff.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, ErrAppointmentCustomer
	}
	petID, err := uuid.Parse(req.PetID)
	if err != nil {
		return nil, ErrAppointmentPet
	}
	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, ErrAppointmentDoctor
	}

	customer, err := u.customerRepo.FindByID(db, customerID)
	if err != nil {
		u.log.Warnf("Failed to find customer: %+v", err)
		return nil, err
	}
	if customer == nil {
		return nil, ErrAppointmentCustomer
	}

	pet, err := u.petRepo.FindByID(db, petID)
	if err != nil {
		u.log.Warnf("Failed to find pet: %+v", err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrAppointmentPet
	}
	if pet.OwnerID != customerID {
		return nil, ErrPetNotOwnedByCustomer
	}

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrAppointmentDoctor
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	appointment := &entity.Appointment{
		CustomerID: customerID,
		PetID:      petID,
		DoctorID:   doctorID,
		Date:       date,
		Time:       req.Time,
		Status:     entity.AppointmentStatusPending,
		Type:       req.Type,
		Reason:     req.Reason,
		Notes:      req.Notes,
	}

	if err := u.appointmentRepo.Create(db, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	appointment.Customer = *customer
	appointment.Pet = *pet
	appointment.Doctor = *doctor
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAll(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetByCustomer(ctx context.Context, customerID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByCustomerID(u.db.WithContext(ctx), customerID)
	if err != nil {
		u.log.Warnf("Failed to list appointments by customer: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetToday(ctx context.Context) (*dto.AppointmentListResponse, error) {
	today := startOfDay(time.Now())
	appointments, err := u.appointmentRepo.FindByDate(u.db.WithContext(ctx), today)
	if err != nil {
		u.log.Warnf("Failed to list today's appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if req.PetID != "" {
		petID, err := uuid.Parse(req.PetID)
		if err != nil {
			return nil, ErrAppointmentPet
		}
		pet, err := u.petRepo.FindByID(db, petID)
		if err != nil {
			u.log.Warnf("Failed to find pet: %+v", err)
			return nil, err
		}
		if pet == nil {
			return nil, ErrAppointmentPet
		}
		if pet.OwnerID != appointment.CustomerID {
			return nil, ErrPetNotOwnedByCustomer
		}
		appointment.PetID = petID
		appointment.Pet = *pet
	}
	if req.DoctorID != "" {
		doctorID, err := uuid.Parse(req.DoctorID)
		if err != nil {
			return nil, ErrAppointmentDoctor
		}
		doctor, err := u.doctorRepo.FindByID(db, doctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor: %+v", err)
			return nil, err
		}
		if doctor == nil {
			return nil, ErrAppointmentDoctor
		}
		appointment.DoctorID = doctorID
		appointment.Doctor = *doctor
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		appointment.Date = date
	}
	if req.Time != "" {
		appointment.Time = req.Time
	}
	if req.Type != "" {
		appointment.Type = req.Type
	}
	if req.Reason != "" {
		appointment.Reason = req.Reason
	}
	if req.Notes != "" {
		appointment.Notes = req.Notes
	}

	if err := u.appointmentRepo.Update(db, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// UpdateStatus enforces the appointment lifecycle: only the transitions the
// entity allows go through, anything else is rejected as a conflict. Writing
// the current status back succeeds without touching the row.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	target := entity.AppointmentStatus(req.Status)
	if !appointment.CanTransitionTo(target) {
		return nil, ErrIllegalTransition
	}

	if appointment.Status == target {
		return converter.AppointmentToResponse(appointment), nil
	}

	if err := u.appointmentRepo.UpdateStatus(db, id, target); err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}
	appointment.Status = target

	if target == entity.AppointmentStatusConfirmed && appointment.Customer.Email != "" {
		go u.sendConfirmationMail(appointment)
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) sendConfirmationMail(appointment *entity.Appointment) {
	data := service.AppointmentMailData{
		OwnerName:  appointment.Customer.Name,
		PetName:    appointment.Pet.Name,
		DoctorName: appointment.Doctor.Name,
		Date:       appointment.Date.Format("2006-01-02"),
		Time:       appointment.Time,
		Type:       appointment.Type,
		ClinicName: u.clinicName,
	}
	if err := u.mailer.SendAppointmentConfirmation(appointment.Customer.Email, appointment.Customer.Name, data); err != nil {
		u.log.Warnf("Confirmation mail failed for appointment %s (non-fatal): %+v", appointment.ID, err)
	}
}

func (u *appointmentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := u.appointmentRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		if isForeignKeyError(err, "") {
			return ErrAppointmentHasInvoices
		}
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

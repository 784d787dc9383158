package usecase

import (
	"context"
	"time"

	"pet-clinic-api/internal/delivery/dto"
	"pet-clinic-api/internal/domain/repository"
	"pet-clinic-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// EmailUsecase drives the transactional mail endpoints. The lookups load the
// real records so a caller can only mail data that exists.
type EmailUsecase interface {
	SendTest(ctx context.Context, req *dto.TestEmailRequest) error
	SendAppointmentConfirmation(ctx context.Context, req *dto.AppointmentEmailRequest) error
	SendAppointmentReminder(ctx context.Context, req *dto.AppointmentEmailRequest) error
	SendInvoiceAlert(ctx context.Context, req *dto.InvoiceAlertRequest) error
	SendWelcome(ctx context.Context, req *dto.WelcomeEmailRequest) error
	SendPasswordReset(ctx context.Context, req *dto.PasswordResetEmailRequest) error
	SendUserToAdmin(ctx context.Context, req *dto.UserToAdminEmailRequest) error
}

type emailUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	invoiceRepo     repository.InvoiceRepository
	mailer          service.Mailer
	authUsecase     AuthUsecase
	clinicName      string
}

func NewEmailUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	invoiceRepo repository.InvoiceRepository,
	mailer service.Mailer,
	authUsecase AuthUsecase,
	clinicName string,
) EmailUsecase {
	return &emailUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		invoiceRepo:     invoiceRepo,
		mailer:          mailer,
		authUsecase:     authUsecase,
		clinicName:      clinicName,
	}
}

func (u *emailUsecase) SendTest(ctx context.Context, req *dto.TestEmailRequest) error {
	data := service.TestMailData{
		Message:    "SMTP connectivity check",
		Timestamp:  time.Now().Format(time.RFC3339),
		ClinicName: u.clinicName,
	}
	return u.mailer.SendTest(req.Email, data)
}

func (u *emailUsecase) SendAppointmentConfirmation(ctx context.Context, req *dto.AppointmentEmailRequest) error {
	data, email, name, err := u.appointmentMailData(ctx, req.AppointmentID)
	if err != nil {
		return err
	}
	return u.mailer.SendAppointmentConfirmation(email, name, *data)
}

func (u *emailUsecase) SendAppointmentReminder(ctx context.Context, req *dto.AppointmentEmailRequest) error {
	data, email, name, err := u.appointmentMailData(ctx, req.AppointmentID)
	if err != nil {
		return err
	}
	return u.mailer.SendAppointmentReminder(email, name, *data)
}

func (u *emailUsecase) appointmentMailData(ctx context.Context, id string) (*service.AppointmentMailData, string, string, error) {
	appointmentID, err := uuid.Parse(id)
	if err != nil {
		return nil, "", "", ErrAppointmentNotFound
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, "", "", err
	}
	if appointment == nil {
		return nil, "", "", ErrAppointmentNotFound
	}

	data := &service.AppointmentMailData{
		OwnerName:  appointment.Customer.Name,
		PetName:    appointment.Pet.Name,
		DoctorName: appointment.Doctor.Name,
		Date:       appointment.Date.Format("2006-01-02"),
		Time:       appointment.Time,
		Type:       appointment.Type,
		ClinicName: u.clinicName,
	}
	return data, appointment.Customer.Email, appointment.Customer.Name, nil
}

func (u *emailUsecase) SendInvoiceAlert(ctx context.Context, req *dto.InvoiceAlertRequest) error {
	invoiceID, err := uuid.Parse(req.InvoiceID)
	if err != nil {
		return ErrInvoiceNotFound
	}

	invoice, err := u.invoiceRepo.FindByID(u.db.WithContext(ctx), invoiceID)
	if err != nil {
		u.log.Warnf("Failed to find invoice: %+v", err)
		return err
	}
	if invoice == nil {
		return ErrInvoiceNotFound
	}

	data := service.InvoiceMailData{
		OwnerName:     invoice.Customer.Name,
		InvoiceNumber: invoice.InvoiceNumber,
		TotalAmount:   invoice.TotalAmount.StringFixed(2),
		ClinicName:    u.clinicName,
	}
	if invoice.DueDate != nil {
		data.DueDate = invoice.DueDate.Format("2006-01-02")
	}

	return u.mailer.SendInvoiceAlert(invoice.Customer.Email, invoice.Customer.Name, data)
}

func (u *emailUsecase) SendWelcome(ctx context.Context, req *dto.WelcomeEmailRequest) error {
	data := service.WelcomeMailData{
		Name:       req.Name,
		Email:      req.Email,
		ClinicName: u.clinicName,
	}
	return u.mailer.SendWelcome(req.Email, req.Name, data)
}

// SendPasswordReset rides the auth flow so the mailed link carries a token
// that is actually stored and redeemable.
func (u *emailUsecase) SendPasswordReset(ctx context.Context, req *dto.PasswordResetEmailRequest) error {
	return u.authUsecase.RequestPasswordReset(ctx, &dto.PasswordResetRequest{Email: req.Email})
}

func (u *emailUsecase) SendUserToAdmin(ctx context.Context, req *dto.UserToAdminEmailRequest) error {
	data := service.ContactMailData{
		UserName:    req.Name,
		UserEmail:   req.Email,
		Subject:     req.Subject,
		UserMessage: req.Message,
		ClinicName:  u.clinicName,
	}
	return u.mailer.SendUserToAdmin(data)
}

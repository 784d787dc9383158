package service

import (
	"time"

	"pet-clinic-api/internal/domain/entity"
	"pet-clinic-api/internal/domain/repository"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ReminderService mails reminders for tomorrow's confirmed appointments once
// a day. Send failures are logged per appointment and never abort the run.
type ReminderService struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	mailer          Mailer
	clinicName      string
	cron            *cron.Cron
}

func NewReminderService(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	mailer Mailer,
	clinicName string,
) *ReminderService {
	return &ReminderService{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		mailer:          mailer,
		clinicName:      clinicName,
		cron:            cron.New(),
	}
}

// Start schedules the daily run at 08:00 server time
func (s *ReminderService) Start() error {
	_, err := s.cron.AddFunc("0 8 * * *", s.Run)
	if err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info("Appointment reminder job scheduled")
	return nil
}

func (s *ReminderService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Run sends a reminder for every confirmed appointment scheduled tomorrow
func (s *ReminderService) Run() {
	tomorrow := time.Now().AddDate(0, 0, 1)

	appointments, err := s.appointmentRepo.FindByStatusBetween(
		s.db, entity.AppointmentStatusConfirmed, tomorrow, tomorrow)
	if err != nil {
		s.log.Errorf("Reminder job failed to load appointments: %+v", err)
		return
	}

	sent := 0
	for _, appointment := range appointments {
		if appointment.Customer.Email == "" {
			continue
		}

		data := AppointmentMailData{
			OwnerName:  appointment.Customer.Name,
			PetName:    appointment.Pet.Name,
			DoctorName: appointment.Doctor.Name,
			Date:       appointment.Date.Format("2006-01-02"),
			Time:       appointment.Time,
			Type:       appointment.Type,
			ClinicName: s.clinicName,
		}

		if err := s.mailer.SendAppointmentReminder(appointment.Customer.Email, appointment.Customer.Name, data); err != nil {
			s.log.Warnf("Reminder mail failed for appointment %s: %+v", appointment.ID, err)
			continue
		}
		sent++
	}

	s.log.Infof("Reminder job done: %d/%d reminders sent", sent, len(appointments))
}

package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"pet-clinic-api/internal/delivery/dto"
	"pet-clinic-api/internal/domain/entity"
	"pet-clinic-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	notificationTypeAppointment = "appointment"
	notificationTypeAlert       = "alert"
	notificationTypeInfo        = "info"
	notificationTypeReminder    = "reminder"

	priorityHigh   = "high"
	priorityMedium = "medium"
	priorityLow    = "low"

	contactLookback = 7 * 24 * time.Hour
	contactLimit    = 5
	reminderHorizon = 5
)

type NotificationUsecase interface {
	GetAll(ctx context.Context) (*dto.NotificationListResponse, error)
	GetUpcomingReminders(ctx context.Context) (*dto.NotificationListResponse, error)
	MarkRead(ctx context.Context, id string) error
}

type notificationUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	contactRepo     repository.ContactMessageRepository
	now             func() time.Time
}

func NewNotificationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	contactRepo repository.ContactMessageRepository,
) NotificationUsecase {
	return &notificationUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		contactRepo:     contactRepo,
		now:             time.Now,
	}
}

// GetAll synthesizes the notification feed from live data: nothing is stored,
// the same state always produces the same feed.
func (u *notificationUsecase) GetAll(ctx context.Context) (*dto.NotificationListResponse, error) {
	db := u.db.WithContext(ctx)
	now := u.now()
	today := startOfDay(now)

	confirmed, err := u.appointmentRepo.FindByStatusBetween(db, entity.AppointmentStatusConfirmed, today, today.AddDate(0, 0, 1))
	if err != nil {
		u.log.Warnf("Failed to load confirmed appointments: %+v", err)
		return nil, err
	}

	pending, err := u.appointmentRepo.FindByStatusFrom(db, entity.AppointmentStatusPending, today)
	if err != nil {
		u.log.Warnf("Failed to load pending appointments: %+v", err)
		return nil, err
	}

	contacts, err := u.contactRepo.FindRecent(db, now.Add(-contactLookback), contactLimit)
	if err != nil {
		u.log.Warnf("Failed to load recent contact messages: %+v", err)
		return nil, err
	}

	notifications := buildNotifications(confirmed, pending, contacts)

	return &dto.NotificationListResponse{
		Notifications: notifications,
		Total:         len(notifications),
	}, nil
}

// GetUpcomingReminders lists confirmed appointments within the next five days
// as reminder entries.
func (u *notificationUsecase) GetUpcomingReminders(ctx context.Context) (*dto.NotificationListResponse, error) {
	db := u.db.WithContext(ctx)
	today := startOfDay(u.now())

	confirmed, err := u.appointmentRepo.FindByStatusBetween(db, entity.AppointmentStatusConfirmed, today, today.AddDate(0, 0, reminderHorizon))
	if err != nil {
		u.log.Warnf("Failed to load upcoming appointments: %+v", err)
		return nil, err
	}

	notifications := make([]dto.NotificationResponse, 0, len(confirmed))
	for _, appointment := range confirmed {
		notifications = append(notifications, dto.NotificationResponse{
			ID:            fmt.Sprintf("reminder-%s", appointment.ID),
			Message:       appointmentMessage(&appointment),
			Type:          notificationTypeReminder,
			Priority:      priorityMedium,
			Date:          appointment.Date.Format("2006-01-02"),
			UserEmail:     appointment.Customer.Email,
			UserName:      appointment.Customer.Name,
			AppointmentID: appointment.ID.String(),
		})
	}

	return &dto.NotificationListResponse{
		Notifications: notifications,
		Total:         len(notifications),
	}, nil
}

// MarkRead exists for client compatibility. The feed is synthesized and holds
// no read state, so this always succeeds and changes nothing.
func (u *notificationUsecase) MarkRead(ctx context.Context, id string) error {
	return nil
}

// buildNotifications assembles the feed: confirmed appointments due today or
// tomorrow at medium priority, pending requests at high priority, recent
// contact messages at low. Sorted by priority, then newest date first.
func buildNotifications(confirmed, pending []entity.Appointment, contacts []entity.ContactMessage) []dto.NotificationResponse {
	notifications := make([]dto.NotificationResponse, 0, len(confirmed)+len(pending)+len(contacts))

	for _, appointment := range confirmed {
		notifications = append(notifications, dto.NotificationResponse{
			ID:            fmt.Sprintf("appointment-%s", appointment.ID),
			Message:       appointmentMessage(&appointment),
			Type:          notificationTypeAppointment,
			Priority:      priorityMedium,
			Date:          appointment.Date.Format("2006-01-02"),
			UserEmail:     appointment.Customer.Email,
			UserName:      appointment.Customer.Name,
			AppointmentID: appointment.ID.String(),
		})
	}

	for _, appointment := range pending {
		notifications = append(notifications, dto.NotificationResponse{
			ID:            fmt.Sprintf("pending-%s", appointment.ID),
			Message:       pendingMessage(&appointment),
			Type:          notificationTypeAlert,
			Priority:      priorityHigh,
			Date:          appointment.Date.Format("2006-01-02"),
			UserEmail:     appointment.Customer.Email,
			UserName:      appointment.Customer.Name,
			AppointmentID: appointment.ID.String(),
		})
	}

	for _, message := range contacts {
		notifications = append(notifications, dto.NotificationResponse{
			ID:        fmt.Sprintf("contact-%s", message.ID),
			Message:   fmt.Sprintf("New message from %s: %s", message.Name, message.Subject),
			Type:      notificationTypeInfo,
			Priority:  priorityLow,
			Date:      message.CreatedAt.Format("2006-01-02"),
			UserEmail: message.Email,
			UserName:  message.Name,
		})
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		pi, pj := priorityRank(notifications[i].Priority), priorityRank(notifications[j].Priority)
		if pi != pj {
			return pi > pj
		}
		return notifications[i].Date > notifications[j].Date
	})

	return notifications
}

func priorityRank(priority string) int {
	switch priority {
	case priorityHigh:
		return 3
	case priorityMedium:
		return 2
	case priorityLow:
		return 1
	}
	return 0
}

func appointmentMessage(appointment *entity.Appointment) string {
	return fmt.Sprintf("Upcoming appointment for %s with %s on %s at %s",
		appointment.Pet.Name, appointment.Doctor.Name,
		appointment.Date.Format("2006-01-02"), appointment.Time)
}

func pendingMessage(appointment *entity.Appointment) string {
	return fmt.Sprintf("Pending appointment request from %s for %s on %s at %s",
		appointment.Customer.Name, appointment.Pet.Name,
		appointment.Date.Format("2006-01-02"), appointment.Time)
}

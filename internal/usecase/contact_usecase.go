package usecase

import (
	"context"

	"pet-clinic-api/internal/converter"
	"pet-clinic-api/internal/delivery/dto"
	"pet-clinic-api/internal/domain/entity"
	"pet-clinic-api/internal/domain/repository"
	"pet-clinic-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ContactUsecase interface {
	Create(ctx context.Context, req *dto.CreateContactMessageRequest) (*dto.ContactMessageResponse, error)
	GetAll(ctx context.Context) (*dto.ContactMessageListResponse, error)
}

type contactUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	contactRepo repository.ContactMessageRepository
	mailer      service.Mailer
	clinicName  string
}

func NewContactUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	contactRepo repository.ContactMessageRepository,
	mailer service.Mailer,
	clinicName string,
) ContactUsecase {
	return &contactUsecase{
		db:          db,
		log:         log,
		contactRepo: contactRepo,
		mailer:      mailer,
		clinicName:  clinicName,
	}
}

// Create stores the message and forwards a copy to the admin inbox. The mail
// is best effort: a delivery failure never fails the submission.
func (u *contactUsecase) Create(ctx context.Context, req *dto.CreateContactMessageRequest) (*dto.ContactMessageResponse, error) {
	message := &entity.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := u.contactRepo.Create(u.db.WithContext(ctx), message); err != nil {
		u.log.Warnf("Failed to store contact message: %+v", err)
		return nil, err
	}

	go func() {
		data := service.ContactMailData{
			UserName:    message.Name,
			UserEmail:   message.Email,
			Subject:     message.Subject,
			UserMessage: message.Message,
			ClinicName:  u.clinicName,
		}
		if err := u.mailer.SendUserToAdmin(data); err != nil {
			u.log.Warnf("Admin copy of contact message failed (non-fatal): %+v", err)
		}
	}()

	return converter.ContactMessageToResponse(message), nil
}

func (u *contactUsecase) GetAll(ctx context.Context) (*dto.ContactMessageListResponse, error) {
	messages, err := u.contactRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list contact messages: %+v", err)
		return nil, err
	}

	return &dto.ContactMessageListResponse{
		Messages: converter.ContactMessagesToResponses(messages),
		Total:    len(messages),
	}, nil
}

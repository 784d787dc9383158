package usecase

import (
	"context"
	"errors"

	"pet-clinic-api/internal/converter"
	"pet-clinic-api/internal/delivery/dto"
	"pet-clinic-api/internal/domain/entity"
	"pet-clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrServiceNotFound   = errors.New("service not found")
	ErrInvalidPrice      = errors.New("invalid price value")
	ErrServiceHasRecords = errors.New("service still has linked records")
)

type ServiceUsecase interface {
	Create(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ServiceResponse, error)
	GetAll(ctx context.Context) (*dto.ServiceListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type serviceUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	serviceRepo repository.ServiceRepository
}

func NewServiceUsecase(db *gorm.DB, log *logrus.Logger, serviceRepo repository.ServiceRepository) ServiceUsecase {
	return &serviceUsecase{
		db:          db,
		log:         log,
		serviceRepo: serviceRepo,
	}
}

func (u *serviceUsecase) Create(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	service := &entity.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Available:   available,
	}

	if err := u.serviceRepo.Create(u.db.WithContext(ctx), service); err != nil {
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}

	return converter.ServiceToResponse(service), nil
}

func (u *serviceUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.ServiceResponse, error) {
	service, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	return converter.ServiceToResponse(service), nil
}

func (u *serviceUsecase) GetAll(ctx context.Context) (*dto.ServiceListResponse, error) {
	services, err := u.serviceRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list services: %+v", err)
		return nil, err
	}

	return &dto.ServiceListResponse{
		Services: converter.ServicesToResponses(services),
		Total:    len(services),
	}, nil
}

func (u *serviceUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	db := u.db.WithContext(ctx)

	service, err := u.serviceRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	if req.Name != "" {
		service.Name = req.Name
	}
	if req.Description != "" {
		service.Description = req.Description
	}
	if req.Price != "" {
		price, err := decimal.NewFromString(req.Price)
		if err != nil || price.IsNegative() {
			return nil, ErrInvalidPrice
		}
		service.Price = price
	}
	if req.Available != nil {
		service.Available = *req.Available
	}

	if err := u.serviceRepo.Update(db, service); err != nil {
		u.log.Warnf("Failed to update service: %+v", err)
		return nil, err
	}

	return converter.ServiceToResponse(service), nil
}

func (u *serviceUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := u.serviceRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		if isForeignKeyError(err, "") {
			return ErrServiceHasRecords
		}
		u.log.Warnf("Failed to delete service: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrServiceNotFound
	}

	return nil
}

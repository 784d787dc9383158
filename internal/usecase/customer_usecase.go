package usecase

import (
	"context"
	"errors"

	"pet-clinic-api/internal/converter"
	"pet-clinic-api/internal/delivery/dto"
	"pet-clinic-api/internal/domain/entity"
	"pet-clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrCustomerEmailExists = errors.New("customer email already exists")
	ErrCustomerHasRecords  = errors.New("customer still has linked records")
)

type CustomerUsecase interface {
	Create(ctx context.Context, req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error)
	GetAll(ctx context.Context) (*dto.CustomerListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	customerRepo repository.CustomerRepository
}

func NewCustomerUsecase(db *gorm.DB, log *logrus.Logger, customerRepo repository.CustomerRepository) CustomerUsecase {
	return &customerUsecase{
		db:           db,
		log:          log,
		customerRepo: customerRepo,
	}
}

func (u *customerUsecase) Create(ctx context.Context, req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	customer := &entity.Customer{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		IsActive: true,
	}

	if err := u.customerRepo.Create(u.db.WithContext(ctx), customer); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrCustomerEmailExists
		}
		u.log.Warnf("Failed to create customer: %+v", err)
		return nil, err
	}

	return converter.CustomerToResponse(customer), nil
}

func (u *customerUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error) {
	customer, err := u.customerRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find customer: %+v", err)
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	return converter.CustomerToResponse(customer), nil
}

func (u *customerUsecase) GetAll(ctx context.Context) (*dto.CustomerListResponse, error) {
	customers, err := u.customerRepo.FindAllWithPets(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list customers: %+v", err)
		return nil, err
	}

	return &dto.CustomerListResponse{
		Customers: converter.CustomersToResponses(customers),
		Total:     len(customers),
	}, nil
}

func (u *customerUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	db := u.db.WithContext(ctx)

	customer, err := u.customerRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find customer: %+v", err)
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	if req.Name != "" {
		customer.Name = req.Name
	}
	if req.Email != "" {
		customer.Email = req.Email
	}
	if req.Phone != "" {
		customer.Phone = req.Phone
	}
	if req.IsActive != nil {
		customer.IsActive = *req.IsActive
	}

	if err := u.customerRepo.Update(db, customer); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrCustomerEmailExists
		}
		u.log.Warnf("Failed to update customer: %+v", err)
		return nil, err
	}

	return converter.CustomerToResponse(customer), nil
}

func (u *customerUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := u.customerRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		if isForeignKeyError(err, "") {
			return ErrCustomerHasRecords
		}
		u.log.Warnf("Failed to delete customer: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

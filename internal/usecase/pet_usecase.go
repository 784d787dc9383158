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
	ErrPetNotFound      = errors.New("pet not found")
	ErrPetOwnerNotFound = errors.New("owner not found")
	ErrInvalidWeight    = errors.New("invalid weight value")
	ErrPetHasRecords    = errors.New("pet still has linked records")
)

type PetUsecase interface {
	Create(ctx context.Context, req *dto.CreatePetRequest) (*dto.PetResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PetResponse, error)
	GetAll(ctx context.Context) (*dto.PetListResponse, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*dto.PetListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePetRequest) (*dto.PetResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type petUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	petRepo      repository.PetRepository
	customerRepo repository.CustomerRepository
}

func NewPetUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	petRepo repository.PetRepository,
	customerRepo repository.CustomerRepository,
) PetUsecase {
	return &petUsecase{
		db:           db,
		log:          log,
		petRepo:      petRepo,
		customerRepo: customerRepo,
	}
}

func (u *petUsecase) Create(ctx context.Context, req *dto.CreatePetRequest) (*dto.PetResponse, error) {
	db := u.db.WithContext(ctx)

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		return nil, ErrPetOwnerNotFound
	}

	owner, err := u.customerRepo.FindByID(db, ownerID)
	if err != nil {
		u.log.Warnf("Failed to find owner: %+v", err)
		return nil, err
	}
	if owner == nil {
		return nil, ErrPetOwnerNotFound
	}

	weight, err := parseOptionalDecimal(req.Weight)
	if err != nil {
		return nil, ErrInvalidWeight
	}

	pet := &entity.Pet{
		OwnerID:  ownerID,
		Name:     req.Name,
		Type:     req.Type,
		Breed:    req.Breed,
		Age:      req.Age,
		Gender:   req.Gender,
		Weight:   weight,
		Notes:    req.Notes,
		IsActive: true,
	}

	if err := u.petRepo.Create(db, pet); err != nil {
		u.log.Warnf("Failed to create pet: %+v", err)
		return nil, err
	}

	pet.Owner = *owner
	return converter.PetToResponse(pet), nil
}

func (u *petUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PetResponse, error) {
	pet, err := u.petRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find pet: %+v", err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	return converter.PetToResponse(pet), nil
}

func (u *petUsecase) GetAll(ctx context.Context) (*dto.PetListResponse, error) {
	pets, err := u.petRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list pets: %+v", err)
		return nil, err
	}

	return &dto.PetListResponse{
		Pets:  converter.PetsToResponses(pets),
		Total: len(pets),
	}, nil
}

func (u *petUsecase) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*dto.PetListResponse, error) {
	db := u.db.WithContext(ctx)

	owner, err := u.customerRepo.FindByID(db, ownerID)
	if err != nil {
		u.log.Warnf("Failed to find owner: %+v", err)
		return nil, err
	}
	if owner == nil {
		return nil, ErrPetOwnerNotFound
	}

	pets, err := u.petRepo.FindByOwnerID(db, ownerID)
	if err != nil {
		u.log.Warnf("Failed to list pets by owner: %+v", err)
		return nil, err
	}

	return &dto.PetListResponse{
		Pets:  converter.PetsToResponses(pets),
		Total: len(pets),
	}, nil
}

func (u *petUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePetRequest) (*dto.PetResponse, error) {
	db := u.db.WithContext(ctx)

	pet, err := u.petRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find pet: %+v", err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	if req.Name != "" {
		pet.Name = req.Name
	}
	if req.Type != "" {
		pet.Type = req.Type
	}
	if req.Breed != "" {
		pet.Breed = req.Breed
	}
	if req.Age != nil {
		pet.Age = *req.Age
	}
	if req.Gender != "" {
		pet.Gender = req.Gender
	}
	if req.Weight != "" {
		weight, err := decimal.NewFromString(req.Weight)
		if err != nil {
			return nil, ErrInvalidWeight
		}
		pet.Weight = weight
	}
	if req.Notes != "" {
		pet.Notes = req.Notes
	}
	if req.IsActive != nil {
		pet.IsActive = *req.IsActive
	}

	if err := u.petRepo.Update(db, pet); err != nil {
		u.log.Warnf("Failed to update pet: %+v", err)
		return nil, err
	}

	return converter.PetToResponse(pet), nil
}

func (u *petUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := u.petRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		if isForeignKeyError(err, "") {
			return ErrPetHasRecords
		}
		u.log.Warnf("Failed to delete pet: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrPetNotFound
	}

	return nil
}

func parseOptionalDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

package usecase

import (
	"context"
	"testing"

	"pet-clinic-api/internal/delivery/dto"
	"pet-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
	createErr error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[uuid.UUID]*entity.Customer{}}
}

func (f *fakeCustomerRepo) Create(_ *gorm.DB, customer *entity.Customer) error {
	if f.createErr != nil {
		return f.createErr
	}
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) FindByID(_ *gorm.DB, id uuid.UUID) (*entity.Customer, error) {
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) FindAllWithPets(_ *gorm.DB) ([]entity.Customer, error) {
	customers := make([]entity.Customer, 0, len(f.customers))
	for _, customer := range f.customers {
		customers = append(customers, *customer)
	}
	return customers, nil
}

func (f *fakeCustomerRepo) Update(_ *gorm.DB, customer *entity.Customer) error {
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) Delete(_ *gorm.DB, id uuid.UUID) (int64, error) {
	if _, ok := f.customers[id]; !ok {
		return 0, nil
	}
	delete(f.customers, id)
	return 1, nil
}

func (f *fakeCustomerRepo) Count(_ *gorm.DB) (int64, error) {
	return int64(len(f.customers)), nil
}

func TestCustomerCreateDuplicateEmail(t *testing.T) {
	repo := newFakeCustomerRepo()
	repo.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "customers_email_key"}
	usecase := NewCustomerUsecase(testDB(), testLogger(), repo)

	created, err := usecase.Create(context.Background(), &dto.CreateCustomerRequest{
		Name:  "Jordan Reyes",
		Email: "jordan@example.test",
	})
	assert.ErrorIs(t, err, ErrCustomerEmailExists)
	assert.Nil(t, created)
}

func TestCustomerDeleteUnknownID(t *testing.T) {
	repo := newFakeCustomerRepo()
	usecase := NewCustomerUsecase(testDB(), testLogger(), repo)

	seeded, err := usecase.Create(context.Background(), &dto.CreateCustomerRequest{
		Name:  "Jordan Reyes",
		Email: "jordan@example.test",
	})
	require.NoError(t, err)

	err = usecase.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	remaining, err := usecase.GetByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, remaining.ID)
}

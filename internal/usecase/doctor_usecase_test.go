package usecase

import (
	"context"
	"io"
	"testing"

	"pet-clinic-api/internal/delivery/dto"
	"pet-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testDB builds an inert handle for usecases backed by fake repositories.
// Only WithContext is ever called on it.
func testDB() *gorm.DB {
	return &gorm.DB{Config: &gorm.Config{}, Statement: &gorm.Statement{}}
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeDoctorRepo struct {
	doctors   map[uuid.UUID]*entity.Doctor
	createErr error
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: map[uuid.UUID]*entity.Doctor{}}
}

func (f *fakeDoctorRepo) Create(_ *gorm.DB, doctor *entity.Doctor) error {
	if f.createErr != nil {
		return f.createErr
	}
	if doctor.ID == uuid.Nil {
		doctor.ID = uuid.New()
	}
	f.doctors[doctor.ID] = doctor
	return nil
}

func (f *fakeDoctorRepo) FindByID(_ *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	return f.doctors[id], nil
}

func (f *fakeDoctorRepo) FindByEmail(_ *gorm.DB, email string) (*entity.Doctor, error) {
	for _, doctor := range f.doctors {
		if doctor.Email == email {
			return doctor, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) FindAll(_ *gorm.DB) ([]entity.Doctor, error) {
	doctors := make([]entity.Doctor, 0, len(f.doctors))
	for _, doctor := range f.doctors {
		doctors = append(doctors, *doctor)
	}
	return doctors, nil
}

func (f *fakeDoctorRepo) Update(_ *gorm.DB, doctor *entity.Doctor) error {
	f.doctors[doctor.ID] = doctor
	return nil
}

func (f *fakeDoctorRepo) Delete(_ *gorm.DB, id uuid.UUID) (int64, error) {
	if _, ok := f.doctors[id]; !ok {
		return 0, nil
	}
	delete(f.doctors, id)
	return 1, nil
}

func TestDoctorCreateDuplicateEmail(t *testing.T) {
	repo := newFakeDoctorRepo()
	usecase := NewDoctorUsecase(testDB(), testLogger(), repo)

	first, err := usecase.Create(context.Background(), &dto.CreateDoctorRequest{
		Name:           "Dr. Patel",
		Email:          "patel@clinic.test",
		Specialization: "Surgery",
	})
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := usecase.Create(context.Background(), &dto.CreateDoctorRequest{
		Name:           "Dr. Patel Jr.",
		Email:          "patel@clinic.test",
		Specialization: "Dermatology",
	})
	assert.ErrorIs(t, err, ErrDoctorEmailExists)
	assert.Nil(t, second)
	assert.Len(t, repo.doctors, 1)
}

func TestDoctorCreateDuplicateEmailFromUniqueIndex(t *testing.T) {
	// A concurrent insert slips past the pre-check and trips the unique
	// index instead; the violation still maps to the same error.
	repo := newFakeDoctorRepo()
	repo.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "doctors_email_key"}
	usecase := NewDoctorUsecase(testDB(), testLogger(), repo)

	created, err := usecase.Create(context.Background(), &dto.CreateDoctorRequest{
		Name:           "Dr. Patel",
		Email:          "patel@clinic.test",
		Specialization: "Surgery",
	})
	assert.ErrorIs(t, err, ErrDoctorEmailExists)
	assert.Nil(t, created)
}

func TestDoctorDeleteUnknownID(t *testing.T) {
	repo := newFakeDoctorRepo()
	usecase := NewDoctorUsecase(testDB(), testLogger(), repo)

	seeded, err := usecase.Create(context.Background(), &dto.CreateDoctorRequest{
		Name:           "Dr. Patel",
		Email:          "patel@clinic.test",
		Specialization: "Surgery",
	})
	require.NoError(t, err)

	err = usecase.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	// The miss must leave existing rows untouched.
	remaining, err := usecase.GetByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, remaining.ID)
}

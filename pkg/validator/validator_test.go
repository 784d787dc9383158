package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email  string `validate:"required,email"`
	Status string `validate:"required,oneof=pending confirmed completed cancelled"`
	Date   string `validate:"omitempty,datetime=2006-01-02"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{
		Email:  "jordan@example.com",
		Status: "pending",
		Date:   "2025-06-15",
	})
	assert.NoError(t, err)
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{
		Email:  "not-an-email",
		Status: "scheduled",
		Date:   "15/06/2025",
	})
	require.Error(t, err)

	errs := cv.FormatValidationErrors(err)
	assert.Equal(t, "Email must be a valid email address", errs["Email"])
	assert.Equal(t, "Status must be one of: pending confirmed completed cancelled", errs["Status"])
	assert.Equal(t, "Date must match the format 2006-01-02", errs["Date"])
}

func TestFormatValidationErrorsRequired(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{})
	require.Error(t, err)

	errs := cv.FormatValidationErrors(err)
	assert.Equal(t, "Email is required", errs["Email"])
	assert.Equal(t, "Status is required", errs["Status"])
}

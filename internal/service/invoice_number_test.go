package service

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "INV-20250615-001", FormatInvoiceNumber("20250615", 1))
	assert.Equal(t, "INV-20250615-042", FormatInvoiceNumber("20250615", 42))
	assert.Equal(t, "INV-20250615-999", FormatInvoiceNumber("20250615", 999))
}

func TestFormatInvoiceNumberWidensPast999(t *testing.T) {
	assert.Equal(t, "INV-20250615-1000", FormatInvoiceNumber("20250615", 1000))
}

func TestRandomSequenceStaysInRange(t *testing.T) {
	pattern := regexp.MustCompile(`^INV-\d{8}-\d{3,}$`)
	for i := 0; i < 100; i++ {
		seq := randomSequence()
		assert.GreaterOrEqual(t, seq, int64(0))
		assert.Less(t, seq, int64(1000))
		assert.Regexp(t, pattern, FormatInvoiceNumber("20250615", seq))
	}
}

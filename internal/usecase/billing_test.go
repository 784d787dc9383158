package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeInvoiceTotals(t *testing.T) {
	tests := []struct {
		name              string
		servicePrice      string
		additionalCharges string
		discount          string
		taxRate           string
		wantSubtotal      string
		wantTax           string
		wantTotal         string
	}{
		{"price only, no tax", "50.00", "0", "0", "0", "50.00", "0.00", "50.00"},
		{"charges and discount with tax", "1000", "0", "100", "10", "900.00", "90.00", "990.00"},
		{"all inputs", "120.50", "30.25", "10.75", "8.5", "140.00", "11.90", "151.90"},
		{"tax rounds to cents", "99.99", "0", "0", "7.25", "99.99", "7.25", "107.24"},
		{"discount exceeding price goes negative", "10", "0", "25", "0", "-15.00", "0.00", "-15.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := ComputeInvoiceTotals(d(tt.servicePrice), d(tt.additionalCharges), d(tt.discount), d(tt.taxRate))

			assert.True(t, d(tt.wantSubtotal).Equal(totals.Subtotal), "subtotal: want %s got %s", tt.wantSubtotal, totals.Subtotal)
			assert.True(t, d(tt.wantTax).Equal(totals.TaxAmount), "tax: want %s got %s", tt.wantTax, totals.TaxAmount)
			assert.True(t, d(tt.wantTotal).Equal(totals.TotalAmount), "total: want %s got %s", tt.wantTotal, totals.TotalAmount)
		})
	}
}

func TestComputeInvoiceTotalsIsDeterministic(t *testing.T) {
	a := ComputeInvoiceTotals(d("75.50"), d("12.00"), d("5.00"), d("11"))
	b := ComputeInvoiceTotals(d("75.50"), d("12.00"), d("5.00"), d("11"))

	assert.True(t, a.TotalAmount.Equal(b.TotalAmount))
	assert.True(t, a.TaxAmount.Equal(b.TaxAmount))
}

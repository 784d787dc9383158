package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceEffectiveStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	tests := []struct {
		name    string
		status  PaymentStatus
		dueDate *time.Time
		want    PaymentStatus
	}{
		{"unpaid past due is overdue", PaymentStatusUnpaid, &yesterday, PaymentStatusOverdue},
		{"partially paid past due is overdue", PaymentStatusPartiallyPaid, &yesterday, PaymentStatusOverdue},
		{"unpaid not yet due stays unpaid", PaymentStatusUnpaid, &tomorrow, PaymentStatusUnpaid},
		{"unpaid due today stays unpaid", PaymentStatusUnpaid, &now, PaymentStatusUnpaid},
		{"paid past due stays paid", PaymentStatusPaid, &yesterday, PaymentStatusPaid},
		{"cancelled past due stays cancelled", PaymentStatusCancelled, &yesterday, PaymentStatusCancelled},
		{"unpaid without due date stays unpaid", PaymentStatusUnpaid, nil, PaymentStatusUnpaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoice := &Invoice{PaymentStatus: tt.status, DueDate: tt.dueDate}
			assert.Equal(t, tt.want, invoice.EffectiveStatus(now))
		})
	}
}

func TestInvoiceEffectiveStatusWesternTimezone(t *testing.T) {
	// Late evening west of UTC is already past UTC midnight. The day
	// boundary must follow the local clock, so an invoice due today is
	// not overdue yet.
	honolulu := time.FixedZone("HST", -10*3600)
	dueToday := time.Date(2025, 6, 15, 0, 0, 0, 0, honolulu)
	now := time.Date(2025, 6, 15, 23, 30, 0, 0, honolulu)

	invoice := &Invoice{PaymentStatus: PaymentStatusUnpaid, DueDate: &dueToday}
	assert.Equal(t, PaymentStatusUnpaid, invoice.EffectiveStatus(now))

	pastMidnight := time.Date(2025, 6, 16, 0, 30, 0, 0, honolulu)
	assert.Equal(t, PaymentStatusOverdue, invoice.EffectiveStatus(pastMidnight))
}

func TestInvoiceEffectiveStatusDoesNotMutate(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1)
	invoice := &Invoice{PaymentStatus: PaymentStatusUnpaid, DueDate: &yesterday}

	assert.Equal(t, PaymentStatusOverdue, invoice.EffectiveStatus(time.Now()))
	assert.Equal(t, PaymentStatusUnpaid, invoice.PaymentStatus, "stored status must stay untouched")
}

func TestInvoiceIsSettled(t *testing.T) {
	assert.True(t, (&Invoice{PaymentStatus: PaymentStatusPaid}).IsSettled())
	assert.True(t, (&Invoice{PaymentStatus: PaymentStatusCancelled}).IsSettled())
	assert.False(t, (&Invoice{PaymentStatus: PaymentStatusUnpaid}).IsSettled())
	assert.False(t, (&Invoice{PaymentStatus: PaymentStatusPartiallyPaid}).IsSettled())
}

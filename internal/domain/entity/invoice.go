package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the settlement state of an invoice
type PaymentStatus string

const (
	PaymentStatusUnpaid        PaymentStatus = "unpaid"
	PaymentStatusPartiallyPaid PaymentStatus = "partially_paid"
	PaymentStatusPaid          PaymentStatus = "paid"
	PaymentStatusOverdue       PaymentStatus = "overdue"
	PaymentStatusCancelled     PaymentStatus = "cancelled"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusPartiallyPaid, PaymentStatusPaid,
		PaymentStatusOverdue, PaymentStatusCancelled:
		return true
	}
	return false
}

// Invoice is a billing record for a completed or scheduled service
type Invoice struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	InvoiceNumber     string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"invoice_number"`
	CustomerID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id"`
	AppointmentID     *uuid.UUID      `gorm:"type:uuid;index" json:"appointment_id,omitempty"`
	DoctorID          *uuid.UUID      `gorm:"type:uuid;index" json:"doctor_id,omitempty"`
	ServiceID         *uuid.UUID      `gorm:"type:uuid;index" json:"service_id,omitempty"`
	PetID             *uuid.UUID      `gorm:"type:uuid;index" json:"pet_id,omitempty"`
	ServicePrice      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"service_price"`
	AdditionalCharges decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"additional_charges"`
	Discount          decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"discount"`
	TaxRate           decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"tax_rate"`
	TaxAmount         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"tax_amount"`
	TotalAmount       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	IssueDate         time.Time       `gorm:"type:date;not null" json:"issue_date"`
	DueDate           *time.Time      `gorm:"type:date" json:"due_date,omitempty"`
	PaymentStatus     PaymentStatus   `gorm:"type:varchar(20);not null;default:'unpaid';index" json:"payment_status"`
	Notes             string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Customer    Customer     `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Doctor      *Doctor      `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Service     *Service     `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Pet         *Pet         `gorm:"foreignKey:PetID" json:"pet,omitempty"`
}

func (Invoice) TableName() string {
	return "invoices"
}

// IsSettled reports whether the invoice needs no further payment
func (i *Invoice) IsSettled() bool {
	return i.PaymentStatus == PaymentStatusPaid || i.PaymentStatus == PaymentStatusCancelled
}

// EffectiveStatus derives overdue at read time: an unpaid or partially paid
// invoice whose due date has passed reports itself overdue without the stored
// status being rewritten.
func (i *Invoice) EffectiveStatus(now time.Time) PaymentStatus {
	if i.DueDate == nil {
		return i.PaymentStatus
	}
	if i.PaymentStatus != PaymentStatusUnpaid && i.PaymentStatus != PaymentStatusPartiallyPaid {
		return i.PaymentStatus
	}
	// Midnight in now's location, not UTC, so the day does not flip early
	// for clinics west of it.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if i.DueDate.Before(today) {
		return PaymentStatusOverdue
	}
	return i.PaymentStatus
}

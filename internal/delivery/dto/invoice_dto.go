package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Totals are always computed server side; create/update requests carry only
// the inputs of the calculation.

type CreateInvoiceRequest struct {
	CustomerID        string `json:"customer_id" validate:"required,uuid"`
	AppointmentID     string `json:"appointment_id" validate:"omitempty,uuid"`
	DoctorID          string `json:"doctor_id" validate:"omitempty,uuid"`
	ServiceID         string `json:"service_id" validate:"omitempty,uuid"`
	PetID             string `json:"pet_id" validate:"omitempty,uuid"`
	ServicePrice      string `json:"service_price" validate:"required"`
	AdditionalCharges string `json:"additional_charges" validate:"omitempty"`
	Discount          string `json:"discount" validate:"omitempty"`
	TaxRate           string `json:"tax_rate" validate:"omitempty"`
	DueDate           string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Notes             string `json:"notes" validate:"omitempty"`
}

type UpdateInvoiceRequest struct {
	ServicePrice      string `json:"service_price" validate:"omitempty"`
	AdditionalCharges string `json:"additional_charges" validate:"omitempty"`
	Discount          string `json:"discount" validate:"omitempty"`
	TaxRate           string `json:"tax_rate" validate:"omitempty"`
	DueDate           string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	PaymentStatus     string `json:"payment_status" validate:"omitempty,oneof=unpaid partially_paid paid overdue cancelled"`
	Notes             string `json:"notes" validate:"omitempty"`
}

type InvoiceResponse struct {
	ID                uuid.UUID       `json:"id"`
	InvoiceNumber     string          `json:"invoice_number"`
	CustomerID        uuid.UUID       `json:"customer_id"`
	CustomerName      string          `json:"customer_name,omitempty"`
	CustomerEmail     string          `json:"customer_email,omitempty"`
	DoctorName        string          `json:"doctor_name,omitempty"`
	ServiceName       string          `json:"service_name,omitempty"`
	PetName           string          `json:"pet_name,omitempty"`
	ServicePrice      decimal.Decimal `json:"service_price"`
	AdditionalCharges decimal.Decimal `json:"additional_charges"`
	Discount          decimal.Decimal `json:"discount"`
	TaxRate           decimal.Decimal `json:"tax_rate"`
	TaxAmount         decimal.Decimal `json:"tax_amount"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	IssueDate         string          `json:"issue_date"`
	DueDate           string          `json:"due_date,omitempty"`
	PaymentStatus     string          `json:"payment_status"`
	Notes             string          `json:"notes,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Total    int               `json:"total"`
}

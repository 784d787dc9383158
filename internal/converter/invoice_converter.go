package converter

import (
	"time"

	"pet-clinic-api/internal/delivery/dto"
	"pet-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
)

// InvoiceToResponse converts an Invoice entity to DTO. The payment status in
// the response is the effective status: overdue is derived from the due date
// at read time, the stored status is never rewritten.
func InvoiceToResponse(invoice *entity.Invoice, now time.Time) *dto.InvoiceResponse {
	if invoice == nil {
		return nil
	}

	response := &dto.InvoiceResponse{
		ID:                invoice.ID,
		InvoiceNumber:     invoice.InvoiceNumber,
		CustomerID:        invoice.CustomerID,
		ServicePrice:      invoice.ServicePrice,
		AdditionalCharges: invoice.AdditionalCharges,
		Discount:          invoice.Discount,
		TaxRate:           invoice.TaxRate,
		TaxAmount:         invoice.TaxAmount,
		TotalAmount:       invoice.TotalAmount,
		IssueDate:         invoice.IssueDate.Format("2006-01-02"),
		PaymentStatus:     string(invoice.EffectiveStatus(now)),
		Notes:             invoice.Notes,
		CreatedAt:         invoice.CreatedAt,
		UpdatedAt:         invoice.UpdatedAt,
	}

	if invoice.DueDate != nil {
		response.DueDate = invoice.DueDate.Format("2006-01-02")
	}
	if invoice.Customer.ID != uuid.Nil {
		response.CustomerName = invoice.Customer.Name
		response.CustomerEmail = invoice.Customer.Email
	}
	if invoice.Doctor != nil {
		response.DoctorName = invoice.Doctor.Name
	}
	if invoice.Service != nil {
		response.ServiceName = invoice.Service.Name
	}
	if invoice.Pet != nil {
		response.PetName = invoice.Pet.Name
	}

	return response
}

// InvoicesToResponses converts a slice of Invoice entities to DTOs
func InvoicesToResponses(invoices []entity.Invoice, now time.Time) []dto.InvoiceResponse {
	responses := make([]dto.InvoiceResponse, len(invoices))
	for i, invoice := range invoices {
		resp := InvoiceToResponse(&invoice, now)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

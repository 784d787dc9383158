package handler

import (
	"encoding/json"
	"net/http"

	"pet-clinic-api/internal/delivery/dto"
	"pet-clinic-api/internal/usecase"
	"pet-clinic-api/pkg/response"
	"pet-clinic-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type InvoiceHandler struct {
	invoiceUsecase usecase.InvoiceUsecase
	validator      *validator.CustomValidator
}

func NewInvoiceHandler(invoiceUsecase usecase.InvoiceUsecase, validator *validator.CustomValidator) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceUsecase: invoiceUsecase,
		validator:      validator,
	}
}

func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	invoice, err := h.invoiceUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvoiceCustomer:
			response.NotFound(w, "Customer not found")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		case usecase.ErrInvoiceNotFound:
			response.NotFound(w, "Referenced record not found")
		case usecase.ErrInvalidMoneyValue:
			response.ValidationError(w, map[string]string{"amount": "money values must be non-negative numbers"})
		case usecase.ErrInvalidDate:
			response.ValidationError(w, map[string]string{"due_date": "due_date must match the format 2006-01-02"})
		default:
			response.InternalServerError(w, "Failed to create invoice")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Invoice created successfully", invoice)
}

func (h *InvoiceHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.invoiceUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get invoices")
		return
	}

	response.Success(w, http.StatusOK, "Invoices retrieved successfully", invoices)
}

func (h *InvoiceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	invoiceID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid invoice ID", nil)
		return
	}

	invoice, err := h.invoiceUsecase.GetByID(r.Context(), invoiceID)
	if err != nil {
		switch err {
		case usecase.ErrInvoiceNotFound:
			response.NotFound(w, "Invoice not found")
		default:
			response.InternalServerError(w, "Failed to get invoice")
		}
		return
	}

	response.Success(w, http.StatusOK, "Invoice retrieved successfully", invoice)
}

func (h *InvoiceHandler) GetByCustomer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerID, err := uuid.Parse(vars["customerId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid customer ID", nil)
		return
	}

	invoices, err := h.invoiceUsecase.GetByCustomer(r.Context(), customerID)
	if err != nil {
		response.InternalServerError(w, "Failed to get invoices")
		return
	}

	response.Success(w, http.StatusOK, "Invoices retrieved successfully", invoices)
}

func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	invoiceID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid invoice ID", nil)
		return
	}

	var req dto.UpdateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	invoice, err := h.invoiceUsecase.Update(r.Context(), invoiceID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvoiceNotFound:
			response.NotFound(w, "Invoice not found")
		case usecase.ErrInvalidMoneyValue:
			response.ValidationError(w, map[string]string{"amount": "money values must be non-negative numbers"})
		case usecase.ErrInvalidPaymentStatus:
			response.ValidationError(w, map[string]string{"payment_status": "payment_status is invalid"})
		case usecase.ErrInvalidDate:
			response.ValidationError(w, map[string]string{"due_date": "due_date must match the format 2006-01-02"})
		default:
			response.InternalServerError(w, "Failed to update invoice")
		}
		return
	}

	response.Success(w, http.StatusOK, "Invoice updated successfully", invoice)
}

func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	invoiceID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid invoice ID", nil)
		return
	}

	if err := h.invoiceUsecase.Delete(r.Context(), invoiceID); err != nil {
		switch err {
		case usecase.ErrInvoiceNotFound:
			response.NotFound(w, "Invoice not found")
		default:
			response.InternalServerError(w, "Failed to delete invoice")
		}
		return
	}

	response.Success(w, http.StatusOK, "Invoice deleted successfully", nil)
}

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

type CustomerHandler struct {
	customerUsecase usecase.CustomerUsecase
	validator       *validator.CustomValidator
}

func NewCustomerHandler(customerUsecase usecase.CustomerUsecase, validator *validator.CustomValidator) *CustomerHandler {
	return &CustomerHandler{
		customerUsecase: customerUsecase,
		validator:       validator,
	}
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	customer, err := h.customerUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrCustomerEmailExists:
			response.Conflict(w, "A customer with this email already exists")
		default:
			response.InternalServerError(w, "Failed to create customer")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Customer created successfully", customer)
}

func (h *CustomerHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get customers")
		return
	}

	response.Success(w, http.StatusOK, "Customers retrieved successfully", customers)
}

func (h *CustomerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid customer ID", nil)
		return
	}

	customer, err := h.customerUsecase.GetByID(r.Context(), customerID)
	if err != nil {
		switch err {
		case usecase.ErrCustomerNotFound:
			response.NotFound(w, "Customer not found")
		default:
			response.InternalServerError(w, "Failed to get customer")
		}
		return
	}

	response.Success(w, http.StatusOK, "Customer retrieved successfully", customer)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid customer ID", nil)
		return
	}

	var req dto.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	customer, err := h.customerUsecase.Update(r.Context(), customerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrCustomerNotFound:
			response.NotFound(w, "Customer not found")
		case usecase.ErrCustomerEmailExists:
			response.Conflict(w, "A customer with this email already exists")
		default:
			response.InternalServerError(w, "Failed to update customer")
		}
		return
	}

	response.Success(w, http.StatusOK, "Customer updated successfully", customer)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid customer ID", nil)
		return
	}

	if err := h.customerUsecase.Delete(r.Context(), customerID); err != nil {
		switch err {
		case usecase.ErrCustomerNotFound:
			response.NotFound(w, "Customer not found")
		case usecase.ErrCustomerHasRecords:
			response.Conflict(w, "Customer still has pets, appointments or invoices")
		default:
			response.InternalServerError(w, "Failed to delete customer")
		}
		return
	}

	response.Success(w, http.StatusOK, "Customer deleted successfully", nil)
}

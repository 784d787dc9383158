package handler

import (
	"encoding/json"
	"net/http"

	"pet-clinic-api/internal/delivery/dto"
	"pet-clinic-api/internal/usecase"
	"pet-clinic-api/pkg/response"
	"pet-clinic-api/pkg/validator"
)

type ContactHandler struct {
	contactUsecase usecase.ContactUsecase
	validator      *validator.CustomValidator
}

func NewContactHandler(contactUsecase usecase.ContactUsecase, validator *validator.CustomValidator) *ContactHandler {
	return &ContactHandler{
		contactUsecase: contactUsecase,
		validator:      validator,
	}
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateContactMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	message, err := h.contactUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to send message")
		return
	}

	response.Success(w, http.StatusCreated, "Message sent successfully", message)
}

func (h *ContactHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get messages")
		return
	}

	response.Success(w, http.StatusOK, "Messages retrieved successfully", messages)
}

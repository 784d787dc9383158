package handler

import (
	"encoding/json"
	"net/http"

	"pet-clinic-api/internal/delivery/dto"
	"pet-clinic-api/internal/usecase"
	"pet-clinic-api/pkg/response"
	"pet-clinic-api/pkg/validator"
)

type EmailHandler struct {
	emailUsecase usecase.EmailUsecase
	validator    *validator.CustomValidator
}

func NewEmailHandler(emailUsecase usecase.EmailUsecase, validator *validator.CustomValidator) *EmailHandler {
	return &EmailHandler{
		emailUsecase: emailUsecase,
		validator:    validator,
	}
}

func (h *EmailHandler) SendTest(w http.ResponseWriter, r *http.Request) {
	var req dto.TestEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.emailUsecase.SendTest(r.Context(), &req); err != nil {
		response.InternalServerError(w, "Failed to send test email")
		return
	}

	response.Success(w, http.StatusOK, "Test email sent successfully", nil)
}

func (h *EmailHandler) SendAppointmentConfirmation(w http.ResponseWriter, r *http.Request) {
	var req dto.AppointmentEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.emailUsecase.SendAppointmentConfirmation(r.Context(), &req); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to send confirmation email")
		}
		return
	}

	response.Success(w, http.StatusOK, "Confirmation email sent successfully", nil)
}

func (h *EmailHandler) SendAppointmentReminder(w http.ResponseWriter, r *http.Request) {
	var req dto.AppointmentEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.emailUsecase.SendAppointmentReminder(r.Context(), &req); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to send reminder email")
		}
		return
	}

	response.Success(w, http.StatusOK, "Reminder email sent successfully", nil)
}

func (h *EmailHandler) SendInvoiceAlert(w http.ResponseWriter, r *http.Request) {
	var req dto.InvoiceAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.emailUsecase.SendInvoiceAlert(r.Context(), &req); err != nil {
		switch err {
		case usecase.ErrInvoiceNotFound:
			response.NotFound(w, "Invoice not found")
		default:
			response.InternalServerError(w, "Failed to send invoice alert")
		}
		return
	}

	response.Success(w, http.StatusOK, "Invoice alert sent successfully", nil)
}

func (h *EmailHandler) SendWelcome(w http.ResponseWriter, r *http.Request) {
	var req dto.WelcomeEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.emailUsecase.SendWelcome(r.Context(), &req); err != nil {
		response.InternalServerError(w, "Failed to send welcome email")
		return
	}

	response.Success(w, http.StatusOK, "Welcome email sent successfully", nil)
}

func (h *EmailHandler) SendPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req dto.PasswordResetEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.emailUsecase.SendPasswordReset(r.Context(), &req); err != nil {
		response.InternalServerError(w, "Failed to send password reset email")
		return
	}

	response.Success(w, http.StatusOK, "Password reset email sent successfully", nil)
}

func (h *EmailHandler) SendUserToAdmin(w http.ResponseWriter, r *http.Request) {
	var req dto.UserToAdminEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.emailUsecase.SendUserToAdmin(r.Context(), &req); err != nil {
		response.InternalServerError(w, "Failed to forward message")
		return
	}

	response.Success(w, http.StatusOK, "Message forwarded successfully", nil)
}

package dto

type TestEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type AppointmentEmailRequest struct {
	AppointmentID string `json:"appointment_id" validate:"required,uuid"`
}

type InvoiceAlertRequest struct {
	InvoiceID string `json:"invoice_id" validate:"required,uuid"`
}

type WelcomeEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}

type PasswordResetEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type UserToAdminEmailRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required"`
}

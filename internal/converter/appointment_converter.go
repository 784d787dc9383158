package converter

import (
	"pet-clinic-api/internal/delivery/dto"
	"pet-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:         appointment.ID,
		CustomerID: appointment.CustomerID,
		PetID:      appointment.PetID,
		DoctorID:   appointment.DoctorID,
		Date:       appointment.Date.Format("2006-01-02"),
		Time:       appointment.Time,
		Status:     string(appointment.Status),
		Type:       appointment.Type,
		Reason:     appointment.Reason,
		Notes:      appointment.Notes,
		CreatedAt:  appointment.CreatedAt,
		UpdatedAt:  appointment.UpdatedAt,
	}

	if appointment.Customer.ID != uuid.Nil {
		response.CustomerName = appointment.Customer.Name
		response.OwnerEmail = appointment.Customer.Email
	}
	if appointment.Pet.ID != uuid.Nil {
		response.PetName = appointment.Pet.Name
	}
	if appointment.Doctor.ID != uuid.Nil {
		response.DoctorName = appointment.Doctor.Name
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

package converter

import (
	"pet-clinic-api/internal/delivery/dto"
	"pet-clinic-api/internal/domain/entity"
)

// ContactMessageToResponse converts a ContactMessage entity to DTO
func ContactMessageToResponse(message *entity.ContactMessage) *dto.ContactMessageResponse {
	if message == nil {
		return nil
	}

	return &dto.ContactMessageResponse{
		ID:        message.ID,
		Name:      message.Name,
		Email:     message.Email,
		Subject:   message.Subject,
		Message:   message.Message,
		CreatedAt: message.CreatedAt,
	}
}

// ContactMessagesToResponses converts a slice of ContactMessage entities to DTOs
func ContactMessagesToResponses(messages []entity.ContactMessage) []dto.ContactMessageResponse {
	responses := make([]dto.ContactMessageResponse, len(messages))
	for i, message := range messages {
		resp := ContactMessageToResponse(&message)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

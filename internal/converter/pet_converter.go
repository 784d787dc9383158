package converter

import (
	"pet-clinic-api/internal/delivery/dto"
	"pet-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
)

// PetToResponse converts a Pet entity to PetResponse DTO
func PetToResponse(pet *entity.Pet) *dto.PetResponse {
	if pet == nil {
		return nil
	}

	response := &dto.PetResponse{
		ID:        pet.ID,
		OwnerID:   pet.OwnerID,
		Name:      pet.Name,
		Type:      pet.Type,
		Breed:     pet.Breed,
		Age:       pet.Age,
		Gender:    pet.Gender,
		Weight:    pet.Weight,
		Notes:     pet.Notes,
		IsActive:  pet.IsActive,
		CreatedAt: pet.CreatedAt,
		UpdatedAt: pet.UpdatedAt,
	}

	if pet.Owner.ID != uuid.Nil {
		response.OwnerName = pet.Owner.Name
	}

	return response
}

// PetsToResponses converts a slice of Pet entities to PetResponse DTOs
func PetsToResponses(pets []entity.Pet) []dto.PetResponse {
	responses := make([]dto.PetResponse, len(pets))
	for i, pet := range pets {
		resp := PetToResponse(&pet)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

package converter

import (
	"pet-clinic-api/internal/delivery/dto"
	"pet-clinic-api/internal/domain/entity"
)

// CustomerToResponse converts a Customer entity to CustomerResponse DTO
func CustomerToResponse(customer *entity.Customer) *dto.CustomerResponse {
	if customer == nil {
		return nil
	}

	return &dto.CustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Email:     customer.Email,
		Phone:     customer.Phone,
		IsActive:  customer.IsActive,
		Pets:      PetsToResponses(customer.Pets),
		TotalPets: len(customer.Pets),
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
}

// CustomersToResponses converts a slice of Customer entities to DTOs
func CustomersToResponses(customers []entity.Customer) []dto.CustomerResponse {
	responses := make([]dto.CustomerResponse, len(customers))
	for i, customer := range customers {
		resp := CustomerToResponse(&customer)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

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

type PetHandler struct {
	petUsecase usecase.PetUsecase
	validator  *validator.CustomValidator
}

func NewPetHandler(petUsecase usecase.PetUsecase, validator *validator.CustomValidator) *PetHandler {
	return &PetHandler{
		petUsecase: petUsecase,
		validator:  validator,
	}
}

func (h *PetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pet, err := h.petUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPetOwnerNotFound:
			response.NotFound(w, "Owner not found")
		case usecase.ErrInvalidWeight:
			response.ValidationError(w, map[string]string{"weight": "weight must be a valid number"})
		default:
			response.InternalServerError(w, "Failed to create pet")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Pet created successfully", pet)
}

func (h *PetHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	pets, err := h.petUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get pets")
		return
	}

	response.Success(w, http.StatusOK, "Pets retrieved successfully", pets)
}

func (h *PetHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	petID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pet ID", nil)
		return
	}

	pet, err := h.petUsecase.GetByID(r.Context(), petID)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		default:
			response.InternalServerError(w, "Failed to get pet")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pet retrieved successfully", pet)
}

func (h *PetHandler) GetByOwner(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ownerID, err := uuid.Parse(vars["ownerId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid owner ID", nil)
		return
	}

	pets, err := h.petUsecase.GetByOwner(r.Context(), ownerID)
	if err != nil {
		switch err {
		case usecase.ErrPetOwnerNotFound:
			response.NotFound(w, "Owner not found")
		default:
			response.InternalServerError(w, "Failed to get pets")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pets retrieved successfully", pets)
}

func (h *PetHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	petID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pet ID", nil)
		return
	}

	var req dto.UpdatePetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pet, err := h.petUsecase.Update(r.Context(), petID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		case usecase.ErrInvalidWeight:
			response.ValidationError(w, map[string]string{"weight": "weight must be a valid number"})
		default:
			response.InternalServerError(w, "Failed to update pet")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pet updated successfully", pet)
}

func (h *PetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	petID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid pet ID", nil)
		return
	}

	if err := h.petUsecase.Delete(r.Context(), petID); err != nil {
		switch err {
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		case usecase.ErrPetHasRecords:
			response.Conflict(w, "Pet still has appointments or invoices")
		default:
			response.InternalServerError(w, "Failed to delete pet")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pet deleted successfully", nil)
}

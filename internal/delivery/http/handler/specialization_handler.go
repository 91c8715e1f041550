package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"healthcareplus/internal/delivery/dto"
	"healthcareplus/internal/usecase"
	"healthcareplus/pkg/response"
	"healthcareplus/pkg/validator"

	"github.com/gorilla/mux"
)

type SpecializationHandler struct {
	specializationUsecase usecase.SpecializationUsecase
	validator             *validator.CustomValidator
}

func NewSpecializationHandler(specializationUsecase usecase.SpecializationUsecase, validator *validator.CustomValidator) *SpecializationHandler {
	return &SpecializationHandler{
		specializationUsecase: specializationUsecase,
		validator:             validator,
	}
}

func specializationID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	return id, err == nil && id > 0
}

func (h *SpecializationHandler) CreateSpecialization(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSpecializationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	specialization, err := h.specializationUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrSpecializationExists:
			response.Conflict(w, "Specialization name already exists")
		default:
			response.InternalServerError(w, "Failed to create specialization")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Specialization created successfully", specialization)
}

func (h *SpecializationHandler) UpdateSpecialization(w http.ResponseWriter, r *http.Request) {
	id, ok := specializationID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid specialization ID", nil)
		return
	}

	var req dto.UpdateSpecializationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	specialization, err := h.specializationUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrSpecializationNotFound:
			response.NotFound(w, "Specialization not found")
		case usecase.ErrSpecializationExists:
			response.Conflict(w, "Specialization name already exists")
		default:
			response.InternalServerError(w, "Failed to update specialization")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialization updated successfully", specialization)
}

func (h *SpecializationHandler) DeleteSpecialization(w http.ResponseWriter, r *http.Request) {
	id, ok := specializationID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid specialization ID", nil)
		return
	}

	if err := h.specializationUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrSpecializationNotFound:
			response.NotFound(w, "Specialization not found")
		case usecase.ErrSpecializationInUse:
			response.Conflict(w, "Specialization is still referenced by doctors")
		default:
			response.InternalServerError(w, "Failed to delete specialization")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialization deleted successfully", nil)
}

func (h *SpecializationHandler) GetSpecialization(w http.ResponseWriter, r *http.Request) {
	id, ok := specializationID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid specialization ID", nil)
		return
	}

	specialization, err := h.specializationUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrSpecializationNotFound:
			response.NotFound(w, "Specialization not found")
		default:
			response.InternalServerError(w, "Failed to get specialization")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialization retrieved successfully", specialization)
}

func (h *SpecializationHandler) GetAllSpecializations(w http.ResponseWriter, r *http.Request) {
	specializations, err := h.specializationUsecase.ListAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get specializations")
		return
	}

	response.Success(w, http.StatusOK, "Specializations retrieved successfully", specializations)
}

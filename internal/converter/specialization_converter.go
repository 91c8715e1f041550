package converter

import (
	"healthcareplus/internal/delivery/dto"
	"healthcareplus/internal/domain/entity"
)

func SpecializationToResponse(specialization *entity.Specialization) *dto.SpecializationResponse {
	if specialization == nil {
		return nil
	}

	return &dto.SpecializationResponse{
		ID:          specialization.ID,
		Name:        specialization.Name,
		Description: specialization.Description,
	}
}

func SpecializationsToResponses(specializations []entity.Specialization) []dto.SpecializationResponse {
	responses := make([]dto.SpecializationResponse, len(specializations))
	for i, specialization := range specializations {
		resp := SpecializationToResponse(&specialization)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

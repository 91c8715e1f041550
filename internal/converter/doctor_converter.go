package converter

import (
	"healthcareplus/internal/delivery/dto"
	"healthcareplus/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:                  doctor.ID,
		FullName:            doctor.FullName,
		MobileNumber:        doctor.MobileNumber,
		Email:               doctor.Email,
		SpecializationID:    doctor.SpecializationID,
		Specialization:      doctor.Specialization.Name,
		LicenseNumber:       doctor.LicenseNumber,
		ExperienceYears:     doctor.ExperienceYears,
		Qualification:       doctor.Qualification,
		HospitalAffiliation: doctor.HospitalAffiliation,
		IsActive:            doctor.IsActive,
		IsVerified:          doctor.IsVerified,
		AppointmentsPerDay:  doctor.AppointmentsPerDay,
		CreatedAt:           doctor.CreatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		resp := DoctorToResponse(&doctor)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

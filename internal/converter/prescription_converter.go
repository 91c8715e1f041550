package converter

import (
	"healthcareplus/internal/delivery/dto"
	"healthcareplus/internal/domain/entity"
)

// PrescriptionToResponse converts a Prescription entity to its DTO,
// preserving medicine order.
func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	medicines := make([]dto.MedicineResponse, len(prescription.Medicines))
	for i, medicine := range prescription.Medicines {
		medicines[i] = dto.MedicineResponse{
			Position:  medicine.Position,
			Name:      medicine.Name,
			Dosage:    medicine.Dosage,
			Frequency: medicine.Frequency,
			Duration:  medicine.Duration,
		}
	}

	return &dto.PrescriptionResponse{
		ID:            prescription.ID,
		AppointmentID: prescription.AppointmentID,
		DoctorID:      prescription.DoctorID,
		DoctorName:    prescription.Doctor.FullName,
		Instructions:  prescription.Instructions,
		Medicines:     medicines,
		CreatedAt:     prescription.CreatedAt,
	}
}

// PrescriptionsToResponses converts a slice of Prescription entities
func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i, prescription := range prescriptions {
		resp := PrescriptionToResponse(&prescription)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

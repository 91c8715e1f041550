package converter

import (
	"time"

	"healthcareplus/internal/delivery/dto"
	"healthcareplus/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its DTO. The
// display status is derived here, once, for the requesting portal.
func AppointmentToResponse(appointment *entity.Appointment, portal entity.Portal, today time.Time) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		PatientName:     appointment.PatientName,
		AppointmentDate: appointment.AppointmentDate.Format("2006-01-02"),
		AppointmentTime: appointment.AppointmentTime,
		Reason:          appointment.Reason,
		Status:          string(appointment.Status),
		DisplayStatus:   entity.DisplayStatus(appointment.Status, appointment.AppointmentDate, today, portal),
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	// Doctor info is present only when the repository preloaded it
	if appointment.Doctor.FullName != "" {
		response.DoctorName = appointment.Doctor.FullName
		response.Specialization = appointment.Doctor.Specialization.Name
	}

	if appointment.Payment != nil {
		response.Payment = PaymentToResponse(appointment.Payment)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities.
func AppointmentsToResponses(appointments []entity.Appointment, portal entity.Portal, today time.Time) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment, portal, today)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

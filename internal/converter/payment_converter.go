package converter

import (
	"healthcareplus/internal/delivery/dto"
	"healthcareplus/internal/domain/entity"
)

// PaymentToResponse converts a Payment entity to PaymentResponse DTO
func PaymentToResponse(payment *entity.Payment) *dto.PaymentResponse {
	if payment == nil {
		return nil
	}

	response := &dto.PaymentResponse{
		ID:               payment.ID,
		AppointmentID:    payment.AppointmentID,
		GatewayPaymentID: payment.GatewayPaymentID,
		GatewayOrderID:   payment.GatewayOrderID,
		Amount:           payment.Amount.StringFixed(2),
		Currency:         payment.Currency,
		Status:           string(payment.Status),
		CreatedAt:        payment.CreatedAt,
	}

	if payment.Appointment.PatientName != "" {
		response.PatientName = payment.Appointment.PatientName
		response.DoctorName = payment.Appointment.Doctor.FullName
	}

	return response
}

// PaymentsToResponses converts a slice of Payment entities
func PaymentsToResponses(payments []entity.Payment) []dto.PaymentResponse {
	responses := make([]dto.PaymentResponse, len(payments))
	for i, payment := range payments {
		resp := PaymentToResponse(&payment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

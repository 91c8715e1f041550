package repository

import (
	"errors"

	"healthcareplus/internal/domain/entity"
	domainRepo "healthcareplus/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(db *gorm.DB, payment *entity.Payment) error {
	return db.Create(payment).Error
}

func (r *paymentRepository) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.Where("appointment_id = ?", appointmentID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindAll(db *gorm.DB, patientNameSearch string) ([]entity.Payment, error) {
	query := db.Preload("Appointment.Doctor").
		Joins("JOIN appointments ON appointments.id = payments.appointment_id")
	if patientNameSearch != "" {
		query = query.Where("appointments.patient_name ILIKE ?", "%"+patientNameSearch+"%")
	}

	var payments []entity.Payment
	err := query.Order("payments.created_at DESC").Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

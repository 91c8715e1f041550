package usecase

import (
	"context"
	"errors"

	"healthcareplus/internal/converter"
	"healthcareplus/internal/delivery/dto"
	"healthcareplus/internal/domain/entity"
	"healthcareplus/internal/domain/repository"
	"healthcareplus/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPrescriptionNotFound   = errors.New("prescription not found")
	ErrPrescriptionExists     = errors.New("a prescription already exists for this appointment")
	ErrAppointmentCancelled   = errors.New("cannot prescribe for a cancelled appointment")
	ErrNotPrescriptionOwner   = errors.New("prescription does not belong to you")
	ErrConsultationNotStarted = errors.New("appointment has not reached consultation")
)

type PrescriptionUsecase interface {
	Create(ctx context.Context, actor entity.Actor, appointmentID uuid.UUID, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	GetByAppointmentID(ctx context.Context, actor entity.Actor, appointmentID uuid.UUID) (*dto.PrescriptionResponse, error)
	ListForPatient(ctx context.Context, patientID uuid.UUID) (*dto.PrescriptionListResponse, error)
	ListForDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.PrescriptionListResponse, error)
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	appointmentRepo  repository.AppointmentRepository
	auditService     service.AuditService
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		appointmentRepo:  appointmentRepo,
		auditService:     auditService,
	}
}

// Create writes the prescription for an appointment. Prescriptions are
// immutable; the unique index on appointment_id backs the create-once rule.
func (u *prescriptionUsecase) Create(ctx context.Context, actor entity.Actor, appointmentID uuid.UUID, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.WithError(err).Error("failed to find appointment")
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.DoctorID != actor.ID {
		return nil, ErrNotAppointmentOwner
	}
	if appointment.IsCancelled() {
		return nil, ErrAppointmentCancelled
	}
	if appointment.Status != entity.StatusUnderConsultation && appointment.Status != entity.StatusCompleted {
		return nil, ErrConsultationNotStarted
	}

	existing, err := u.prescriptionRepo.FindByAppointmentID(tx, appointmentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPrescriptionExists
	}

	prescription := &entity.Prescription{
		ID:            uuid.New(),
		AppointmentID: appointmentID,
		DoctorID:      actor.ID,
		Instructions:  req.Instructions,
	}
	for i, medicine := range req.Medicines {
		prescription.Medicines = append(prescription.Medicines, entity.PrescriptionMedicine{
			PrescriptionID: prescription.ID,
			Position:       i + 1,
			Name:           medicine.Name,
			Dosage:         medicine.Dosage,
			Frequency:      medicine.Frequency,
			Duration:       medicine.Duration,
		})
	}

	if err := u.prescriptionRepo.Create(tx, prescription); err != nil {
		if isDuplicateKeyError(err, "appointment_id") {
			return nil, ErrPrescriptionExists
		}
		u.log.WithError(err).Error("failed to create prescription")
		return nil, err
	}

	metadata := entity.JSON{
		"prescription_id": prescription.ID.String(),
		"appointment_id":  appointmentID.String(),
		"medicines":       len(req.Medicines),
	}
	if err := u.auditService.Log(tx, actor, entity.AuditActionPrescriptionWrite, metadata); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.WithError(err).Error("failed to commit prescription")
		return nil, err
	}
	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) GetByAppointmentID(ctx context.Context, actor entity.Actor, appointmentID uuid.UUID) (*dto.PrescriptionResponse, error) {
	db := u.db.WithContext(ctx)

	prescription, err := u.prescriptionRepo.FindByAppointmentID(db, appointmentID)
	if err != nil {
		u.log.WithError(err).Error("failed to find prescription")
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	switch actor.Role {
	case entity.RoleDoctor:
		if prescription.DoctorID != actor.ID {
			return nil, ErrNotPrescriptionOwner
		}
	case entity.RolePatient:
		appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
		if err != nil {
			return nil, err
		}
		if appointment == nil || appointment.PatientID != actor.ID {
			return nil, ErrNotPrescriptionOwner
		}
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) ListForPatient(ctx context.Context, patientID uuid.UUID) (*dto.PrescriptionListResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.WithError(err).Error("failed to list patient prescriptions")
		return nil, err
	}
	responses := converter.PrescriptionsToResponses(prescriptions)
	return &dto.PrescriptionListResponse{Prescriptions: responses, Total: len(responses)}, nil
}

func (u *prescriptionUsecase) ListForDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.PrescriptionListResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.WithError(err).Error("failed to list doctor prescriptions")
		return nil, err
	}
	responses := converter.PrescriptionsToResponses(prescriptions)
	return &dto.PrescriptionListResponse{Prescriptions: responses, Total: len(responses)}, nil
}

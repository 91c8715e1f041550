package usecase

import (
	"context"

	"healthcareplus/internal/converter"
	"healthcareplus/internal/delivery/dto"
	"healthcareplus/internal/domain/entity"
	"healthcareplus/internal/domain/repository"
	"healthcareplus/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// defaultWalkInPassword is set on walk-in registrations made at the front
// desk without the patient choosing a password.
const defaultWalkInPassword = "default123"

type PatientUsecase interface {
	Create(ctx context.Context, actor entity.Actor, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	Update(ctx context.Context, actor entity.Actor, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	ListAll(ctx context.Context) (*dto.PatientListResponse, error)
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *patientUsecase) Create(ctx context.Context, actor entity.Actor, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	mobile := cleanMobileNumber(req.MobileNumber)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.patientRepo.FindByMobileNumber(tx, mobile)
	if err != nil {
		u.log.WithError(err).Error("failed to check mobile number")
		return nil, err
	}
	if existing != nil {
		return nil, ErrMobileAlreadyExists
	}

	password := req.Password
	if password == "" {
		password = defaultWalkInPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		u.log.WithError(err).Error("failed to hash password")
		return nil, err
	}

	patient := &entity.Patient{
		ID:           uuid.New(),
		FullName:     req.FullName,
		MobileNumber: mobile,
		Email:        req.Email,
		Password:     string(hashed),
		IsActive:     true,
	}
	if err := u.patientRepo.Create(tx, patient); err != nil {
		if isDuplicateKeyError(err, "mobile_number") {
			return nil, ErrMobileAlreadyExists
		}
		u.log.WithError(err).Error("failed to create patient")
		return nil, err
	}

	metadata := entity.JSON{"patient_id": patient.ID.String()}
	if err := u.auditService.Log(tx, actor, entity.AuditActionPatientCreate, metadata); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.WithError(err).Error("failed to commit patient creation")
		return nil, err
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, actor entity.Actor, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if req.FullName != "" {
		patient.FullName = req.FullName
	}
	if req.MobileNumber != "" {
		patient.MobileNumber = cleanMobileNumber(req.MobileNumber)
	}
	if req.Email != "" {
		patient.Email = req.Email
	}
	if req.IsActive != nil {
		patient.IsActive = *req.IsActive
	}

	if err := u.patientRepo.Update(tx, patient); err != nil {
		if isDuplicateKeyError(err, "mobile_number") {
			return nil, ErrMobileAlreadyExists
		}
		u.log.WithError(err).Error("failed to update patient")
		return nil, err
	}

	metadata := entity.JSON{"patient_id": id.String()}
	if err := u.auditService.Log(tx, actor, entity.AuditActionPatientUpdate, metadata); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.WithError(err).Error("failed to find patient")
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) ListAll(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.WithError(err).Error("failed to list patients")
		return nil, err
	}
	responses := converter.PatientsToResponses(patients)
	return &dto.PatientListResponse{Patients: responses, Total: len(responses)}, nil
}

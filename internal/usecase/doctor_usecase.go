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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDoctorAlreadyVerified = errors.New("doctor is already verified")
	ErrDoctorIsVerified      = errors.New("verified doctors cannot be rejected, deactivate instead")
)

type DoctorUsecase interface {
	Create(ctx context.Context, actor entity.Actor, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	Update(ctx context.Context, actor entity.Actor, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	Verify(ctx context.Context, actor entity.Actor, id uuid.UUID) (*dto.DoctorResponse, error)
	Reject(ctx context.Context, actor entity.Actor, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error)
	ListAll(ctx context.Context) (*dto.DoctorListResponse, error)
	ListUnverified(ctx context.Context) (*dto.DoctorListResponse, error)
	ListBookable(ctx context.Context, specializationID int) (*dto.DoctorListResponse, error)
}

type doctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	specRepo     repository.SpecializationRepository
	auditService service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	specRepo repository.SpecializationRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		specRepo:     specRepo,
		auditService: auditService,
	}
}

// Create registers a doctor on behalf of the admin. Unlike
// self-registration the account starts verified.
func (u *doctorUsecase) Create(ctx context.Context, actor entity.Actor, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	mobile := cleanMobileNumber(req.MobileNumber)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	spec, err := u.specRepo.FindByID(tx, req.SpecializationID)
	if err != nil {
		u.log.WithError(err).Error("failed to check specialization")
		return nil, err
	}
	if spec == nil {
		return nil, ErrSpecializationMissing
	}

	existing, err := u.doctorRepo.FindByMobileNumber(tx, mobile)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrMobileAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.WithError(err).Error("failed to hash password")
		return nil, err
	}

	capacity := req.AppointmentsPerDay
	if capacity == 0 {
		capacity = entity.DefaultAppointmentsPerDay
	}

	doctor := &entity.Doctor{
		ID:                  uuid.New(),
		FullName:            req.FullName,
		MobileNumber:        mobile,
		Email:               req.Email,
		SpecializationID:    req.SpecializationID,
		LicenseNumber:       req.LicenseNumber,
		ExperienceYears:     req.ExperienceYears,
		Qualification:       req.Qualification,
		HospitalAffiliation: req.HospitalAffiliation,
		Password:            string(hashed),
		IsActive:            true,
		IsVerified:          true,
		AppointmentsPerDay:  capacity,
	}
	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		if isDuplicateKeyError(err, "license_number") {
			return nil, ErrLicenseAlreadyExists
		}
		if isDuplicateKeyError(err, "mobile_number") {
			return nil, ErrMobileAlreadyExists
		}
		u.log.WithError(err).Error("failed to create doctor")
		return nil, err
	}

	metadata := entity.JSON{"doctor_id": doctor.ID.String()}
	if err := u.auditService.Log(tx, actor, entity.AuditActionDoctorCreate, metadata); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.WithError(err).Error("failed to commit doctor creation")
		return nil, err
	}

	doctor.Specialization = *spec
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Update(ctx context.Context, actor entity.Actor, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if req.FullName != "" {
		doctor.FullName = req.FullName
	}
	if req.MobileNumber != "" {
		doctor.MobileNumber = cleanMobileNumber(req.MobileNumber)
	}
	if req.Email != "" {
		doctor.Email = req.Email
	}
	if req.SpecializationID != 0 {
		spec, err := u.specRepo.FindByID(tx, req.SpecializationID)
		if err != nil {
			return nil, err
		}
		if spec == nil {
			return nil, ErrSpecializationMissing
		}
		doctor.SpecializationID = req.SpecializationID
	}
	if req.ExperienceYears != nil {
		doctor.ExperienceYears = *req.ExperienceYears
	}
	if req.Qualification != "" {
		doctor.Qualification = req.Qualification
	}
	if req.HospitalAffiliation != "" {
		doctor.HospitalAffiliation = req.HospitalAffiliation
	}
	if req.AppointmentsPerDay != nil {
		doctor.AppointmentsPerDay = *req.AppointmentsPerDay
	}
	if req.IsActive != nil {
		doctor.IsActive = *req.IsActive
	}

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		if isDuplicateKeyError(err, "mobile_number") {
			return nil, ErrMobileAlreadyExists
		}
		u.log.WithError(err).Error("failed to update doctor")
		return nil, err
	}

	metadata := entity.JSON{"doctor_id": id.String()}
	if err := u.auditService.Log(tx, actor, entity.AuditActionDoctorUpdate, metadata); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	updated, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil || updated == nil {
		updated = doctor
	}
	return converter.DoctorToResponse(updated), nil
}

// Verify flips an unverified doctor to verified, making it bookable.
func (u *doctorUsecase) Verify(ctx context.Context, actor entity.Actor, id uuid.UUID) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if doctor.IsVerified {
		return nil, ErrDoctorAlreadyVerified
	}

	doctor.IsVerified = true
	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.WithError(err).Error("failed to verify doctor")
		return nil, err
	}

	metadata := entity.JSON{"doctor_id": id.String()}
	if err := u.auditService.Log(tx, actor, entity.AuditActionDoctorVerify, metadata); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return converter.DoctorToResponse(doctor), nil
}

// Reject removes a pending registration. Verified doctors have history
// hanging off them and can only be deactivated.
func (u *doctorUsecase) Reject(ctx context.Context, actor entity.Actor, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}
	if doctor.IsVerified {
		return ErrDoctorIsVerified
	}

	if err := u.doctorRepo.Delete(tx, id); err != nil {
		u.log.WithError(err).Error("failed to reject doctor")
		return err
	}

	metadata := entity.JSON{"doctor_id": id.String(), "license_number": doctor.LicenseNumber}
	if err := u.auditService.Log(tx, actor, entity.AuditActionDoctorUpdate, metadata); err != nil {
		return err
	}

	return tx.Commit().Error
}

func (u *doctorUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.WithError(err).Error("failed to find doctor")
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) ListAll(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.WithError(err).Error("failed to list doctors")
		return nil, err
	}
	responses := converter.DoctorsToResponses(doctors)
	return &dto.DoctorListResponse{Doctors: responses, Total: len(responses)}, nil
}

func (u *doctorUsecase) ListUnverified(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindUnverified(u.db.WithContext(ctx))
	if err != nil {
		u.log.WithError(err).Error("failed to list unverified doctors")
		return nil, err
	}
	responses := converter.DoctorsToResponses(doctors)
	return &dto.DoctorListResponse{Doctors: responses, Total: len(responses)}, nil
}

func (u *doctorUsecase) ListBookable(ctx context.Context, specializationID int) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindBookable(u.db.WithContext(ctx), specializationID)
	if err != nil {
		u.log.WithError(err).Error("failed to list bookable doctors")
		return nil, err
	}
	responses := converter.DoctorsToResponses(doctors)
	return &dto.DoctorListResponse{Doctors: responses, Total: len(responses)}, nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"

	"healthcareplus/config"
	"healthcareplus/internal/delivery/dto"
	"healthcareplus/internal/domain/entity"
	"healthcareplus/internal/domain/repository"
	"healthcareplus/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrMobileAlreadyExists   = errors.New("mobile number is already registered")
	ErrLicenseAlreadyExists  = errors.New("license number is already registered")
	ErrInvalidToken          = errors.New("invalid or expired token")
	ErrAccountNotFound       = errors.New("account not found")
	ErrSpecializationMissing = errors.New("specialization not found")
)

type AuthUsecase interface {
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.AccountResponse, error)
	RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.AccountResponse, error)
	LoginPatient(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	LoginDoctor(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	LoginStaff(ctx context.Context, req *dto.StaffLoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, claims *jwt.Claims) error
	Me(ctx context.Context, actor entity.Actor) (*dto.AccountResponse, error)
	SeedAdmin(ctx context.Context, cfg config.AdminConfig) error
}

type authUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	jwtService  *jwt.JWTService
	redisClient *redis.Client
	jwtConfig   config.JWTConfig
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
	staffRepo   repository.StaffRepository
	specRepo    repository.SpecializationRepository
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
	jwtConfig config.JWTConfig,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	staffRepo repository.StaffRepository,
	specRepo repository.SpecializationRepository,
) AuthUsecase {
	return &authUsecase{
		db:          db,
		log:         log,
		jwtService:  jwtService,
		redisClient: redisClient,
		jwtConfig:   jwtConfig,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
		staffRepo:   staffRepo,
		specRepo:    specRepo,
	}
}

func (u *authUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.AccountResponse, error) {
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

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
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

	if err := tx.Commit().Error; err != nil {
		u.log.WithError(err).Error("failed to commit patient registration")
		return nil, err
	}

	return &dto.AccountResponse{
		ID:           patient.ID,
		FullName:     patient.FullName,
		MobileNumber: patient.MobileNumber,
		Email:        patient.Email,
		Role:         entity.RolePatient,
		CreatedAt:    patient.CreatedAt,
	}, nil
}

func (u *authUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.AccountResponse, error) {
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
		u.log.WithError(err).Error("failed to check mobile number")
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
		IsVerified:          false,
		AppointmentsPerDay:  entity.DefaultAppointmentsPerDay,
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

	if err := tx.Commit().Error; err != nil {
		u.log.WithError(err).Error("failed to commit doctor registration")
		return nil, err
	}

	verified := doctor.IsVerified
	return &dto.AccountResponse{
		ID:           doctor.ID,
		FullName:     doctor.FullName,
		MobileNumber: doctor.MobileNumber,
		Email:        doctor.Email,
		Role:         entity.RoleDoctor,
		IsVerified:   &verified,
		CreatedAt:    doctor.CreatedAt,
	}, nil
}

func (u *authUsecase) LoginPatient(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	mobile := cleanMobileNumber(req.MobileNumber)

	patient, err := u.patientRepo.FindByMobileNumber(u.db.WithContext(ctx), mobile)
	if err != nil {
		u.log.WithError(err).Error("failed to find patient")
		return nil, err
	}
	if patient == nil || !patient.IsActive {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(patient.Password), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return u.issueTokens(ctx, patient.ID, entity.RolePatient)
}

func (u *authUsecase) LoginDoctor(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	mobile := cleanMobileNumber(req.MobileNumber)

	doctor, err := u.doctorRepo.FindByMobileNumber(u.db.WithContext(ctx), mobile)
	if err != nil {
		u.log.WithError(err).Error("failed to find doctor")
		return nil, err
	}
	if doctor == nil || !doctor.IsActive {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(doctor.Password), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return u.issueTokens(ctx, doctor.ID, entity.RoleDoctor)
}

func (u *authUsecase) LoginStaff(ctx context.Context, req *dto.StaffLoginRequest) (*dto.TokenResponse, error) {
	staff, err := u.staffRepo.FindByUsername(u.db.WithContext(ctx), req.Username)
	if err != nil {
		u.log.WithError(err).Error("failed to find staff credential")
		return nil, err
	}
	if staff == nil || !staff.IsActive {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return u.issueTokens(ctx, staff.ID, staff.Role)
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil || claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	key := tokenKey(jwt.RefreshToken, claims.UserID, claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, key).Result()
	if err != nil {
		u.log.WithError(err).Error("failed to check refresh token")
		return nil, err
	}
	if exists == 0 {
		return nil, ErrInvalidToken
	}

	// Rotate: the old refresh token is spent the moment a new pair is
	// issued.
	if err := u.redisClient.Del(ctx, key).Err(); err != nil {
		u.log.WithError(err).Warn("failed to revoke old refresh token")
	}

	return u.issueTokens(ctx, claims.UserID, claims.Role)
}

func (u *authUsecase) Logout(ctx context.Context, claims *jwt.Claims) error {
	key := tokenKey(claims.TokenType, claims.UserID, claims.TokenID)
	if err := u.redisClient.Del(ctx, key).Err(); err != nil {
		u.log.WithError(err).Error("failed to revoke token")
		return err
	}
	return nil
}

// Me returns the calling account's profile, resolved by the role claim.
func (u *authUsecase) Me(ctx context.Context, actor entity.Actor) (*dto.AccountResponse, error) {
	db := u.db.WithContext(ctx)

	switch actor.Role {
	case entity.RolePatient:
		patient, err := u.patientRepo.FindByID(db, actor.ID)
		if err != nil {
			u.log.WithError(err).Error("failed to find patient")
			return nil, err
		}
		if patient == nil {
			return nil, ErrAccountNotFound
		}
		return &dto.AccountResponse{
			ID:           patient.ID,
			FullName:     patient.FullName,
			MobileNumber: patient.MobileNumber,
			Email:        patient.Email,
			Role:         entity.RolePatient,
			CreatedAt:    patient.CreatedAt,
		}, nil
	case entity.RoleDoctor:
		doctor, err := u.doctorRepo.FindByID(db, actor.ID)
		if err != nil {
			u.log.WithError(err).Error("failed to find doctor")
			return nil, err
		}
		if doctor == nil {
			return nil, ErrAccountNotFound
		}
		verified := doctor.IsVerified
		return &dto.AccountResponse{
			ID:           doctor.ID,
			FullName:     doctor.FullName,
			MobileNumber: doctor.MobileNumber,
			Email:        doctor.Email,
			Role:         entity.RoleDoctor,
			IsVerified:   &verified,
			CreatedAt:    doctor.CreatedAt,
		}, nil
	default:
		staff, err := u.staffRepo.FindByID(db, actor.ID)
		if err != nil {
			u.log.WithError(err).Error("failed to find staff credential")
			return nil, err
		}
		if staff == nil {
			return nil, ErrAccountNotFound
		}
		return &dto.AccountResponse{
			ID:        staff.ID,
			FullName:  staff.Username,
			Role:      staff.Role,
			CreatedAt: staff.CreatedAt,
		}, nil
	}
}

// SeedAdmin creates the initial admin credential when no admin exists yet.
func (u *authUsecase) SeedAdmin(ctx context.Context, cfg config.AdminConfig) error {
	if cfg.Username == "" || cfg.Password == "" {
		return nil
	}

	db := u.db.WithContext(ctx)
	count, err := u.staffRepo.CountByRole(db, entity.RoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &entity.StaffCredential{
		ID:       uuid.New(),
		Username: cfg.Username,
		Password: string(hashed),
		Role:     entity.RoleAdmin,
		IsActive: true,
	}
	if err := u.staffRepo.Create(db, admin); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil
		}
		return err
	}

	u.log.WithField("username", cfg.Username).Info("seeded initial admin account")
	return nil
}

func (u *authUsecase) issueTokens(ctx context.Context, userID uuid.UUID, role string) (*dto.TokenResponse, error) {
	accessToken, accessID, err := u.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		u.log.WithError(err).Error("failed to generate access token")
		return nil, err
	}
	refreshToken, refreshID, err := u.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		u.log.WithError(err).Error("failed to generate refresh token")
		return nil, err
	}

	if err := u.redisClient.Set(ctx, tokenKey(jwt.AccessToken, userID, accessID), "valid", u.jwtConfig.AccessExpiry).Err(); err != nil {
		u.log.WithError(err).Error("failed to store access token")
		return nil, err
	}
	if err := u.redisClient.Set(ctx, tokenKey(jwt.RefreshToken, userID, refreshID), "valid", u.jwtConfig.RefreshExpiry).Err(); err != nil {
		u.log.WithError(err).Error("failed to store refresh token")
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(u.jwtConfig.AccessExpiry.Seconds()),
	}, nil
}

// tokenKey builds the Redis key under which an issued token is tracked.
// Deleting the key revokes the token before its JWT expiry.
func tokenKey(tokenType jwt.TokenType, userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s_token:%s:%s", tokenType, userID, tokenID)
}

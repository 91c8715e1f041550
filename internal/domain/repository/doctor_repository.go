package repository

import (
	"healthcareplus/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	FindByMobileNumber(db *gorm.DB, mobileNumber string) (*entity.Doctor, error)
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	// FindBookable returns active, verified doctors, optionally filtered by
	// specialization (0 = all).
	FindBookable(db *gorm.DB, specializationID int) ([]entity.Doctor, error)
	FindUnverified(db *gorm.DB) ([]entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	Delete(db *gorm.DB, id uuid.UUID) error
}

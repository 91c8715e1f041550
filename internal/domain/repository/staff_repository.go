package repository

import (
	"healthcareplus/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffRepository interface {
	Create(db *gorm.DB, staff *entity.StaffCredential) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.StaffCredential, error)
	FindByUsername(db *gorm.DB, username string) (*entity.StaffCredential, error)
	CountByRole(db *gorm.DB, role string) (int64, error)
}

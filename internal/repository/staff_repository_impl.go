package repository

import (
	"errors"

	"healthcareplus/internal/domain/entity"
	domainRepo "healthcareplus/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type staffRepository struct{}

func NewStaffRepository() domainRepo.StaffRepository {
	return &staffRepository{}
}

func (r *staffRepository) Create(db *gorm.DB, staff *entity.StaffCredential) error {
	return db.Create(staff).Error
}

func (r *staffRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.StaffCredential, error) {
	var staff entity.StaffCredential
	err := db.Where("id = ?", id).First(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) FindByUsername(db *gorm.DB, username string) (*entity.StaffCredential, error) {
	var staff entity.StaffCredential
	err := db.Where("username = ?", username).First(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) CountByRole(db *gorm.DB, role string) (int64, error) {
	var count int64
	err := db.Model(&entity.StaffCredential{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

package repository

import (
	"errors"

	"healthcareplus/internal/domain/entity"
	domainRepo "healthcareplus/internal/domain/repository"

	"gorm.io/gorm"
)

type mailSettingRepository struct{}

func NewMailSettingRepository() domainRepo.MailSettingRepository {
	return &mailSettingRepository{}
}

// Get returns the single settings row, or the fallback defaults when none
// has been configured yet.
func (r *mailSettingRepository) Get(db *gorm.DB) (*entity.MailSetting, error) {
	var setting entity.MailSetting
	err := db.First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.DefaultMailSetting(), nil
		}
		return nil, err
	}
	return &setting, nil
}

func (r *mailSettingRepository) Save(db *gorm.DB, setting *entity.MailSetting) error {
	return db.Save(setting).Error
}

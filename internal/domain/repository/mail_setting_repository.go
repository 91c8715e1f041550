package repository

import (
	"healthcareplus/internal/domain/entity"

	"gorm.io/gorm"
)

type MailSettingRepository interface {
	Get(db *gorm.DB) (*entity.MailSetting, error)
	Save(db *gorm.DB, setting *entity.MailSetting) error
}

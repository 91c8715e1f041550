package usecase

import (
	"context"

	"healthcareplus/internal/delivery/dto"
	"healthcareplus/internal/domain/entity"
	"healthcareplus/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type MailSettingUsecase interface {
	Get(ctx context.Context) (*dto.MailSettingResponse, error)
	Update(ctx context.Context, req *dto.UpdateMailSettingRequest) (*dto.MailSettingResponse, error)
}

type mailSettingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	mailSettingRepo repository.MailSettingRepository
}

func NewMailSettingUsecase(db *gorm.DB, log *logrus.Logger, mailSettingRepo repository.MailSettingRepository) MailSettingUsecase {
	return &mailSettingUsecase{db: db, log: log, mailSettingRepo: mailSettingRepo}
}

func (u *mailSettingUsecase) Get(ctx context.Context) (*dto.MailSettingResponse, error) {
	setting, err := u.mailSettingRepo.Get(u.db.WithContext(ctx))
	if err != nil {
		u.log.WithError(err).Error("failed to load mail settings")
		return nil, err
	}
	if setting == nil {
		setting = entity.DefaultMailSetting()
	}
	return mailSettingToResponse(setting), nil
}

// Update replaces the single settings row. The stored password survives
// when the request omits it, so the form can be saved without re-entering
// the secret.
func (u *mailSettingUsecase) Update(ctx context.Context, req *dto.UpdateMailSettingRequest) (*dto.MailSettingResponse, error) {
	db := u.db.WithContext(ctx)

	setting, err := u.mailSettingRepo.Get(db)
	if err != nil {
		u.log.WithError(err).Error("failed to load mail settings")
		return nil, err
	}
	if setting == nil {
		setting = entity.DefaultMailSetting()
	}

	setting.MailServer = req.MailServer
	setting.MailPort = req.MailPort
	setting.MailUsername = req.MailUsername
	setting.DefaultName = req.DefaultName
	setting.DefaultEmail = req.DefaultEmail
	if req.MailUseTLS != nil {
		setting.MailUseTLS = *req.MailUseTLS
	}
	if req.MailPassword != "" {
		setting.MailPassword = req.MailPassword
	}

	if err := u.mailSettingRepo.Save(db, setting); err != nil {
		u.log.WithError(err).Error("failed to save mail settings")
		return nil, err
	}
	return mailSettingToResponse(setting), nil
}

func mailSettingToResponse(setting *entity.MailSetting) *dto.MailSettingResponse {
	return &dto.MailSettingResponse{
		MailServer:   setting.MailServer,
		MailPort:     setting.MailPort,
		MailUseTLS:   setting.MailUseTLS,
		MailUsername: setting.MailUsername,
		DefaultName:  setting.DefaultName,
		DefaultEmail: setting.DefaultEmail,
		Configured:   setting.IsComplete(),
	}
}

package usecase

import (
	"context"

	"healthcareplus/internal/converter"
	"healthcareplus/internal/delivery/dto"
	"healthcareplus/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditLogUsecase interface {
	ListAll(ctx context.Context) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{db: db, log: log, auditRepo: auditRepo}
}

func (u *auditLogUsecase) ListAll(ctx context.Context) (*dto.AuditLogListResponse, error) {
	logs, err := u.auditRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.WithError(err).Error("failed to list audit logs")
		return nil, err
	}
	responses := converter.AuditLogsToResponses(logs)
	return &dto.AuditLogListResponse{Logs: responses, Total: len(responses)}, nil
}

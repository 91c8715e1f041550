package service

import (
	"healthcareplus/internal/domain/entity"
	"healthcareplus/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService records who performed which lifecycle action. Entries are
// written inside the caller's transaction so the trail and the change
// commit together.
type AuditService interface {
	Log(tx *gorm.DB, actor entity.Actor, action string, metadata entity.JSON) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Log(tx *gorm.DB, actor entity.Actor, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		ActorRole: actor.Role,
		Action:    action,
		Metadata:  metadata,
	}
	if actor.ID != uuid.Nil {
		id := actor.ID
		auditLog.ActorID = &id
	}

	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}

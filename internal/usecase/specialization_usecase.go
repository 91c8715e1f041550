package usecase

import (
	"context"
	"errors"

	"healthcareplus/internal/converter"
	"healthcareplus/internal/delivery/dto"
	"healthcareplus/internal/domain/entity"
	"healthcareplus/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSpecializationNotFound = errors.New("specialization not found")
	ErrSpecializationInUse    = errors.New("specialization is still referenced by doctors")
	ErrSpecializationExists   = errors.New("specialization name already exists")
)

type SpecializationUsecase interface {
	Create(ctx context.Context, req *dto.CreateSpecializationRequest) (*dto.SpecializationResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateSpecializationRequest) (*dto.SpecializationResponse, error)
	Delete(ctx context.Context, id int) error
	GetByID(ctx context.Context, id int) (*dto.SpecializationResponse, error)
	ListAll(ctx context.Context) (*dto.SpecializationListResponse, error)
}

type specializationUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	specRepo repository.SpecializationRepository
}

func NewSpecializationUsecase(db *gorm.DB, log *logrus.Logger, specRepo repository.SpecializationRepository) SpecializationUsecase {
	return &specializationUsecase{db: db, log: log, specRepo: specRepo}
}

func (u *specializationUsecase) Create(ctx context.Context, req *dto.CreateSpecializationRequest) (*dto.SpecializationResponse, error) {
	specialization := &entity.Specialization{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := u.specRepo.Create(u.db.WithContext(ctx), specialization); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrSpecializationExists
		}
		u.log.WithError(err).Error("failed to create specialization")
		return nil, err
	}
	return converter.SpecializationToResponse(specialization), nil
}

func (u *specializationUsecase) Update(ctx context.Context, id int, req *dto.UpdateSpecializationRequest) (*dto.SpecializationResponse, error) {
	db := u.db.WithContext(ctx)

	specialization, err := u.specRepo.FindByID(db, id)
	if err != nil {
		return nil, err
	}
	if specialization == nil {
		return nil, ErrSpecializationNotFound
	}

	if req.Name != "" {
		specialization.Name = req.Name
	}
	if req.Description != "" {
		specialization.Description = req.Description
	}

	if err := u.specRepo.Update(db, specialization); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrSpecializationExists
		}
		u.log.WithError(err).Error("failed to update specialization")
		return nil, err
	}
	return converter.SpecializationToResponse(specialization), nil
}

func (u *specializationUsecase) Delete(ctx context.Context, id int) error {
	db := u.db.WithContext(ctx)

	specialization, err := u.specRepo.FindByID(db, id)
	if err != nil {
		return err
	}
	if specialization == nil {
		return ErrSpecializationNotFound
	}

	if err := u.specRepo.Delete(db, id); err != nil {
		if isForeignKeyError(err, "specialization") {
			return ErrSpecializationInUse
		}
		u.log.WithError(err).Error("failed to delete specialization")
		return err
	}
	return nil
}

func (u *specializationUsecase) GetByID(ctx context.Context, id int) (*dto.SpecializationResponse, error) {
	specialization, err := u.specRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.WithError(err).Error("failed to find specialization")
		return nil, err
	}
	if specialization == nil {
		return nil, ErrSpecializationNotFound
	}
	return converter.SpecializationToResponse(specialization), nil
}

func (u *specializationUsecase) ListAll(ctx context.Context) (*dto.SpecializationListResponse, error) {
	specializations, err := u.specRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.WithError(err).Error("failed to list specializations")
		return nil, err
	}
	responses := converter.SpecializationsToResponses(specializations)
	return &dto.SpecializationListResponse{Specializations: responses, Total: len(responses)}, nil
}

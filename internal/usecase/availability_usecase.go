package usecase

import (
	"context"
	"errors"
	"time"

	"healthcareplus/internal/delivery/dto"
	"healthcareplus/internal/domain/entity"
	"healthcareplus/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type AvailabilityUsecase interface {
	CheckDay(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AvailabilityResponse, error)
	CheckSlot(ctx context.Context, doctorID uuid.UUID, date, timeOfDay string) (*dto.AvailabilityResponse, error)
}

type availabilityUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:              db,
		log:             log,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
	}
}

// CheckDay reports whether the doctor can take at least one more appointment
// on the given date. The answer is advisory only, booking re-checks inside
// its own transaction.
func (u *availabilityUsecase) CheckDay(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AvailabilityResponse, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	res := &dto.AvailabilityResponse{DoctorID: doctorID, Date: day.Format("2006-01-02")}
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		u.log.WithError(err).Error("failed to find doctor")
		return nil, err
	}
	if doctor == nil {
		res.Reason = "doctor not found"
		return res, nil
	}
	if !doctor.IsBookable() || doctor.AppointmentsPerDay <= 0 {
		res.Reason = "doctor is not accepting appointments"
		return res, nil
	}

	count, err := u.appointmentRepo.CountOccupying(db, doctorID, day)
	if err != nil {
		u.log.WithError(err).Error("failed to count appointments")
		return nil, err
	}

	if count >= int64(doctor.AppointmentsPerDay) {
		res.Reason = "doctor is fully booked for this date"
		return res, nil
	}
	res.Available = true
	res.SlotsRemaining = doctor.AppointmentsPerDay - int(count)
	return res, nil
}

// CheckSlot additionally checks that the exact time slot is free.
func (u *availabilityUsecase) CheckSlot(ctx context.Context, doctorID uuid.UUID, date, timeOfDay string) (*dto.AvailabilityResponse, error) {
	slot, err := parseTimeOfDay(timeOfDay)
	if err != nil {
		return nil, err
	}

	res, err := u.CheckDay(ctx, doctorID, date)
	if err != nil || !res.Available {
		return res, err
	}

	day, _ := parseDate(date)
	taken, err := u.appointmentRepo.SlotTaken(u.db.WithContext(ctx), doctorID, day, slot)
	if err != nil {
		u.log.WithError(err).Error("failed to check slot")
		return nil, err
	}
	if taken {
		res.Available = false
		res.SlotsRemaining = 0
		res.Reason = "this time slot is already booked"
	}
	return res, nil
}

// occupancyFor is the in-transaction variant of the availability decision,
// shared with booking so both read through the same snapshot.
func occupancyFor(tx *gorm.DB, appointmentRepo repository.AppointmentRepository, doctor *entity.Doctor, day time.Time) error {
	if doctor.AppointmentsPerDay <= 0 {
		return ErrDoctorFullyBooked
	}
	count, err := appointmentRepo.CountOccupying(tx, doctor.ID, day)
	if err != nil {
		return err
	}
	if count >= int64(doctor.AppointmentsPerDay) {
		return ErrDoctorFullyBooked
	}
	return nil
}

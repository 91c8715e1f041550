package repository

import (
	"time"

	"healthcareplus/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID, date *time.Time) ([]entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	FindOccupyingByDate(db *gorm.DB, date time.Time) ([]entity.Appointment, error)
	// CountOccupying counts appointments holding a slot for the doctor on
	// the given calendar date.
	CountOccupying(db *gorm.DB, doctorID uuid.UUID, date time.Time) (int64, error)
	// SlotTaken reports whether an occupying appointment already exists at
	// the exact (doctor, date, time) slot.
	SlotTaken(db *gorm.DB, doctorID uuid.UUID, date time.Time, timeOfDay string) (bool, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error
	Update(db *gorm.DB, appointment *entity.Appointment) error
	// CancelIfNotCancelled atomically cancels the appointment unless it is
	// already cancelled. Returns affected rows: 1 = cancelled now, 0 = was
	// already cancelled.
	CancelIfNotCancelled(db *gorm.DB, id uuid.UUID) (int64, error)
}

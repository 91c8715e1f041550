package usecase

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"healthcareplus/internal/converter"
	"healthcareplus/internal/delivery/dto"
	"healthcareplus/internal/domain/entity"
	"healthcareplus/internal/domain/repository"
	"healthcareplus/internal/infrastructure/payment"
	"healthcareplus/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound       = errors.New("appointment not found")
	ErrPatientNotFound           = errors.New("patient not found")
	ErrDoctorNotBookable         = errors.New("doctor is not accepting appointments")
	ErrDoctorFullyBooked         = errors.New("doctor is fully booked for this date")
	ErrSlotTaken                 = errors.New("this time slot is already booked")
	ErrPastDate                  = errors.New("appointment date cannot be in the past")
	ErrInvalidStatus             = errors.New("invalid appointment status")
	ErrInvalidTransition         = errors.New("invalid status transition")
	ErrAlreadyCancelled          = errors.New("appointment is already cancelled")
	ErrNotAppointmentOwner       = errors.New("appointment does not belong to you")
	ErrActorNotAllowed           = errors.New("you are not allowed to perform this action")
	ErrPaymentVerificationFailed = errors.New("payment signature verification failed")
	ErrPaymentAlreadyRecorded    = errors.New("a payment is already recorded for this appointment")
	ErrInvalidAmount             = errors.New("invalid payment amount")
)

type AppointmentUsecase interface {
	Book(ctx context.Context, actor entity.Actor, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	BookPaid(ctx context.Context, actor entity.Actor, patientID uuid.UUID, req *dto.BookPaidAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, actor entity.Actor, id uuid.UUID, status string) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, actor entity.Actor, id uuid.UUID) error
	Edit(ctx context.Context, actor entity.Actor, id uuid.UUID, req *dto.EditAppointmentRequest) (*dto.AppointmentResponse, error)
	GetByID(ctx context.Context, actor entity.Actor, id uuid.UUID) (*dto.AppointmentResponse, error)
	ListForPatient(ctx context.Context, patientID uuid.UUID) ([]dto.AppointmentResponse, error)
	ListForDoctor(ctx context.Context, doctorID uuid.UUID, date *string) ([]dto.AppointmentResponse, error)
	ListAll(ctx context.Context, portal entity.Portal) ([]dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	paymentRepo     repository.PaymentRepository
	gateway         payment.Gateway
	auditService    service.AuditService
	notifier        *service.Notifier
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	paymentRepo repository.PaymentRepository,
	gateway payment.Gateway,
	auditService service.AuditService,
	notifier *service.Notifier,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		paymentRepo:     paymentRepo,
		gateway:         gateway,
		auditService:    auditService,
		notifier:        notifier,
	}
}

// serializableTx runs fn inside a serializable transaction so that the
// capacity count, the slot check and the insert all observe one snapshot.
// Concurrent bookings for the same slot fall back to the partial unique
// index and surface as a duplicate key error.
func (u *appointmentUsecase) serializableTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return u.db.WithContext(ctx).Transaction(fn, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

// validateBookingTarget loads and checks the patient and doctor referenced
// by a booking request.
func (u *appointmentUsecase) validateBookingTarget(db *gorm.DB, patientID, doctorID uuid.UUID) (*entity.Patient, *entity.Doctor, error) {
	patient, err := u.patientRepo.FindByID(db, patientID)
	if err != nil {
		u.log.WithError(err).Error("failed to find patient")
		return nil, nil, err
	}
	if patient == nil || !patient.IsActive {
		return nil, nil, ErrPatientNotFound
	}

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		u.log.WithError(err).Error("failed to find doctor")
		return nil, nil, err
	}
	if doctor == nil {
		return nil, nil, ErrDoctorNotFound
	}
	if !doctor.IsBookable() {
		return nil, nil, ErrDoctorNotBookable
	}
	return patient, doctor, nil
}

// book is the shared booking core. When pay is non-nil the payment row is
// written in the same transaction as the appointment, so a failed insert
// never leaves a verified payment behind.
func (u *appointmentUsecase) book(ctx context.Context, actor entity.Actor, req *dto.CreateAppointmentRequest, pay *entity.Payment) (*entity.Appointment, error) {
	day, err := parseDate(req.AppointmentDate)
	if err != nil {
		return nil, err
	}
	slot, err := parseTimeOfDay(req.AppointmentTime)
	if err != nil {
		return nil, err
	}
	if day.Before(today()) {
		return nil, ErrPastDate
	}

	patient, doctor, err := u.validateBookingTarget(u.db.WithContext(ctx), req.PatientID, req.DoctorID)
	if err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		ID:              uuid.New(),
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		PatientName:     patient.FullName,
		AppointmentDate: day,
		AppointmentTime: slot,
		Reason:          req.Reason,
		Status:          entity.StatusScheduled,
	}

	err = u.serializableTx(ctx, func(tx *gorm.DB) error {
		if err := occupancyFor(tx, u.appointmentRepo, doctor, day); err != nil {
			return err
		}

		taken, err := u.appointmentRepo.SlotTaken(tx, doctor.ID, day, slot)
		if err != nil {
			return err
		}
		if taken {
			return ErrSlotTaken
		}

		if err := u.appointmentRepo.Create(tx, appointment); err != nil {
			if isDuplicateKeyError(err, "uq_appointments_slot") {
				return ErrSlotTaken
			}
			return err
		}

		if pay != nil {
			pay.AppointmentID = appointment.ID
			if err := u.paymentRepo.Create(tx, pay); err != nil {
				if isDuplicateKeyError(err, "appointment_id") {
					return ErrPaymentAlreadyRecorded
				}
				return err
			}
		}

		metadata := entity.JSON{
			"appointment_id": appointment.ID.String(),
			"doctor_id":      doctor.ID.String(),
			"date":           day.Format("2006-01-02"),
			"time":           slot,
			"paid":           pay != nil,
		}
		return u.auditService.Log(tx, actor, entity.AuditActionAppointmentBook, metadata)
	})
	if err != nil {
		return nil, err
	}

	created, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || created == nil {
		// The booking committed, fall back to the in-memory copy.
		u.log.WithError(err).Warn("failed to reload appointment after booking")
		created = appointment
		created.Patient = *patient
		created.Doctor = *doctor
	}

	u.notifier.NotifyBookingConfirmed(created)
	return created, nil
}

func (u *appointmentUsecase) Book(ctx context.Context, actor entity.Actor, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.book(ctx, actor, req, nil)
	if err != nil {
		return nil, err
	}
	return converter.AppointmentToResponse(appointment, portalFor(actor), today()), nil
}

func (u *appointmentUsecase) BookPaid(ctx context.Context, actor entity.Actor, patientID uuid.UUID, req *dto.BookPaidAppointmentRequest) (*dto.AppointmentResponse, error) {
	// Signature verification is a hard precondition. Nothing is persisted,
	// not even a failed payment row, until the proof checks out.
	if !u.gateway.VerifySignature(req.GatewayOrderID, req.GatewayPaymentID, req.GatewaySignature) {
		u.log.WithFields(logrus.Fields{
			"order_id":   req.GatewayOrderID,
			"payment_id": req.GatewayPaymentID,
		}).Warn("payment signature verification failed")
		return nil, ErrPaymentVerificationFailed
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.IsNegative() || amount.IsZero() {
		return nil, ErrInvalidAmount
	}
	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	pay := &entity.Payment{
		ID:               uuid.New(),
		GatewayOrderID:   req.GatewayOrderID,
		GatewayPaymentID: req.GatewayPaymentID,
		Amount:           amount,
		Currency:         currency,
		Status:           entity.PaymentStatusCaptured,
	}

	createReq := &dto.CreateAppointmentRequest{
		PatientID:       patientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Reason:          req.Reason,
	}
	appointment, err := u.book(ctx, actor, createReq, pay)
	if err != nil {
		return nil, err
	}
	return converter.AppointmentToResponse(appointment, portalFor(actor), today()), nil
}

func (u *appointmentUsecase) UpdateStatus(ctx context.Context, actor entity.Actor, id uuid.UUID, status string) (*dto.AppointmentResponse, error) {
	next, ok := entity.ParseAppointmentStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	var updated *entity.Appointment
	err := u.serializableTx(ctx, func(tx *gorm.DB) error {
		appointment, err := u.appointmentRepo.FindByID(tx, id)
		if err != nil {
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}

		switch actor.Role {
		case entity.RoleDoctor:
			// Doctors walk the state machine one step at a time, and only
			// on their own appointments.
			if appointment.DoctorID != actor.ID {
				return ErrNotAppointmentOwner
			}
			if !appointment.Status.CanTransitionTo(next) {
				return ErrInvalidTransition
			}
		case entity.RoleAdmin, entity.RoleReceptionist:
			// Staff set statuses directly without walking the adjacency,
			// but terminal states stay terminal for everyone.
			if appointment.Status.IsTerminal() && next != appointment.Status {
				return ErrInvalidTransition
			}
		default:
			return ErrActorNotAllowed
		}

		previous := appointment.Status
		if err := u.appointmentRepo.UpdateStatus(tx, id, next); err != nil {
			return err
		}
		appointment.Status = next
		updated = appointment

		metadata := entity.JSON{
			"appointment_id": id.String(),
			"from":           string(previous),
			"to":             string(next),
		}
		return u.auditService.Log(tx, actor, entity.AuditActionAppointmentStatus, metadata)
	})
	if err != nil {
		return nil, err
	}

	u.notifier.NotifyStatusChanged(updated)
	return converter.AppointmentToResponse(updated, portalFor(actor), today()), nil
}

func (u *appointmentUsecase) Cancel(ctx context.Context, actor entity.Actor, id uuid.UUID) error {
	var cancelled *entity.Appointment
	err := u.serializableTx(ctx, func(tx *gorm.DB) error {
		appointment, err := u.appointmentRepo.FindByID(tx, id)
		if err != nil {
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}
		if actor.Role == entity.RolePatient && appointment.PatientID != actor.ID {
			return ErrNotAppointmentOwner
		}
		if appointment.IsCancelled() {
			return ErrAlreadyCancelled
		}
		if !appointment.Status.CanTransitionTo(entity.StatusCancelled) {
			return ErrInvalidTransition
		}

		rows, err := u.appointmentRepo.CancelIfNotCancelled(tx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrAlreadyCancelled
		}
		appointment.Status = entity.StatusCancelled
		cancelled = appointment

		metadata := entity.JSON{"appointment_id": id.String()}
		return u.auditService.Log(tx, actor, entity.AuditActionAppointmentCancel, metadata)
	})
	if err != nil {
		return err
	}

	u.notifier.NotifyStatusChanged(cancelled)
	return nil
}

// Edit lets staff move an appointment to another slot or correct its
// details. The new slot is validated against the same uniqueness rule as
// booking.
func (u *appointmentUsecase) Edit(ctx context.Context, actor entity.Actor, id uuid.UUID, req *dto.EditAppointmentRequest) (*dto.AppointmentResponse, error) {
	if !actor.IsStaff() {
		return nil, ErrActorNotAllowed
	}
	day, err := parseDate(req.AppointmentDate)
	if err != nil {
		return nil, err
	}
	slot, err := parseTimeOfDay(req.AppointmentTime)
	if err != nil {
		return nil, err
	}
	next, ok := entity.ParseAppointmentStatus(req.Status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	var updated *entity.Appointment
	err = u.serializableTx(ctx, func(tx *gorm.DB) error {
		appointment, err := u.appointmentRepo.FindByID(tx, id)
		if err != nil {
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}
		if appointment.Status.IsTerminal() && next != appointment.Status {
			return ErrInvalidTransition
		}

		moved := !sameCalendarDay(appointment.AppointmentDate, day) || appointment.AppointmentTime != slot && appointment.AppointmentTime != slot+":00"
		if moved && next.Occupies() {
			taken, err := u.appointmentRepo.SlotTaken(tx, appointment.DoctorID, day, slot)
			if err != nil {
				return err
			}
			if taken {
				return ErrSlotTaken
			}
		}

		appointment.AppointmentDate = day
		appointment.AppointmentTime = slot
		appointment.Reason = req.Reason
		appointment.Status = next
		if err := u.appointmentRepo.Update(tx, appointment); err != nil {
			if isDuplicateKeyError(err, "uq_appointments_slot") {
				return ErrSlotTaken
			}
			return err
		}
		updated = appointment

		metadata := entity.JSON{
			"appointment_id": id.String(),
			"date":           day.Format("2006-01-02"),
			"time":           slot,
			"status":         string(next),
		}
		return u.auditService.Log(tx, actor, entity.AuditActionAppointmentEdit, metadata)
	})
	if err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(updated, portalFor(actor), today()), nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, actor entity.Actor, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.WithError(err).Error("failed to find appointment")
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	switch actor.Role {
	case entity.RolePatient:
		if appointment.PatientID != actor.ID {
			return nil, ErrNotAppointmentOwner
		}
	case entity.RoleDoctor:
		if appointment.DoctorID != actor.ID {
			return nil, ErrNotAppointmentOwner
		}
	}

	return converter.AppointmentToResponse(appointment, portalFor(actor), today()), nil
}

func (u *appointmentUsecase) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.WithError(err).Error("failed to list patient appointments")
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments, entity.PortalPatient, today()), nil
}

func (u *appointmentUsecase) ListForDoctor(ctx context.Context, doctorID uuid.UUID, date *string) ([]dto.AppointmentResponse, error) {
	var day *time.Time
	if date != nil && *date != "" {
		parsed, err := parseDate(*date)
		if err != nil {
			return nil, err
		}
		day = &parsed
	}

	appointments, err := u.appointmentRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID, day)
	if err != nil {
		u.log.WithError(err).Error("failed to list doctor appointments")
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments, entity.PortalDoctor, today()), nil
}

func (u *appointmentUsecase) ListAll(ctx context.Context, portal entity.Portal) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.WithError(err).Error("failed to list appointments")
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments, portal, today()), nil
}

// portalFor maps an authenticated role to the portal whose wording the
// response should use.
func portalFor(actor entity.Actor) entity.Portal {
	switch actor.Role {
	case entity.RoleDoctor:
		return entity.PortalDoctor
	case entity.RoleAdmin:
		return entity.PortalAdmin
	case entity.RoleReceptionist:
		return entity.PortalReceptionist
	default:
		return entity.PortalPatient
	}
}

func sameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

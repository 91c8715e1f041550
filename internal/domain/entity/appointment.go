package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the persisted status of an appointment
type AppointmentStatus string

const (
	StatusScheduled         AppointmentStatus = "scheduled"
	StatusConfirmed         AppointmentStatus = "confirmed"
	StatusUnderConsultation AppointmentStatus = "under_consultation"
	StatusCompleted         AppointmentStatus = "completed"
	StatusCancelled         AppointmentStatus = "cancelled"
)

// transitions is the adjacency list of the appointment state machine.
// completed and cancelled are terminal.
var transitions = map[AppointmentStatus][]AppointmentStatus{
	StatusScheduled:         {StatusConfirmed, StatusCancelled},
	StatusConfirmed:         {StatusUnderConsultation, StatusCancelled},
	StatusUnderConsultation: {StatusCompleted},
}

// ParseAppointmentStatus returns the status for its wire representation.
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case StatusScheduled, StatusConfirmed, StatusUnderConsultation, StatusCompleted, StatusCancelled:
		return AppointmentStatus(s), true
	}
	return "", false
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transitions leave s.
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Occupies reports whether s counts against a doctor's daily capacity.
func (s AppointmentStatus) Occupies() bool {
	return s == StatusScheduled || s == StatusConfirmed || s == StatusUnderConsultation
}

// OccupyingStatuses is the set of statuses that hold a slot, for use in
// repository queries.
var OccupyingStatuses = []AppointmentStatus{StatusScheduled, StatusConfirmed, StatusUnderConsultation}

// Portal identifies which role-scoped front end is rendering a value.
// Display wording differs between the patient portal and the staff portals.
type Portal string

const (
	PortalPatient      Portal = "patient"
	PortalDoctor       Portal = "doctor"
	PortalAdmin        Portal = "admin"
	PortalReceptionist Portal = "receptionist"
)

// Appointment links one patient and one doctor to a dated, timed visit.
// It is the aggregation root for prescriptions and payments.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PatientName     string            `gorm:"type:varchar(100);not null" json:"patient_name"`
	AppointmentDate time.Time         `gorm:"type:date;not null;index" json:"appointment_date"`
	AppointmentTime string            `gorm:"type:time;not null" json:"appointment_time"`
	Reason          string            `gorm:"type:text" json:"reason,omitempty"`
	Status          AppointmentStatus `gorm:"type:appointment_status;not null;default:'scheduled';index" json:"status"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient       Patient        `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor        Doctor         `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Prescriptions []Prescription `gorm:"foreignKey:AppointmentID" json:"prescriptions,omitempty"`
	Payment       *Payment       `gorm:"foreignKey:AppointmentID" json:"payment,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// IsCompleted checks if the appointment is completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == StatusCompleted
}

// DisplayStatus derives the human-readable label shown for an appointment.
// The label is never persisted. Evaluation order matches the portals:
// terminal states first, then the same-day case, then the booked wording.
func DisplayStatus(status AppointmentStatus, date, today time.Time, portal Portal) string {
	switch status {
	case StatusCancelled:
		return "Cancelled"
	case StatusCompleted:
		if portal == PortalPatient {
			return "Completed"
		}
		return "Appointment Done"
	}

	if sameDay(date, today) {
		return "Today Scheduled"
	}

	if status == StatusScheduled {
		if portal == PortalPatient {
			return "Scheduled"
		}
		return "Appointment Booked"
	}

	return titleCase(string(status))
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// titleCase turns "under_consultation" into "Under Consultation".
func titleCase(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

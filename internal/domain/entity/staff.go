package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role names carried as JWT claims.
const (
	RoleAdmin        = "admin"
	RoleReceptionist = "receptionist"
	RoleDoctor       = "doctor"
	RolePatient      = "patient"
)

// StaffCredential is the credential store for admin and receptionist
// accounts. It replaces session-held credentials and hardcoded constants.
type StaffCredential struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username  string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null;index" json:"role"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StaffCredential) TableName() string {
	return "staff_credentials"
}

// Actor identifies who is invoking a lifecycle operation and under which
// role, so the applicable rule set can be selected.
type Actor struct {
	ID   uuid.UUID
	Role string
}

// IsStaff reports whether the actor uses the permissive direct-set rules.
func (a Actor) IsStaff() bool {
	return a.Role == RoleAdmin || a.Role == RoleReceptionist
}

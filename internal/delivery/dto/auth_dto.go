package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterPatientRequest struct {
	FullName     string `json:"full_name" validate:"required,min=2,max=100"`
	MobileNumber string `json:"mobile_number" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	Password     string `json:"password" validate:"required,min=8"`
}

type RegisterDoctorRequest struct {
	FullName            string `json:"full_name" validate:"required,min=2,max=100"`
	MobileNumber        string `json:"mobile_number" validate:"required"`
	Email               string `json:"email" validate:"omitempty,email"`
	SpecializationID    int    `json:"specialization_id" validate:"required,min=1"`
	LicenseNumber       string `json:"license_number" validate:"required,max=50"`
	ExperienceYears     int    `json:"experience_years" validate:"gte=0,lte=50"`
	Qualification       string `json:"qualification" validate:"required,max=200"`
	HospitalAffiliation string `json:"hospital_affiliation" validate:"omitempty,max=200"`
	Password            string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	MobileNumber string `json:"mobile_number" validate:"required"`
	Password     string `json:"password" validate:"required"`
}

type StaffLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Response DTOs

type AccountResponse struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	MobileNumber string    `json:"mobile_number,omitempty"`
	Email        string    `json:"email,omitempty"`
	Role         string    `json:"role"`
	IsVerified   *bool     `json:"is_verified,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

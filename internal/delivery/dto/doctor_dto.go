package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// UpdateDoctorProfileRequest changes only the fields that are present
type UpdateDoctorProfileRequest struct {
	Specialization  *string          `json:"specialization" validate:"omitempty,max=100"`
	Bio             *string          `json:"bio" validate:"omitempty,max=5000"`
	AvailableSlots  *string          `json:"availableSlots" validate:"omitempty,max=2000"`
	ConsultationFee *decimal.Decimal `json:"consultationFee"`
}

// Response DTOs

type DoctorProfileResponse struct {
	ID              uuid.UUID        `json:"id"`
	UserID          uuid.UUID        `json:"userId"`
	Name            string           `json:"name,omitempty"`
	Email           string           `json:"email,omitempty"`
	Specialization  string           `json:"specialization"`
	Bio             string           `json:"bio"`
	AvailableSlots  string           `json:"availableSlots"`
	ConsultationFee *decimal.Decimal `json:"consultationFee"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

type DoctorListResponse struct {
	Doctors []DoctorProfileResponse `json:"doctors"`
	Total   int                     `json:"total"`
}

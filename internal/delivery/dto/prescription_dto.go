package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePrescriptionRequest struct {
	AppointmentID string `json:"appointmentId" validate:"required,uuid"`
	Medications   string `json:"medications" validate:"required,max=5000"`
	Instructions  string `json:"instructions" validate:"omitempty,max=5000"`
}

// Response DTOs

type PrescriptionResponse struct {
	ID            uuid.UUID            `json:"id"`
	AppointmentID uuid.UUID            `json:"appointmentId"`
	Medications   string               `json:"medications"`
	Instructions  string               `json:"instructions"`
	HasDocument   bool                 `json:"hasDocument"`
	Appointment   *AppointmentResponse `json:"appointment,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
}

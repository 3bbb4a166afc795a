package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID string      `json:"doctorId" validate:"required,uuid"`
	Date     RequestTime `json:"date" validate:"required"`
	Issue    string      `json:"issue" validate:"required,max=2000"`
}

type UpdateAppointmentStatusRequest struct {
	Status string       `json:"status" validate:"required,appointment_status"`
	Date   *RequestTime `json:"date"`
}

// Response DTOs

// ParticipantResponse is the counterpart identity shown on an appointment
type ParticipantResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Specialization string    `json:"specialization,omitempty"`
}

type AppointmentResponse struct {
	ID              uuid.UUID             `json:"id"`
	PatientID       uuid.UUID             `json:"patientId"`
	DoctorID        uuid.UUID             `json:"doctorId"`
	Date            time.Time             `json:"date"`
	RescheduledDate *time.Time            `json:"rescheduledDate"`
	Issue           string                `json:"issue"`
	Status          string                `json:"status"`
	Patient         *ParticipantResponse  `json:"patient,omitempty"`
	Doctor          *ParticipantResponse  `json:"doctor,omitempty"`
	Prescription    *PrescriptionResponse `json:"prescription,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentStatus represents the lifecycle tag of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending     AppointmentStatus = "PENDING"
	AppointmentStatusConfirmed   AppointmentStatus = "CONFIRMED"
	AppointmentStatusRescheduled AppointmentStatus = "RESCHEDULED"
	AppointmentStatusRejected    AppointmentStatus = "REJECTED"
	AppointmentStatusCompleted   AppointmentStatus = "COMPLETED"
)

// AppointmentStatuses lists every status in lifecycle order.
var AppointmentStatuses = []AppointmentStatus{
	AppointmentStatusPending,
	AppointmentStatusConfirmed,
	AppointmentStatusRescheduled,
	AppointmentStatusRejected,
	AppointmentStatusCompleted,
}

func (s AppointmentStatus) IsValid() bool {
	for _, status := range AppointmentStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition can leave this status.
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentStatusRejected || s == AppointmentStatusCompleted
}

// Transitions a participant may request through a status update, keyed by role.
// COMPLETED is reachable only by issuing a prescription.
var statusTransitions = map[Role]map[AppointmentStatus][]AppointmentStatus{
	RoleDoctor: {
		AppointmentStatusPending:   {AppointmentStatusConfirmed, AppointmentStatusRejected, AppointmentStatusRescheduled},
		AppointmentStatusConfirmed: {AppointmentStatusRescheduled},
	},
	RolePatient: {
		AppointmentStatusRescheduled: {AppointmentStatusConfirmed, AppointmentStatusRejected},
	},
}

// CanTransition reports whether a caller with the given role may move an
// appointment from one status to another.
func CanTransition(role Role, from, to AppointmentStatus) bool {
	if from.IsTerminal() {
		return false
	}
	switch role {
	case RoleDoctor, RolePatient:
		for _, allowed := range statusTransitions[role][from] {
			if allowed == to {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Appointment represents a patient's request to see a doctor
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Date            time.Time         `gorm:"not null;index" json:"date"`
	RescheduledDate *time.Time        `json:"rescheduled_date,omitempty"`
	Issue           string            `gorm:"type:text;not null" json:"issue"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient      User          `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor       User          `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Prescription *Prescription `gorm:"foreignKey:AppointmentID" json:"prescription,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// IsParticipant checks whether the user is the patient or the doctor of this appointment
func (a *Appointment) IsParticipant(userID uuid.UUID) bool {
	return a.PatientID == userID || a.DoctorID == userID
}

// IsAwaitingRescheduleAnswer checks if a proposed alternate slot is waiting for the patient
func (a *Appointment) IsAwaitingRescheduleAnswer() bool {
	return a.Status == AppointmentStatusRescheduled && a.RescheduledDate != nil
}

// ProposeReschedule records an alternate slot and keeps the original date for comparison
func (a *Appointment) ProposeReschedule(date time.Time) {
	a.RescheduledDate = &date
	a.Status = AppointmentStatusRescheduled
}

// AcceptReschedule moves the proposed slot into Date and confirms the appointment
func (a *Appointment) AcceptReschedule() {
	if a.RescheduledDate != nil {
		a.Date = *a.RescheduledDate
	}
	a.RescheduledDate = nil
	a.Status = AppointmentStatusConfirmed
}

// Complete changes appointment status to completed
func (a *Appointment) Complete() {
	a.Status = AppointmentStatusCompleted
}

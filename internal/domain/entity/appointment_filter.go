package entity

import "github.com/google/uuid"

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	PatientID *uuid.UUID
	DoctorID  *uuid.UUID
	Status    AppointmentStatus // optional
}

// AppointmentFilterFor scopes the appointment list to the caller's side of the relation.
func AppointmentFilterFor(identity Identity) AppointmentFilter {
	userID := identity.UserID
	switch identity.Role {
	case RoleDoctor:
		return AppointmentFilter{DoctorID: &userID}
	case RolePatient:
		return AppointmentFilter{PatientID: &userID}
	default:
		return AppointmentFilter{PatientID: &userID}
	}
}

package converter

import (
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"

	"github.com/google/uuid"
)

// UserToResponse converts a User entity to UserResponse DTO.
// The doctor profile is included when it was preloaded.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.DoctorProfile != nil {
		response.DoctorProfile = DoctorProfileToResponse(user.DoctorProfile)
	}

	return response
}

// UserToParticipant reduces a user to the identity fields shown on an appointment
func UserToParticipant(user *entity.User) *dto.ParticipantResponse {
	if user == nil || user.ID == uuid.Nil {
		return nil
	}

	participant := &dto.ParticipantResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
	if user.DoctorProfile != nil {
		participant.Specialization = user.DoctorProfile.Specialization
	}
	return participant
}

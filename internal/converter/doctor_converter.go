package converter

import (
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
)

func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorProfileResponse {
	if profile == nil {
		return nil
	}

	response := &dto.DoctorProfileResponse{
		ID:             profile.ID,
		UserID:         profile.UserID,
		Name:           profile.User.Name,
		Email:          profile.User.Email,
		Specialization: profile.Specialization,
		Bio:            profile.Bio,
		AvailableSlots: profile.AvailableSlots,
		CreatedAt:      profile.CreatedAt,
		UpdatedAt:      profile.UpdatedAt,
	}

	if profile.ConsultationFee.Valid {
		fee := profile.ConsultationFee.Decimal
		response.ConsultationFee = &fee
	}

	return response
}

func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorProfileResponse {
	responses := make([]dto.DoctorProfileResponse, len(profiles))
	for i := range profiles {
		responses[i] = *DoctorProfileToResponse(&profiles[i])
	}
	return responses
}

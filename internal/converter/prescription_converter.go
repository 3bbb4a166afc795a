package converter

import (
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
)

func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	response := &dto.PrescriptionResponse{
		ID:            prescription.ID,
		AppointmentID: prescription.AppointmentID,
		Medications:   prescription.Medications,
		Instructions:  prescription.Instructions,
		HasDocument:   prescription.DocumentKey != nil,
		CreatedAt:     prescription.CreatedAt,
	}

	if prescription.Appointment != nil {
		response.Appointment = AppointmentToResponse(prescription.Appointment)
	}

	return response
}

package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPrescriptionHandler_CreatePrescription(t *testing.T) {
	doctor := entity.Identity{UserID: uuid.New(), Role: entity.RoleDoctor}
	appointmentID := uuid.New()
	body := map[string]string{
		"appointmentId": appointmentID.String(),
		"medications":   "Ibuprofen 200mg",
		"instructions":  "Twice daily after meals",
	}

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"created", nil, http.StatusCreated},
		{"appointment missing", usecase.ErrAppointmentNotFound, http.StatusNotFound},
		{"other doctor", usecase.ErrNotAppointmentDoctor, http.StatusForbidden},
		{"already issued", usecase.ErrPrescriptionExists, http.StatusConflict},
		{"not confirmed", usecase.ErrAppointmentNotConfirmed, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockPrescriptionUsecase)
			var result *dto.PrescriptionResponse
			if tt.err == nil {
				result = &dto.PrescriptionResponse{ID: uuid.New(), AppointmentID: appointmentID}
			}
			uc.On("CreatePrescription", mock.Anything, doctor, &dto.CreatePrescriptionRequest{
				AppointmentID: appointmentID.String(),
				Medications:   "Ibuprofen 200mg",
				Instructions:  "Twice daily after meals",
			}).Return(result, tt.err)

			rec := httptest.NewRecorder()
			NewPrescriptionHandler(uc, validator.NewValidator()).CreatePrescription(rec, newRequest(t, http.MethodPost, "/prescriptions", body, asUser(doctor)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			uc.AssertExpectations(t)
		})
	}
}

func TestPrescriptionHandler_GetPrescription(t *testing.T) {
	patient := entity.Identity{UserID: uuid.New(), Role: entity.RolePatient}
	id := uuid.New()

	t.Run("not owned", func(t *testing.T) {
		uc := new(mockPrescriptionUsecase)
		uc.On("GetPrescription", mock.Anything, patient, id).Return(nil, usecase.ErrPrescriptionNotOwned)

		rec := httptest.NewRecorder()
		NewPrescriptionHandler(uc, validator.NewValidator()).GetPrescription(rec, newRequest(t, http.MethodGet, "/prescriptions/"+id.String(), nil, asUser(patient), withID(id.String())))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("found", func(t *testing.T) {
		uc := new(mockPrescriptionUsecase)
		uc.On("GetPrescription", mock.Anything, patient, id).Return(&dto.PrescriptionResponse{ID: id}, nil)

		rec := httptest.NewRecorder()
		NewPrescriptionHandler(uc, validator.NewValidator()).GetPrescription(rec, newRequest(t, http.MethodGet, "/prescriptions/"+id.String(), nil, asUser(patient), withID(id.String())))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPrescriptionHandler_GetDocument(t *testing.T) {
	patient := entity.Identity{UserID: uuid.New(), Role: entity.RolePatient}
	id := uuid.New()
	pdf := []byte("%PDF-1.3 test")

	uc := new(mockPrescriptionUsecase)
	uc.On("GetPrescriptionDocument", mock.Anything, patient, id).Return(pdf, nil)

	rec := httptest.NewRecorder()
	NewPrescriptionHandler(uc, validator.NewValidator()).GetDocument(rec, newRequest(t, http.MethodGet, "/prescriptions/"+id.String()+"/document", nil, asUser(patient), withID(id.String())))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), id.String())
	assert.Equal(t, pdf, rec.Body.Bytes())
}

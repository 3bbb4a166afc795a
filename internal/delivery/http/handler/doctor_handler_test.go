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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDoctorHandler_ListDoctors(t *testing.T) {
	uc := new(mockDoctorUsecase)
	uc.On("ListDoctors", mock.Anything).Return(&dto.DoctorListResponse{
		Doctors: []dto.DoctorProfileResponse{{ID: uuid.New(), Name: "Dr. Lee"}},
		Total:   1,
	}, nil)

	rec := httptest.NewRecorder()
	NewDoctorHandler(uc, validator.NewValidator()).ListDoctors(rec, newRequest(t, http.MethodGet, "/doctors", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dr. Lee")
}

func TestDoctorHandler_GetDoctor(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		uc := new(mockDoctorUsecase)
		uc.On("GetDoctorProfile", mock.Anything, id).Return(&dto.DoctorProfileResponse{ID: id}, nil)

		rec := httptest.NewRecorder()
		NewDoctorHandler(uc, validator.NewValidator()).GetDoctor(rec, newRequest(t, http.MethodGet, "/doctors/"+id.String(), nil, withID(id.String())))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing", func(t *testing.T) {
		uc := new(mockDoctorUsecase)
		uc.On("GetDoctorProfile", mock.Anything, id).Return(nil, usecase.ErrDoctorNotFound)

		rec := httptest.NewRecorder()
		NewDoctorHandler(uc, validator.NewValidator()).GetDoctor(rec, newRequest(t, http.MethodGet, "/doctors/"+id.String(), nil, withID(id.String())))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDoctorHandler_UpdateProfile(t *testing.T) {
	doctor := entity.Identity{UserID: uuid.New(), Role: entity.RoleDoctor}

	t.Run("updated", func(t *testing.T) {
		uc := new(mockDoctorUsecase)
		uc.On("UpdateProfile", mock.Anything, doctor, mock.MatchedBy(func(req *dto.UpdateDoctorProfileRequest) bool {
			return req.ConsultationFee != nil && req.ConsultationFee.Equal(decimal.RequireFromString("150.5")) &&
				req.Specialization != nil && *req.Specialization == "Cardiology" && req.Bio == nil
		})).Return(&dto.DoctorProfileResponse{UserID: doctor.UserID}, nil)

		rec := httptest.NewRecorder()
		body := `{"specialization":"Cardiology","consultationFee":150.5}`
		NewDoctorHandler(uc, validator.NewValidator()).UpdateProfile(rec, newRequest(t, http.MethodPatch, "/doctors/profile", body, asUser(doctor)))

		assert.Equal(t, http.StatusOK, rec.Code)
		uc.AssertExpectations(t)
	})

	t.Run("negative fee", func(t *testing.T) {
		uc := new(mockDoctorUsecase)
		uc.On("UpdateProfile", mock.Anything, doctor, mock.Anything).Return(nil, usecase.ErrInvalidConsultationFee)

		rec := httptest.NewRecorder()
		NewDoctorHandler(uc, validator.NewValidator()).UpdateProfile(rec, newRequest(t, http.MethodPatch, "/doctors/profile", `{"consultationFee":-1}`, asUser(doctor)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

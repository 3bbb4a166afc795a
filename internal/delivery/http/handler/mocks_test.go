package handler

import (
	"context"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockAuthUsecase struct{ mock.Mock }

func (m *mockAuthUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*dto.AuthResponse)
	return res, args.Error(1)
}

func (m *mockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*dto.AuthResponse)
	return res, args.Error(1)
}

func (m *mockAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*dto.TokenResponse)
	return res, args.Error(1)
}

func (m *mockAuthUsecase) Logout(ctx context.Context, userID uuid.UUID, accessTokenID, refreshToken string) error {
	return m.Called(ctx, userID, accessTokenID, refreshToken).Error(0)
}

func (m *mockAuthUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	args := m.Called(ctx, userID)
	res, _ := args.Get(0).(*dto.UserResponse)
	return res, args.Error(1)
}

type mockDoctorUsecase struct{ mock.Mock }

func (m *mockDoctorUsecase) ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(*dto.DoctorListResponse)
	return res, args.Error(1)
}

func (m *mockDoctorUsecase) GetDoctorProfile(ctx context.Context, id uuid.UUID) (*dto.DoctorProfileResponse, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*dto.DoctorProfileResponse)
	return res, args.Error(1)
}

func (m *mockDoctorUsecase) UpdateProfile(ctx context.Context, identity entity.Identity, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorProfileResponse, error) {
	args := m.Called(ctx, identity, req)
	res, _ := args.Get(0).(*dto.DoctorProfileResponse)
	return res, args.Error(1)
}

type mockAppointmentUsecase struct{ mock.Mock }

func (m *mockAppointmentUsecase) CreateAppointment(ctx context.Context, identity entity.Identity, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, identity, req)
	res, _ := args.Get(0).(*dto.AppointmentResponse)
	return res, args.Error(1)
}

func (m *mockAppointmentUsecase) ListAppointments(ctx context.Context, identity entity.Identity) (*dto.AppointmentListResponse, error) {
	args := m.Called(ctx, identity)
	res, _ := args.Get(0).(*dto.AppointmentListResponse)
	return res, args.Error(1)
}

func (m *mockAppointmentUsecase) UpdateAppointmentStatus(ctx context.Context, identity entity.Identity, appointmentID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, identity, appointmentID, req)
	res, _ := args.Get(0).(*dto.AppointmentResponse)
	return res, args.Error(1)
}

func (m *mockAppointmentUsecase) GetAppointmentHistory(ctx context.Context, identity entity.Identity, appointmentID uuid.UUID) (*dto.AuditLogListResponse, error) {
	args := m.Called(ctx, identity, appointmentID)
	res, _ := args.Get(0).(*dto.AuditLogListResponse)
	return res, args.Error(1)
}

type mockPrescriptionUsecase struct{ mock.Mock }

func (m *mockPrescriptionUsecase) CreatePrescription(ctx context.Context, identity entity.Identity, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	args := m.Called(ctx, identity, req)
	res, _ := args.Get(0).(*dto.PrescriptionResponse)
	return res, args.Error(1)
}

func (m *mockPrescriptionUsecase) GetPrescription(ctx context.Context, identity entity.Identity, id uuid.UUID) (*dto.PrescriptionResponse, error) {
	args := m.Called(ctx, identity, id)
	res, _ := args.Get(0).(*dto.PrescriptionResponse)
	return res, args.Error(1)
}

func (m *mockPrescriptionUsecase) GetPrescriptionDocument(ctx context.Context, identity entity.Identity, id uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, identity, id)
	res, _ := args.Get(0).([]byte)
	return res, args.Error(1)
}

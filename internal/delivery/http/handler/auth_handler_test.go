package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/delivery/http/middleware"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthHandler_Register(t *testing.T) {
	valid := map[string]string{
		"email":    "ana@example.com",
		"password": "secret123",
		"name":     "Ana",
		"role":     "patient",
	}

	t.Run("created", func(t *testing.T) {
		uc := new(mockAuthUsecase)
		uc.On("Register", mock.Anything, mock.MatchedBy(func(req *dto.RegisterRequest) bool {
			return req.Email == "ana@example.com" && req.Role == "patient"
		})).Return(&dto.AuthResponse{Token: dto.TokenResponse{AccessToken: "a", RefreshToken: "r"}}, nil)

		rec := httptest.NewRecorder()
		NewAuthHandler(uc, validator.NewValidator()).Register(rec, newRequest(t, http.MethodPost, "/auth/register", valid))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, decodeEnvelope(t, rec).Success)
		uc.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		uc := new(mockAuthUsecase)
		uc.On("Register", mock.Anything, mock.Anything).Return(nil, usecase.ErrEmailAlreadyExists)

		rec := httptest.NewRecorder()
		NewAuthHandler(uc, validator.NewValidator()).Register(rec, newRequest(t, http.MethodPost, "/auth/register", valid))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown role fails validation", func(t *testing.T) {
		uc := new(mockAuthUsecase)
		body := map[string]string{"email": "x@example.com", "password": "secret123", "name": "Xavier", "role": "admin"}

		rec := httptest.NewRecorder()
		NewAuthHandler(uc, validator.NewValidator()).Register(rec, newRequest(t, http.MethodPost, "/auth/register", body))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		res := decodeEnvelope(t, rec)
		assert.Equal(t, "Validation failed", res.Message)
		assert.Contains(t, res.Error, "role")
		uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewAuthHandler(new(mockAuthUsecase), validator.NewValidator()).Register(rec, newRequest(t, http.MethodPost, "/auth/register", "{"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	uc := new(mockAuthUsecase)
	uc.On("Login", mock.Anything, mock.Anything).Return(nil, usecase.ErrInvalidCredentials)

	rec := httptest.NewRecorder()
	body := map[string]string{"email": "ana@example.com", "password": "wrong"}
	NewAuthHandler(uc, validator.NewValidator()).Login(rec, newRequest(t, http.MethodPost, "/auth/login", body))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", decodeEnvelope(t, rec).Message)
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	uc := new(mockAuthUsecase)
	uc.On("RefreshToken", mock.Anything, &dto.RefreshTokenRequest{RefreshToken: "stale"}).Return(nil, usecase.ErrTokenRevoked)

	rec := httptest.NewRecorder()
	body := map[string]string{"refreshToken": "stale"}
	NewAuthHandler(uc, validator.NewValidator()).RefreshToken(rec, newRequest(t, http.MethodPost, "/auth/refresh", body))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertExpectations(t)
}

func TestAuthHandler_Logout(t *testing.T) {
	identity := entity.Identity{UserID: uuid.New(), Role: entity.RolePatient}
	withToken := func(r *http.Request) *http.Request {
		return r.WithContext(middleware.WithTokenID(r.Context(), "token-1"))
	}

	t.Run("without body", func(t *testing.T) {
		uc := new(mockAuthUsecase)
		uc.On("Logout", mock.Anything, identity.UserID, "token-1", "").Return(nil)

		rec := httptest.NewRecorder()
		NewAuthHandler(uc, validator.NewValidator()).Logout(rec, newRequest(t, http.MethodPost, "/auth/logout", nil, asUser(identity), withToken))

		assert.Equal(t, http.StatusOK, rec.Code)
		uc.AssertExpectations(t)
	})

	t.Run("with refresh token", func(t *testing.T) {
		uc := new(mockAuthUsecase)
		uc.On("Logout", mock.Anything, identity.UserID, "token-1", "refresh-1").Return(nil)

		rec := httptest.NewRecorder()
		body := map[string]string{"refreshToken": "refresh-1"}
		NewAuthHandler(uc, validator.NewValidator()).Logout(rec, newRequest(t, http.MethodPost, "/auth/logout", body, asUser(identity), withToken))

		assert.Equal(t, http.StatusOK, rec.Code)
		uc.AssertExpectations(t)
	})

	t.Run("missing identity", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewAuthHandler(new(mockAuthUsecase), validator.NewValidator()).Logout(rec, newRequest(t, http.MethodPost, "/auth/logout", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	identity := entity.Identity{UserID: uuid.New(), Role: entity.RoleDoctor}
	uc := new(mockAuthUsecase)
	uc.On("GetCurrentUser", mock.Anything, identity.UserID).Return(nil, usecase.ErrUserNotFound)

	rec := httptest.NewRecorder()
	NewAuthHandler(uc, validator.NewValidator()).GetCurrentUser(rec, newRequest(t, http.MethodGet, "/auth/me", nil, asUser(identity)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

package usecase

import (
	"context"
	"errors"
	"strings"

	"clinic-booking/internal/converter"
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"
	"clinic-booking/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound         = errors.New("doctor not found")
	ErrInvalidConsultationFee = errors.New("consultation fee must not be negative")
)

type DoctorProfileUsecase interface {
	ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	GetDoctorProfile(ctx context.Context, id uuid.UUID) (*dto.DoctorProfileResponse, error)
	UpdateProfile(ctx context.Context, identity entity.Identity, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorProfileResponse, error)
}

type doctorProfileUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	doctorProfileRepo repository.DoctorProfileRepository
	auditService      service.AuditService
	doctorCache       service.DoctorCache
}

func NewDoctorProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorProfileRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
	doctorCache service.DoctorCache,
) DoctorProfileUsecase {
	return &doctorProfileUsecase{
		db:                db,
		log:               log,
		doctorProfileRepo: doctorProfileRepo,
		auditService:      auditService,
		doctorCache:       doctorCache,
	}
}

// ListDoctors serves the directory from cache when possible. Cache failures
// fall through to the database.
func (u *doctorProfileUsecase) ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	profiles, hit, err := u.doctorCache.Get(ctx)
	if err != nil {
		u.log.Warnf("Failed to read doctor cache: %+v", err)
	}

	if !hit {
		profiles, err = u.doctorProfileRepo.FindAll(ctx, u.db)
		if err != nil {
			u.log.Warnf("Failed to find doctors: %+v", err)
			return nil, err
		}
		if err := u.doctorCache.Set(ctx, profiles); err != nil {
			u.log.Warnf("Failed to fill doctor cache: %+v", err)
		}
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorProfilesToResponses(profiles),
		Total:   len(profiles),
	}, nil
}

// GetDoctorProfile accepts either the profile id or the owning user id.
func (u *doctorProfileUsecase) GetDoctorProfile(ctx context.Context, id uuid.UUID) (*dto.DoctorProfileResponse, error) {
	profile, err := u.doctorProfileRepo.FindByIDOrUserID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorProfileToResponse(profile), nil
}

// UpdateProfile changes the caller's own profile. The row is looked up by the
// caller's id, so no other profile is reachable.
func (u *doctorProfileUsecase) UpdateProfile(ctx context.Context, identity entity.Identity, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorProfileResponse, error) {
	if identity.IsZero() {
		return nil, ErrUnauthenticated
	}
	if req.ConsultationFee != nil && req.ConsultationFee.IsNegative() {
		return nil, ErrInvalidConsultationFee
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorProfileRepo.FindByUserID(ctx, tx, identity.UserID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	oldValue := converter.DoctorProfileToResponse(profile)

	if req.Specialization != nil {
		profile.Specialization = strings.TrimSpace(*req.Specialization)
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.AvailableSlots != nil {
		profile.AvailableSlots = *req.AvailableSlots
	}
	if req.ConsultationFee != nil {
		profile.ConsultationFee = decimal.NewNullDecimal(req.ConsultationFee.Round(2))
	}

	if err := u.doctorProfileRepo.Update(ctx, tx, profile); err != nil {
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	newValue := converter.DoctorProfileToResponse(profile)
	if err := u.auditService.LogUpdate(ctx, tx, &identity.UserID, entity.AuditActionProfileUpdate, entity.AuditEntityDoctorProfile, profile.ID.String(), oldValue, newValue); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if err := u.doctorCache.Invalidate(ctx); err != nil {
		u.log.Warnf("Failed to invalidate doctor cache: %+v", err)
	}

	return newValue, nil
}

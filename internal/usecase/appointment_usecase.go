package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"clinic-booking/internal/converter"
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"
	"clinic-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound     = errors.New("appointment not found")
	ErrAppointmentDateInPast   = errors.New("appointment date must be in the future")
	ErrRescheduleDateRequired  = errors.New("a new date is required to reschedule")
	ErrIssueRequired           = errors.New("issue is required")
	ErrInvalidStatus           = errors.New("invalid appointment status")
	ErrInvalidStatusTransition = errors.New("status change not allowed from the current status")
	ErrAppointmentNotOwned     = errors.New("appointment belongs to other users")
	ErrPatientOnly             = errors.New("only patients can book appointments")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, identity entity.Identity, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	ListAppointments(ctx context.Context, identity entity.Identity) (*dto.AppointmentListResponse, error)
	UpdateAppointmentStatus(ctx context.Context, identity entity.Identity, appointmentID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	GetAppointmentHistory(ctx context.Context, identity entity.Identity, appointmentID uuid.UUID) (*dto.AuditLogListResponse, error)
}

type appointmentUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	appointmentRepo   repository.AppointmentRepository
	doctorProfileRepo repository.DoctorProfileRepository
	auditRepo         repository.AuditLogRepository
	auditService      service.AuditService
	publisher         service.EventPublisher
	now               func() time.Time
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	auditRepo repository.AuditLogRepository,
	auditService service.AuditService,
	publisher service.EventPublisher,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                db,
		log:               log,
		appointmentRepo:   appointmentRepo,
		doctorProfileRepo: doctorProfileRepo,
		auditRepo:         auditRepo,
		auditService:      auditService,
		publisher:         publisher,
		now:               time.Now,
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, identity entity.Identity, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	switch identity.Role {
	case entity.RolePatient:
	case entity.RoleDoctor:
		return nil, ErrPatientOnly
	default:
		return nil, ErrUnauthenticated
	}

	issue := strings.TrimSpace(req.Issue)
	if issue == "" {
		return nil, ErrIssueRequired
	}
	if !req.Date.After(u.now()) {
		return nil, ErrAppointmentDateInPast
	}

	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, ErrDoctorNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorProfileRepo.FindByIDOrUserID(ctx, tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointment := &entity.Appointment{
		PatientID: identity.UserID,
		DoctorID:  doctor.UserID,
		Date:      req.Date.UTC(),
		Issue:     issue,
		Status:    entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(ctx, tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &identity.UserID, entity.AuditActionAppointmentCreate, entity.AuditEntityAppointment, appointment.ID.String(), converter.AppointmentToResponse(appointment)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	response, err := u.reload(ctx, appointment.ID)
	if err != nil {
		return nil, err
	}

	u.publisher.Publish(ctx, service.EventAppointmentCreated, response)

	return response, nil
}

// ListAppointments returns the caller's side of the relation only.
func (u *appointmentUsecase) ListAppointments(ctx context.Context, identity entity.Identity) (*dto.AppointmentListResponse, error) {
	if identity.IsZero() {
		return nil, ErrUnauthenticated
	}

	appointments, err := u.appointmentRepo.FindAll(ctx, u.db, entity.AppointmentFilterFor(identity))
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// UpdateAppointmentStatus applies one step of the confirm/reject/reschedule
// negotiation. COMPLETED is never accepted here; it is set by issuing a prescription.
func (u *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, identity entity.Identity, appointmentID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	if identity.IsZero() {
		return nil, ErrUnauthenticated
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(ctx, tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	status := entity.AppointmentStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if !appointment.IsParticipant(identity.UserID) {
		return nil, ErrAppointmentNotOwned
	}

	previous := appointment.Status
	if !entity.CanTransition(identity.Role, previous, status) {
		return nil, ErrInvalidStatusTransition
	}

	oldValue := statusSnapshot(appointment)

	switch status {
	case entity.AppointmentStatusRescheduled:
		if req.Date == nil {
			return nil, ErrRescheduleDateRequired
		}
		if !req.Date.After(u.now()) {
			return nil, ErrAppointmentDateInPast
		}
		appointment.ProposeReschedule(req.Date.UTC())
	case entity.AppointmentStatusConfirmed:
		if appointment.IsAwaitingRescheduleAnswer() {
			appointment.AcceptReschedule()
		} else {
			appointment.Status = status
		}
	default:
		appointment.Status = status
	}

	if err := u.appointmentRepo.Update(ctx, tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &identity.UserID, entity.AuditActionAppointmentStatus, entity.AuditEntityAppointment, appointment.ID.String(), oldValue, statusSnapshot(appointment)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	response, err := u.reload(ctx, appointment.ID)
	if err != nil {
		return nil, err
	}

	u.publisher.Publish(ctx, service.EventAppointmentStatusChanged, map[string]interface{}{
		"appointmentId": appointment.ID,
		"from":          previous,
		"to":            appointment.Status,
		"actorId":       identity.UserID,
		"appointment":   response,
	})

	return response, nil
}

// GetAppointmentHistory lists the audit trail of an appointment, oldest first.
func (u *appointmentUsecase) GetAppointmentHistory(ctx context.Context, identity entity.Identity, appointmentID uuid.UUID) (*dto.AuditLogListResponse, error) {
	if identity.IsZero() {
		return nil, ErrUnauthenticated
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if !appointment.IsParticipant(identity.UserID) {
		return nil, ErrAppointmentNotOwned
	}

	logs, err := u.auditRepo.FindByEntity(ctx, u.db, entity.AuditEntityAppointment, appointmentID.String())
	if err != nil {
		u.log.Warnf("Failed to find appointment history: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}

func (u *appointmentUsecase) reload(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to reload appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

func statusSnapshot(appointment *entity.Appointment) map[string]interface{} {
	return map[string]interface{}{
		"status":          appointment.Status,
		"date":            appointment.Date,
		"rescheduledDate": appointment.RescheduledDate,
	}
}

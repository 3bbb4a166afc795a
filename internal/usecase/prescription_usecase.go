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
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPrescriptionNotFound    = errors.New("prescription not found")
	ErrPrescriptionExists      = errors.New("appointment already has a prescription")
	ErrPrescriptionNotOwned    = errors.New("prescription belongs to other users")
	ErrMedicationsRequired     = errors.New("medications are required")
	ErrAppointmentNotConfirmed = errors.New("only confirmed appointments can be completed")
	ErrNotAppointmentDoctor    = errors.New("only the appointment's doctor can issue a prescription")
)

type PrescriptionUsecase interface {
	CreatePrescription(ctx context.Context, identity entity.Identity, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	GetPrescription(ctx context.Context, identity entity.Identity, id uuid.UUID) (*dto.PrescriptionResponse, error)
	GetPrescriptionDocument(ctx context.Context, identity entity.Identity, id uuid.UUID) ([]byte, error)
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	appointmentRepo  repository.AppointmentRepository
	auditService     service.AuditService
	publisher        service.EventPublisher
	documents        service.PrescriptionDocumentService
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
	publisher service.EventPublisher,
	documents service.PrescriptionDocumentService,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		appointmentRepo:  appointmentRepo,
		auditService:     auditService,
		publisher:        publisher,
		documents:        documents,
	}
}

// CreatePrescription records the prescription and completes the appointment
// in a single transaction.
func (u *prescriptionUsecase) CreatePrescription(ctx context.Context, identity entity.Identity, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	if identity.IsZero() {
		return nil, ErrUnauthenticated
	}

	appointmentID, err := uuid.Parse(req.AppointmentID)
	if err != nil {
		return nil, ErrAppointmentNotFound
	}

	medications := strings.TrimSpace(req.Medications)
	if medications == "" {
		return nil, ErrMedicationsRequired
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
	if appointment.DoctorID != identity.UserID {
		return nil, ErrNotAppointmentDoctor
	}
	if appointment.Prescription != nil {
		return nil, ErrPrescriptionExists
	}
	if appointment.Status != entity.AppointmentStatusConfirmed {
		return nil, ErrAppointmentNotConfirmed
	}

	prescription := &entity.Prescription{
		AppointmentID: appointment.ID,
		Medications:   medications,
		Instructions:  strings.TrimSpace(req.Instructions),
	}

	if err := u.prescriptionRepo.Create(ctx, tx, prescription); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPrescriptionExists
		}
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	affected, err := u.appointmentRepo.UpdateStatus(ctx, tx, appointment.ID, entity.AppointmentStatusCompleted)
	if err != nil {
		u.log.Warnf("Failed to complete appointment: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAppointmentNotFound
	}

	if err := u.auditService.LogCreate(ctx, tx, &identity.UserID, entity.AuditActionPrescriptionCreate, entity.AuditEntityPrescription, prescription.ID.String(), converter.PrescriptionToResponse(prescription)); err != nil {
		return nil, err
	}
	oldValue := statusSnapshot(appointment)
	appointment.Complete()
	if err := u.auditService.LogUpdate(ctx, tx, &identity.UserID, entity.AuditActionAppointmentStatus, entity.AuditEntityAppointment, appointment.ID.String(), oldValue, statusSnapshot(appointment)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	saved, err := u.prescriptionRepo.FindByID(ctx, u.db, prescription.ID)
	if err != nil {
		u.log.Warnf("Failed to reload prescription: %+v", err)
		return nil, err
	}
	if saved == nil {
		return nil, ErrPrescriptionNotFound
	}

	u.archiveDocument(ctx, saved)

	response := converter.PrescriptionToResponse(saved)
	u.publisher.Publish(ctx, service.EventPrescriptionIssued, response)

	return response, nil
}

// archiveDocument stores the rendered PDF when object storage is configured.
// The prescription is already committed, so failures are only logged.
func (u *prescriptionUsecase) archiveDocument(ctx context.Context, prescription *entity.Prescription) {
	document, err := u.documents.Render(prescription)
	if err != nil {
		u.log.Warnf("Failed to render prescription document: %+v", err)
		return
	}

	key, err := u.documents.Archive(ctx, prescription, document)
	if err != nil {
		// storage disabled, or the upload failed and was logged by the service
		return
	}

	if err := u.prescriptionRepo.SetDocumentKey(ctx, u.db, prescription.ID, key); err != nil {
		u.log.Warnf("Failed to save prescription document key: %+v", err)
		return
	}
	prescription.DocumentKey = &key
}

func (u *prescriptionUsecase) GetPrescription(ctx context.Context, identity entity.Identity, id uuid.UUID) (*dto.PrescriptionResponse, error) {
	prescription, err := u.findVisible(ctx, identity, id)
	if err != nil {
		return nil, err
	}
	return converter.PrescriptionToResponse(prescription), nil
}

// GetPrescriptionDocument serves the archived PDF, rendering it again when no
// archived copy is available.
func (u *prescriptionUsecase) GetPrescriptionDocument(ctx context.Context, identity entity.Identity, id uuid.UUID) ([]byte, error) {
	prescription, err := u.findVisible(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	if prescription.DocumentKey != nil {
		document, err := u.documents.Fetch(ctx, *prescription.DocumentKey)
		if err == nil && len(document) > 0 {
			return document, nil
		}
		u.log.Warnf("Failed to fetch archived prescription document %s: %+v", *prescription.DocumentKey, err)
	}

	document, err := u.documents.Render(prescription)
	if err != nil {
		u.log.Warnf("Failed to render prescription document: %+v", err)
		return nil, err
	}
	return document, nil
}

func (u *prescriptionUsecase) findVisible(ctx context.Context, identity entity.Identity, id uuid.UUID) (*entity.Prescription, error) {
	if identity.IsZero() {
		return nil, ErrUnauthenticated
	}

	prescription, err := u.prescriptionRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return nil, err
	}
	if prescription == nil || prescription.Appointment == nil {
		return nil, ErrPrescriptionNotFound
	}
	if !prescription.Appointment.IsParticipant(identity.UserID) {
		return nil, ErrPrescriptionNotOwned
	}

	return prescription, nil
}

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"clinic-booking/internal/domain/entity"

	"github.com/jung-kurt/gofpdf"
	"github.com/sirupsen/logrus"
)

var ErrDocumentStorageDisabled = errors.New("document storage is not configured")

// ObjectStorage is the blob store prescription documents are archived in.
type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
}

type PrescriptionDocumentService interface {
	// Render expects the prescription with its appointment, patient and doctor loaded.
	Render(prescription *entity.Prescription) ([]byte, error)
	Archive(ctx context.Context, prescription *entity.Prescription, document []byte) (string, error)
	Fetch(ctx context.Context, key string) ([]byte, error)
}

type prescriptionDocumentService struct {
	storage ObjectStorage
	log     *logrus.Logger
}

// NewPrescriptionDocumentService accepts a nil storage; archiving is then disabled
// and documents are always rendered on request.
func NewPrescriptionDocumentService(storage ObjectStorage, log *logrus.Logger) PrescriptionDocumentService {
	return &prescriptionDocumentService{storage: storage, log: log}
}

func DocumentKey(prescription *entity.Prescription) string {
	return prescription.ID.String() + ".pdf"
}

func (s *prescriptionDocumentService) Render(prescription *entity.Prescription) ([]byte, error) {
	if prescription.Appointment == nil {
		return nil, fmt.Errorf("prescription %s rendered without its appointment", prescription.ID)
	}
	appointment := prescription.Appointment

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Prescription", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 6, "Ref. "+prescription.ID.String(), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	specialization := ""
	if appointment.Doctor.DoctorProfile != nil {
		specialization = appointment.Doctor.DoctorProfile.Specialization
	}

	addDetail(pdf, "Doctor", tr(appointment.Doctor.Name))
	if specialization != "" {
		addDetail(pdf, "Specialization", tr(specialization))
	}
	addDetail(pdf, "Patient", tr(appointment.Patient.Name))
	addDetail(pdf, "Appointment", appointment.Date.UTC().Format(time.RFC1123))
	addDetail(pdf, "Issued", prescription.CreatedAt.UTC().Format(time.RFC1123))
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Medications", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6, tr(prescription.Medications), "", "L", false)
	pdf.Ln(4)

	if prescription.Instructions != "" {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, "Instructions", "B", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, tr(prescription.Instructions), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addDetail(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(40, 8, label, "1", 0, "", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 8, value, "1", 1, "", false, 0, "")
}

func (s *prescriptionDocumentService) Archive(ctx context.Context, prescription *entity.Prescription, document []byte) (string, error) {
	if s.storage == nil {
		return "", ErrDocumentStorageDisabled
	}

	key := DocumentKey(prescription)
	if err := s.storage.Put(ctx, key, document, "application/pdf"); err != nil {
		s.log.Warnf("Failed to archive prescription document %s: %+v", key, err)
		return "", err
	}
	return key, nil
}

func (s *prescriptionDocumentService) Fetch(ctx context.Context, key string) ([]byte, error) {
	if s.storage == nil {
		return nil, ErrDocumentStorageDisabled
	}
	return s.storage.Get(ctx, key)
}

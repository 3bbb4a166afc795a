package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"clinic-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStorage struct {
	objects map[string][]byte
}

func (m *memoryStorage) Put(ctx context.Context, key string, data []byte, contentType string) error {
	m.objects[key] = data
	return nil
}

func (m *memoryStorage) Get(ctx context.Context, key string) ([]byte, error) {
	return m.objects[key], nil
}

func samplePrescription() *entity.Prescription {
	return &entity.Prescription{
		ID:           uuid.New(),
		Medications:  "Amoxicillin 500mg, 3x daily",
		Instructions: "Take after meals for 7 days",
		CreatedAt:    time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		Appointment: &entity.Appointment{
			Date:    time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
			Patient: entity.User{Name: "José Patient"},
			Doctor: entity.User{
				Name:          "Dr. Who",
				DoctorProfile: &entity.DoctorProfile{Specialization: "General"},
			},
		},
	}
}

func TestRenderProducesPDF(t *testing.T) {
	svc := NewPrescriptionDocumentService(nil, logrus.New())

	doc, err := svc.Render(samplePrescription())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))
}

func TestRenderRequiresAppointment(t *testing.T) {
	svc := NewPrescriptionDocumentService(nil, logrus.New())

	_, err := svc.Render(&entity.Prescription{ID: uuid.New()})
	assert.Error(t, err)
}

func TestArchiveAndFetch(t *testing.T) {
	storage := &memoryStorage{objects: map[string][]byte{}}
	svc := NewPrescriptionDocumentService(storage, logrus.New())
	ctx := context.Background()
	prescription := samplePrescription()

	key, err := svc.Archive(ctx, prescription, []byte("%PDF-1.3 test"))
	require.NoError(t, err)
	assert.Equal(t, prescription.ID.String()+".pdf", key)

	doc, err := svc.Fetch(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3 test"), doc)
}

func TestArchiveWithoutStorage(t *testing.T) {
	svc := NewPrescriptionDocumentService(nil, logrus.New())

	_, err := svc.Archive(context.Background(), samplePrescription(), []byte("x"))
	assert.ErrorIs(t, err, ErrDocumentStorageDisabled)

	_, err = svc.Fetch(context.Background(), "missing.pdf")
	assert.ErrorIs(t, err, ErrDocumentStorageDisabled)
}

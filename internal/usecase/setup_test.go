package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"clinic-booking/config"
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/repository"
	"clinic-booking/internal/service"
	"clinic-booking/internal/testutil"
	"clinic-booking/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) Publish(ctx context.Context, name string, payload interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, name)
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) Events() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}

type memoryStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (m *memoryStorage) Put(ctx context.Context, key string, data []byte, contentType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return nil
}

func (m *memoryStorage) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.objects[key], nil
}

type fixture struct {
	db            *gorm.DB
	redis         *miniredis.Miniredis
	jwtService    *jwt.JWTService
	tokenStore    service.TokenStore
	publisher     *recordingPublisher
	storage       *memoryStorage
	now           time.Time
	auth          AuthUsecase
	doctors       DoctorProfileUsecase
	appointments  AppointmentUsecase
	prescriptions PrescriptionUsecase
}

// newFixture wires every usecase against a fresh SQLite database and an
// in-memory redis. The appointment clock is frozen at f.now.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewDB(t)
	log := testutil.NewLogger()

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: time.Hour,
	})

	userRepo := repository.NewUserRepository()
	doctorProfileRepo := repository.NewDoctorProfileRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	auditRepo := repository.NewAuditLogRepository()

	auditService := service.NewAuditService(log, auditRepo)
	tokenStore := service.NewRedisTokenStore(redisClient)
	doctorCache := service.NewRedisDoctorCache(redisClient, time.Minute)
	publisher := &recordingPublisher{}
	storage := &memoryStorage{objects: map[string][]byte{}}
	documents := service.NewPrescriptionDocumentService(storage, log)

	auth := NewAuthUsecase(db, log, userRepo, doctorProfileRepo, auditService, doctorCache, jwtService, tokenStore)
	auth.(*authUsecase).bcryptCost = bcrypt.MinCost

	now := time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)
	appointments := NewAppointmentUsecase(db, log, appointmentRepo, doctorProfileRepo, auditRepo, auditService, publisher)
	appointments.(*appointmentUsecase).now = func() time.Time { return now }

	return &fixture{
		db:            db,
		redis:         mr,
		jwtService:    jwtService,
		tokenStore:    tokenStore,
		publisher:     publisher,
		storage:       storage,
		now:           now,
		auth:          auth,
		doctors:       NewDoctorProfileUsecase(db, log, doctorProfileRepo, auditService, doctorCache),
		appointments:  appointments,
		prescriptions: NewPrescriptionUsecase(db, log, prescriptionRepo, appointmentRepo, auditService, publisher, documents),
	}
}

func (f *fixture) register(t *testing.T, role entity.Role, email string) entity.Identity {
	t.Helper()

	req := &dto.RegisterRequest{
		Email:    email,
		Password: "secret123",
		Name:     "User " + email,
		Role:     role.String(),
	}
	if role == entity.RoleDoctor {
		req.Specialization = "General Practice"
	}

	res, err := f.auth.Register(context.Background(), req)
	require.NoError(t, err)
	return entity.Identity{UserID: res.User.ID, Role: role}
}

// book creates a PENDING appointment the given number of hours after the frozen clock.
func (f *fixture) book(t *testing.T, patient, doctor entity.Identity, hoursAhead int) *dto.AppointmentResponse {
	t.Helper()

	res, err := f.appointments.CreateAppointment(context.Background(), patient, &dto.CreateAppointmentRequest{
		DoctorID: doctor.UserID.String(),
		Date:     dto.RequestTime{Time: f.now.Add(time.Duration(hoursAhead) * time.Hour)},
		Issue:    "headache",
	})
	require.NoError(t, err)
	return res
}

func (f *fixture) setStatus(t *testing.T, who entity.Identity, appointment *dto.AppointmentResponse, status entity.AppointmentStatus, date *time.Time) *dto.AppointmentResponse {
	t.Helper()

	res, err := f.appointments.UpdateAppointmentStatus(context.Background(), who, appointment.ID, &dto.UpdateAppointmentStatusRequest{
		Status: string(status),
		Date:   requestTime(date),
	})
	require.NoError(t, err)
	return res
}

func requestTime(t *time.Time) *dto.RequestTime {
	if t == nil {
		return nil
	}
	return &dto.RequestTime{Time: *t}
}

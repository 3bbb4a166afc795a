package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-booking/config"
	deliveryHttp "clinic-booking/internal/delivery/http"
	"clinic-booking/internal/delivery/http/handler"
	"clinic-booking/internal/delivery/http/middleware"
	"clinic-booking/internal/infrastructure/cache"
	"clinic-booking/internal/infrastructure/database"
	"clinic-booking/internal/infrastructure/messaging"
	"clinic-booking/internal/infrastructure/storage"
	"clinic-booking/internal/repository"
	"clinic-booking/internal/service"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/jwt"
	"clinic-booking/pkg/validator"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	AMQPConn    *amqp.Connection
	Publisher   service.EventPublisher
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	log := newLogger(cfg.App.LogLevel)
	app.Log = log
	log.Info("Configuration loaded successfully")

	ctx := context.Background()

	// Initialize database
	db, err := database.NewConnection(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.WithField("driver", cfg.DB.Driver).Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Event publishing is optional
	if cfg.RabbitMQ.URL != "" {
		conn, err := messaging.NewRabbitMQ(cfg.RabbitMQ)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.AMQPConn = conn

		publisher, err := service.NewAMQPEventPublisher(conn, cfg.RabbitMQ.Exchange, log)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.Publisher = publisher
	} else {
		log.Info("RABBITMQ_URL not set, domain events will only be logged")
		app.Publisher = service.NewNoopEventPublisher(log)
	}

	// Document archiving is optional
	var objectStorage service.ObjectStorage
	if cfg.Minio.Endpoint != "" {
		client, err := storage.NewMinio(ctx, cfg.Minio)
		if err != nil {
			app.Close()
			return nil, err
		}
		objectStorage = storage.NewObjectStorage(client, cfg.Minio.Bucket)
	} else {
		log.Info("MINIO_ENDPOINT not set, prescription documents will be rendered on demand")
	}

	// Initialize all layers
	app.Server = initializeServer(cfg, log, db, redisClient, app.Publisher, objectStorage)

	return app, nil
}

// newLogger builds the JSON logrus logger shared by every layer
func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	// packages that log through the standard logger follow the same setup
	logrus.SetFormatter(log.Formatter)
	logrus.SetLevel(lvl)

	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(
	cfg *config.Config,
	log *logrus.Logger,
	db *gorm.DB,
	redisClient *redis.Client,
	publisher service.EventPublisher,
	objectStorage service.ObjectStorage,
) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	doctorProfileRepo := repository.NewDoctorProfileRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	tokenStore := service.NewRedisTokenStore(redisClient)
	doctorCache := service.NewRedisDoctorCache(redisClient, cfg.Cache.DoctorListTTL)
	auditService := service.NewAuditService(log, auditLogRepo)
	documentService := service.NewPrescriptionDocumentService(objectStorage, log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, doctorProfileRepo, auditService, doctorCache, jwtService, tokenStore)
	doctorProfileUsecase := usecase.NewDoctorProfileUsecase(db, log, doctorProfileRepo, auditService, doctorCache)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, doctorProfileRepo, auditLogRepo, auditService, publisher)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(db, log, prescriptionRepo, appointmentRepo, auditService, publisher, documentService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorProfileUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenStore, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS.AllowedOrigins)
	authRateLimiter := middleware.NewAuthRateLimiter(cfg.RateLimit.AuthRequests, cfg.RateLimit.AuthWindow)

	// Initialize router
	router := deliveryHttp.NewRouter(
		log,
		authHandler,
		doctorHandler,
		appointmentHandler,
		prescriptionHandler,
		authMiddleware,
		corsMiddleware,
		authRateLimiter,
	)

	// Create server
	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, broker)
func (app *App) Close() {
	if app.Publisher != nil {
		if err := app.Publisher.Close(); err != nil {
			app.Log.Warnf("Failed to close event publisher: %v", err)
		}
	}

	if app.AMQPConn != nil {
		app.AMQPConn.Close()
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

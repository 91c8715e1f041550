package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthcareplus/config"
	deliveryHttp "healthcareplus/internal/delivery/http"
	"healthcareplus/internal/delivery/http/handler"
	"healthcareplus/internal/delivery/http/middleware"
	"healthcareplus/internal/infrastructure/cache"
	"healthcareplus/internal/infrastructure/database"
	"healthcareplus/internal/infrastructure/mail"
	"healthcareplus/internal/infrastructure/payment"
	"healthcareplus/internal/repository"
	"healthcareplus/internal/service"
	"healthcareplus/internal/usecase"
	"healthcareplus/pkg/jwt"
	"healthcareplus/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Notifier    *service.Notifier
	Reminder    *service.ReminderService
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Apply schema migrations before opening the pool
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Database migrations applied")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	if err := app.initialize(cfg, db, redisClient); err != nil {
		return nil, err
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initialize wires repositories, services, usecases, handlers and the
// HTTP server.
func (app *App) initialize(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) error {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	paymentRepo := repository.NewPaymentRepository()
	specializationRepo := repository.NewSpecializationRepository()
	staffRepo := repository.NewStaffRepository()
	mailSettingRepo := repository.NewMailSettingRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize infrastructure collaborators
	gateway := payment.NewRazorpayClient(cfg.Payment)
	mailer := mail.NewSMTPMailer()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	notifier := service.NewNotifier(db, log, mailer, mailSettingRepo)
	reminder := service.NewReminderService(db, log, appointmentRepo, notifier)
	app.Notifier = notifier
	app.Reminder = reminder

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, jwtService, redisClient, cfg.JWT, patientRepo, doctorRepo, staffRepo, specializationRepo)
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, doctorRepo, appointmentRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, doctorRepo, paymentRepo, gateway, auditService, notifier)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, specializationRepo, auditService)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, auditService)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(db, log, prescriptionRepo, appointmentRepo, auditService)
	paymentUsecase := usecase.NewPaymentUsecase(db, log, paymentRepo, gateway)
	specializationUsecase := usecase.NewSpecializationUsecase(db, log, specializationRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)
	mailSettingUsecase := usecase.NewMailSettingUsecase(db, log, mailSettingRepo)

	// Seed the initial admin account
	if err := authUsecase.SeedAdmin(context.Background(), cfg.Admin); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, availabilityUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionUsecase, customValidator)
	paymentHandler := handler.NewPaymentHandler(paymentUsecase, customValidator)
	specializationHandler := handler.NewSpecializationHandler(specializationUsecase, customValidator)
	adminHandler := handler.NewAdminHandler(auditLogUsecase, mailSettingUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		appointmentHandler,
		doctorHandler,
		patientHandler,
		prescriptionHandler,
		paymentHandler,
		specializationHandler,
		adminHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	app.Server = &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: httpRouter,
	}

	return nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	if app.Config.Reminder.Enabled {
		if err := app.Reminder.Start(app.Config.Reminder); err != nil {
			logrus.Fatalf("Failed to start reminder job: %v", err)
		}
	}

	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
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

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close stops background workers and closes all connections
func (app *App) Close() {
	// Stop the reminder scheduler
	if app.Reminder != nil {
		app.Reminder.Stop()
	}

	// Drain and stop the notification worker
	if app.Notifier != nil {
		app.Notifier.Stop()
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}

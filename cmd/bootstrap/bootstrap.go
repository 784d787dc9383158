package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-clinic-api/config"
	deliveryHttp "pet-clinic-api/internal/delivery/http"
	"pet-clinic-api/internal/delivery/http/handler"
	"pet-clinic-api/internal/delivery/http/middleware"
	"pet-clinic-api/internal/infrastructure/cache"
	"pet-clinic-api/internal/infrastructure/database"
	"pet-clinic-api/internal/repository"
	"pet-clinic-api/internal/service"
	"pet-clinic-api/internal/usecase"
	"pet-clinic-api/pkg/jwt"
	"pet-clinic-api/pkg/validator"

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

	// Apply schema migrations
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, err
	}

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
	server, reminder, err := initializeServer(cfg, db, redisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server
	app.Reminder = reminder

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, *service.ReminderService, error) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize mailer and supporting services
	mailer, err := service.NewMailer(cfg.Mail, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize mailer: %w", err)
	}
	invoiceNumber := service.NewInvoiceNumberService(redisClient, log)

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	customerRepo := repository.NewCustomerRepository()
	petRepo := repository.NewPetRepository()
	doctorRepo := repository.NewDoctorRepository()
	serviceRepo := repository.NewServiceRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	invoiceRepo := repository.NewInvoiceRepository()
	contactRepo := repository.NewContactMessageRepository()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, customerRepo, jwtService, redisClient, mailer, cfg.Clinic.Name, cfg.Clinic.ResetURLBase)
	customerUsecase := usecase.NewCustomerUsecase(db, log, customerRepo)
	petUsecase := usecase.NewPetUsecase(db, log, petRepo, customerRepo)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo)
	serviceUsecase := usecase.NewServiceUsecase(db, log, serviceRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, customerRepo, petRepo, doctorRepo, mailer, cfg.Clinic.Name)
	invoiceUsecase := usecase.NewInvoiceUsecase(db, log, invoiceRepo, customerRepo, invoiceNumber)
	contactUsecase := usecase.NewContactUsecase(db, log, contactRepo, mailer, cfg.Clinic.Name)
	notificationUsecase := usecase.NewNotificationUsecase(db, log, appointmentRepo, contactRepo)
	reportUsecase := usecase.NewReportUsecase(db, log, userRepo, customerRepo, petRepo, appointmentRepo, invoiceRepo)
	emailUsecase := usecase.NewEmailUsecase(db, log, appointmentRepo, invoiceRepo, mailer, authUsecase, cfg.Clinic.Name)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	customerHandler := handler.NewCustomerHandler(customerUsecase, customValidator)
	petHandler := handler.NewPetHandler(petUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	serviceHandler := handler.NewServiceHandler(serviceUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	invoiceHandler := handler.NewInvoiceHandler(invoiceUsecase, customValidator)
	contactHandler := handler.NewContactHandler(contactUsecase, customValidator)
	notificationHandler := handler.NewNotificationHandler(notificationUsecase)
	reportHandler := handler.NewReportHandler(reportUsecase)
	emailHandler := handler.NewEmailHandler(emailUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		customerHandler,
		petHandler,
		doctorHandler,
		serviceHandler,
		appointmentHandler,
		invoiceHandler,
		contactHandler,
		notificationHandler,
		reportHandler,
		emailHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Initialize background reminder job
	reminder := service.NewReminderService(db, log, appointmentRepo, mailer, cfg.Clinic.Name)

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
	return server, reminder, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	if err := app.Reminder.Start(); err != nil {
		logrus.Fatalf("Failed to start reminder job: %v", err)
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

	// Stop the reminder job and let an in-flight run finish
	app.Reminder.Stop()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
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

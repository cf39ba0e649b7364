package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-api/config"
	deliveryHttp "clinic-api/internal/delivery/http"
	"clinic-api/internal/delivery/http/handler"
	"clinic-api/internal/delivery/http/middleware"
	"clinic-api/internal/infrastructure/cache"
	"clinic-api/internal/infrastructure/database"
	"clinic-api/internal/repository"
	"clinic-api/internal/usecase"
	"clinic-api/pkg/jwt"
	"clinic-api/pkg/ratelimit"
	"clinic-api/pkg/validator"

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
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	if cfg.JWT.Secret == "" {
		logrus.Warn("JWT_SECRET is not set; tokens are signed with an empty key anyone can forge")
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Redis backs the rate limiter when configured; a single instance
	// can run on the in-memory window instead.
	var limiter ratelimit.Limiter
	if cfg.Redis.Host != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		limiter = ratelimit.NewRedisLimiter(redisClient, cfg.RateLimit.Max, cfg.RateLimit.Window)
	} else {
		logrus.Info("Redis not configured, using in-memory rate limiter")
		limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit.Max, cfg.RateLimit.Window)
	}

	app.Server = initializeServer(cfg, db, limiter)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, limiter ratelimit.Limiter) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	log := logrus.StandardLogger()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	prescriptionRepo := repository.NewPrescriptionRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo, jwtService)
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo, prescriptionRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, patientRepo)
	invoiceUsecase := usecase.NewInvoiceUsecase(log, invoiceRepo)
	statsUsecase := usecase.NewStatsUsecase(log, statsRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	invoiceHandler := handler.NewInvoiceHandler(invoiceUsecase, customValidator)
	statsHandler := handler.NewStatsHandler(statsUsecase)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS.AllowedOrigins)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(limiter, log)
	recoveryMiddleware := middleware.NewRecoveryMiddleware(log)

	router := deliveryHttp.NewRouter(
		authHandler,
		patientHandler,
		appointmentHandler,
		invoiceHandler,
		statsHandler,
		authMiddleware,
		corsMiddleware,
		rateLimitMiddleware,
		recoveryMiddleware,
	)

	return &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: router.Setup(),
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}

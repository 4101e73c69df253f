package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobportal-backend/config"
	_ "go-jobportal-backend/docs" // Important for Swagger
	v1 "go-jobportal-backend/internal/delivery/http/v1"
	"go-jobportal-backend/internal/repository/postgres"
	"go-jobportal-backend/internal/usecase"
	"go-jobportal-backend/pkg/auth"
	"go-jobportal-backend/pkg/database"
	"go-jobportal-backend/pkg/email"
	"go-jobportal-backend/pkg/logger"
	"go-jobportal-backend/pkg/redis"
	"go-jobportal-backend/pkg/security"
	"go-jobportal-backend/pkg/storage"
)

// @title           Student Job Portal API
// @version         1.0
// @description     Part-time job board for students, employers and admins.
// @host            localhost:5000
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	logger.Init(cfg.AppEnv)
	logger.Log.Info("Starting job portal backend", "port", cfg.Port, "env", cfg.AppEnv)
	secLogger := security.InitSecurityLogger("jobportal-api", cfg.AppEnv)
	defer secLogger.Sync()

	ctx := context.Background()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.RunMigrations {
		if err := database.RunMigrations(cfg.DBUrl); err != nil {
			logger.Log.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	// 4. Setup Redis (optional)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable - rate limits fall back to memory, login lockout disabled", "error", err)
	}
	defer redis.Close()

	// 5. Setup File Storage
	store, err := storage.New(ctx, storage.Options{
		Driver:    cfg.StorageDriver,
		LocalDir:  cfg.UploadDir,
		PublicURL: cfg.PublicBaseURL,
		S3: storage.S3Config{
			Provider:        storage.S3Provider(cfg.S3Provider),
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretKey,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			Endpoint:        cfg.S3Endpoint,
			PublicURL:       cfg.S3PublicURL,
		},
	})
	if err != nil {
		logger.Log.Error("Failed to initialize storage", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}
	uploadDir := ""
	if local, ok := store.(*storage.LocalStorage); ok {
		uploadDir = local.Root()
	}

	// 6. Setup Repositories
	accountRepo := postgres.NewAccountRepository(dbPool)
	studentRepo := postgres.NewStudentProfileRepository(dbPool)
	employerRepo := postgres.NewEmployerProfileRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	templateRepo := postgres.NewJobTemplateRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	adminRepo := postgres.NewAdminRepository(dbPool)

	// 7. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - password reset emails will fail")
	}

	// 8. Setup Token Manager
	tokens := auth.NewManager(cfg.JWTSecret, cfg.JWTExpires)

	// 9. Setup UseCases
	authUC := usecase.NewAuthUsecase(accountRepo, studentRepo, employerRepo, tokens, emailService)
	studentUC := usecase.NewStudentUsecase(studentRepo, jobRepo, store)
	employerUC := usecase.NewEmployerUsecase(employerRepo, jobRepo, store)
	jobUC := usecase.NewJobUsecase(jobRepo, employerRepo)
	templateUC := usecase.NewJobTemplateUsecase(templateRepo, jobRepo, employerRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, studentRepo)
	adminUC := usecase.NewAdminUsecase(adminRepo, accountRepo, studentRepo, employerRepo, jobRepo, applicationRepo, store)
	healthUC := usecase.NewHealthUsecase(map[string]usecase.HealthCheck{
		"database": dbPool.Ping,
		"redis": func(ctx context.Context) error {
			if redis.Client() == nil {
				return nil
			}
			return redis.HealthCheck(ctx)
		},
	})

	lockout := security.DefaultLoginTrackerConfig()
	lockout.MaxAttempts = cfg.FailedLoginMaxAttempts
	lockout.BlockDuration = time.Duration(cfg.FailedLoginBlockMinutes) * time.Minute
	loginTracker := security.NewLoginTracker(redis.Client(), lockout, secLogger)

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		StudentUC:     studentUC,
		EmployerUC:    employerUC,
		JobUC:         jobUC,
		TemplateUC:    templateUC,
		ApplicationUC: applicationUC,
		AdminUC:       adminUC,
		HealthUC:      healthUC,
		Tokens:        tokens,
		LoginTracker:  loginTracker,
		Redis:         redis.Client(),
		UploadDir:     uploadDir,
		Config:        cfg,
	})

	// 11. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

package v1

import (
	"net/http"
	"time"

	"go-jobportal-backend/config"
	"go-jobportal-backend/internal/delivery/http/middleware"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/usecase"
	"go-jobportal-backend/pkg/metrics"
	"go-jobportal-backend/pkg/security"
	"go-jobportal-backend/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	StudentUC     domain.StudentUsecase
	EmployerUC    domain.EmployerUsecase
	JobUC         domain.JobUsecase
	TemplateUC    domain.JobTemplateUsecase
	ApplicationUC domain.ApplicationUsecase
	AdminUC       domain.AdminUsecase
	HealthUC      usecase.HealthUsecase
	Tokens        middleware.TokenVerifier
	LoginTracker  *security.LoginTracker
	Redis         *goredis.Client
	// UploadDir is served under storage.PublicPrefix when non-empty.
	UploadDir string
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidators(v)
	}

	r := gin.New()
	r.MaxMultipartMemory = 8 << 20

	cfg := deps.Config
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.FrontendURL, cfg.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeadersMiddleware(cfg.IsProduction()))
	r.Use(middleware.ErrorHandler(cfg.IsProduction()))

	globalLimit := middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window)
	globalLimit.Client = deps.Redis
	loginLimit := middleware.LoginRateLimitConfig(cfg.RateLimitLoginThreshold, window)
	loginLimit.Client = deps.Redis

	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	if deps.UploadDir != "" {
		r.Static(storage.PublicPrefix, deps.UploadDir)
	}

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(globalLimit))

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		status, healthy := deps.HealthUC.Check(c.Request.Context())
		if !healthy {
			c.JSON(http.StatusServiceUnavailable, response.Response{
				Success: false,
				Message: "Service degraded",
				Data:    status,
			})
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	NewJobHandler(api, deps.JobUC)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))
	{
		NewAuthHandler(api, protected, deps.AuthUC, deps.LoginTracker, CookieConfig{
			MaxAge: time.Duration(cfg.CookieExpireDays) * 24 * time.Hour,
			Secure: cfg.IsProduction(),
		}, middleware.RateLimitMiddleware(loginLimit))
		NewStudentHandler(protected, deps.StudentUC, deps.JobUC, deps.ApplicationUC)
		NewEmployerHandler(protected, deps.EmployerUC, deps.JobUC, deps.TemplateUC, deps.ApplicationUC)
		NewAdminHandler(protected, deps.AdminUC, deps.TemplateUC)
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found", nil)
	})

	return r
}

package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/classtrack/attendance-api/internal/api/handler"
	"github.com/classtrack/attendance-api/internal/api/middleware"
	"github.com/classtrack/attendance-api/internal/core/service"
	"github.com/classtrack/attendance-api/internal/infrastructure/config"
	"github.com/classtrack/attendance-api/internal/infrastructure/db/sqlite"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, store *sqlite.Storage, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("attendance"))

	// --- Dependencies ---
	authRepo := sqlite.NewAuthRepository(store)
	studentRepo := sqlite.NewStudentRepository(store)

	tokenTTL := time.Duration(cfg.AccessTokenExpireMinutes) * time.Minute
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.JWTAlgorithm, tokenTTL, log)
	studentService := service.NewStudentService(studentRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	studentHandler := handler.NewStudentHandler(studentService)
	healthHandler := handler.NewHealthHandler(store)

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/token", authHandler.Login,
		echomiddleware.RateLimiter(echomiddleware.NewRateLimiterMemoryStore(5)))

	// --- Health probes and metrics (no auth required) ---
	e.GET("/health", healthHandler.Liveness)       // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – is the store reachable?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Protected routes ---
	protected := e.Group("", middleware.Auth(cfg.JWTSecret, cfg.JWTAlgorithm, authRepo))
	protected.POST("/student", studentHandler.Create)
	protected.GET("/students", studentHandler.List)
	protected.GET("/student/:id", studentHandler.Get)
	protected.PUT("/student/:id", studentHandler.Update)
	protected.DELETE("/student/:id", studentHandler.Delete)

	return e
}

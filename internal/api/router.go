package api

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/playgrid/leaderboard-system/internal/api/handler"
	"github.com/playgrid/leaderboard-system/internal/api/middleware"
	"github.com/playgrid/leaderboard-system/internal/core/service"
	"github.com/playgrid/leaderboard-system/internal/storage/memory"
)

// RouterConfig carries the settings the router needs from the environment.
type RouterConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
// TokenTTL and the signing secret are process-wide; both stores are created
// here, empty, and live for the lifetime of the router.
func NewRouter(cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	accountRepo := memory.NewAccountRepository()
	scoreRepo := memory.NewScoreRepository()

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(accountRepo, tokenService)
	scoreService := service.NewScoreService(scoreRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	scoreHandler := handler.NewScoreHandler(scoreService)
	authMiddleware := middleware.Auth(tokenService)

	// --- Auth routes ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// --- Leaderboard routes (write requires a token, read is public) ---
	e.POST("/high-scores", scoreHandler.Submit, authMiddleware)
	e.GET("/high-scores", scoreHandler.List)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

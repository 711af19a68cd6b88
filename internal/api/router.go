package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopstack/accounts-service/internal/api/handler"
	"github.com/shopstack/accounts-service/internal/api/middleware"
	"github.com/shopstack/accounts-service/internal/core/ports"
)

// Deps carries everything the router needs. Services are constructed in
// cmd/api so their lifecycles (worker pools, connections) stay in main.
type Deps struct {
	AuthService ports.AuthService
	RoleService ports.RoleService
	Tokens      ports.TokenVerifier
	Limiter     middleware.Limiter

	Postgres *pgxpool.Pool
	Redis    *redis.Client
	Mongo    *mongo.Database

	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	roleHandler := handler.NewRoleHandler(deps.RoleService)
	session := middleware.Session(deps.Tokens)
	throttle := middleware.RateLimit(deps.Limiter, deps.Logger)

	// --- Auth routes ---
	e.POST("/signup", authHandler.Signup, throttle)
	e.POST("/login", authHandler.Login, throttle)
	e.GET("/session", authHandler.Session, session)
	e.GET("/roles", roleHandler.List)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Postgres, deps.Redis, deps.Mongo)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

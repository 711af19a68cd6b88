package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopstack/accounts-service/internal/api"
	"github.com/shopstack/accounts-service/internal/core/service"
	"github.com/shopstack/accounts-service/internal/infrastructure/config"
	"github.com/shopstack/accounts-service/internal/infrastructure/crypto"
	"github.com/shopstack/accounts-service/internal/infrastructure/db/mongo"
	"github.com/shopstack/accounts-service/internal/infrastructure/db/postgres"
	"github.com/shopstack/accounts-service/internal/infrastructure/db/redis"
	"github.com/shopstack/accounts-service/internal/infrastructure/queue"
	"github.com/shopstack/accounts-service/internal/infrastructure/token"
	"github.com/shopstack/accounts-service/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; this is the one place stderr is used directly.
		os.Stderr.WriteString("fatal: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Stores ---
	pool, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Postgres.URL, MaxConns: cfg.Postgres.MaxConns})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer pool.Close()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	mongoClient, mongoDB, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	// --- Audit pipeline ---
	auditRepo := mongo.NewAuditRepository(mongoDB)
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(0, auditService, log)
	dispatcher.Start(ctx)

	// --- Core services ---
	accountRepo := postgres.NewAccountRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	roleService := service.NewRoleService(roleRepo, log)
	hasher := crypto.NewBcryptHasher(cfg.Auth.BcryptCost, 0)
	tokens := token.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := service.NewAuthService(accountRepo, roleService, hasher, tokens, dispatcher, log)

	limiter := redis.NewFixedWindowLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window)

	e := api.NewRouter(api.Deps{
		AuthService: authService,
		RoleService: roleService,
		Tokens:      tokens,
		Limiter:     limiter,
		Postgres:    pool,
		Redis:       rdb,
		Mongo:       mongoDB,
		Logger:      log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("accounts service started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

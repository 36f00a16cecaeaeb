package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Theakashprasad/practice-tool-client/internal/adapters/backend"
	portsrepo "github.com/Theakashprasad/practice-tool-client/internal/core/ports/repositories"
	"github.com/Theakashprasad/practice-tool-client/internal/core/services"
	"github.com/Theakashprasad/practice-tool-client/internal/handlers"
	"github.com/Theakashprasad/practice-tool-client/internal/middleware"
	"github.com/Theakashprasad/practice-tool-client/internal/platform/config"
	"github.com/Theakashprasad/practice-tool-client/internal/repositories/cache"
	"github.com/Theakashprasad/practice-tool-client/internal/repositories/database/pgsql"
	"github.com/Theakashprasad/practice-tool-client/internal/utils"
	"github.com/Theakashprasad/practice-tool-client/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const sessionPurgeInterval = 15 * time.Minute

// @title Practice Tool Client API
// @version 1.0
// @description Backend-for-frontend of the practice management dashboard.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("Failed to connect to redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisClient.Close()
		logger.Info("Redis connection established.")
	}

	sessions, closeSessions, err := newSessionStore(ctx, cfg, redisClient, logger)
	if err != nil {
		logger.Error("Failed to initialize session store", slog.String("error", err.Error()), slog.String("store", cfg.SessionStore))
		os.Exit(1)
	}
	defer closeSessions()

	var guards portsrepo.MutationGuardStore
	if redisClient != nil {
		guards = cache.NewRedisMutationGuardStore(redisClient)
	} else {
		memGuards := cache.NewInMemoryMutationGuardStore()
		defer memGuards.Close()
		guards = memGuards
	}

	backendClient := backend.NewClient(backend.Options{
		Timeout:  cfg.BackendTimeout,
		RetryMax: cfg.BackendRetryMax,
		Logger:   logger,
	})
	repos := backend.NewRepositoryProvider(backendClient, backend.NewEndpoints(cfg.BackendBaseURL))
	repos.Sessions = sessions
	repos.MutationGuards = guards

	serviceContainer := services.NewServiceContainer(cfg, repos)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	loginLimiter, err := middleware.NewLimiter(cfg.LoginRateLimit, redisClient)
	if err != nil {
		logger.Error("Failed to create login rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, analytics)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader, middleware.ConfirmationsHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.PosthogMiddleware(posthogClient))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, loginLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("backend", cfg.BackendBaseURL), slog.String("session_store", cfg.SessionStore))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newSessionStore picks the session backend named by SESSION_STORE. The returned func releases it.
func newSessionStore(ctx context.Context, cfg *config.Config, redisClient *redis.Client, logger *slog.Logger) (portsrepo.SessionStore, func(), error) {
	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		if redisClient == nil {
			return nil, nil, errMissing("REDIS_URL")
		}
		return cache.NewRedisSessionStore(redisClient), func() {}, nil

	case config.SessionStorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, nil, errMissing("PGSQL_URL")
		}
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, "file://migrations", logger); err != nil {
			return nil, nil, err
		}
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Database connection pool established.")
		repo := pgsql.NewSessionRepository(dbPool)
		go purgeExpiredSessions(ctx, repo, logger)
		return repo, dbPool.Close, nil

	default:
		store := cache.NewInMemorySessionStore()
		return store, func() { _ = store.Close() }, nil
	}
}

func purgeExpiredSessions(ctx context.Context, repo *pgsql.PgxSessionRepository, logger *slog.Logger) {
	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := repo.PurgeExpired(ctx)
			if err != nil {
				logger.Warn("Failed to purge expired sessions", slog.String("error", err.Error()))
				continue
			}
			if n > 0 {
				logger.Info("Purged expired sessions", slog.Int64("count", n))
			}
		}
	}
}

func errMissing(setting string) error {
	return fmt.Errorf("%s must be set for this session store", setting)
}

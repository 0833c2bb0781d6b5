package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"social-workflow-web/config"
	_ "social-workflow-web/docs" // Important for Swagger
	v1 "social-workflow-web/internal/delivery/http/v1"
	"social-workflow-web/internal/domain"
	memoryrepo "social-workflow-web/internal/repository/memory"
	redisrepo "social-workflow-web/internal/repository/redis"
	"social-workflow-web/internal/usecase"
	"social-workflow-web/pkg/logger"
	"social-workflow-web/pkg/redis"
	"social-workflow-web/pkg/security"
	"social-workflow-web/pkg/signupapi"
	"social-workflow-web/pkg/validation"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// @title           Social Workflow Pro API
// @version         1.0
// @description     Session-scoped signup form, post creator and selection state behind the Social Workflow Pro pages.
// @host            localhost:8080
// @BasePath        /api/v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Logger
	logger.Init(!cfg.IsRelease())
	logger.Log.Info("Starting social workflow web", "port", cfg.Port, "signup_endpoint", cfg.SignupEndpointURL)

	securityLogger := security.InitSecurityLogger("social-workflow-web", cfg.SentryEnvironment)
	defer func() { _ = securityLogger.Sync() }()

	// 3. Setup Error Reporting
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			Release:          cfg.AppVersion,
			TracesSampleRate: 0.2,
			AttachStacktrace: true,
		})
		if err != nil {
			logger.Log.Warn("Sentry initialization failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// 4. Setup Session Store
	var (
		sessions  domain.SessionRepository
		storeName = "memory"
		ping      func(ctx context.Context) error
	)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, keeping sessions in memory", "error", err)
		} else {
			defer redis.Close()
			sessions = redisrepo.NewSessionRepository(redis.Client(), cfg.SessionTTL())
			storeName = "redis"
			ping = redis.HealthCheck
		}
	}
	if sessions == nil {
		sessions = memoryrepo.NewSessionRepository(cfg.SessionTTL())
	}

	// 5. Setup UseCases
	validate := validation.New()
	gateway := signupapi.New(cfg.SignupEndpointURL, cfg.SignupTimeout())
	store := usecase.NewSessionStore(sessions)
	signupUC := usecase.NewSignupUsecase(store, gateway, validate)
	postCreatorUC := usecase.NewPostCreatorUsecase(store)
	selectionUC := usecase.NewSelectionUsecase(store)
	healthUC := usecase.NewHealthUsecase(storeName, ping)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		SignupUC:      signupUC,
		PostCreatorUC: postCreatorUC,
		SelectionUC:   selectionUC,
		HealthUC:      healthUC,
		Config:        cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

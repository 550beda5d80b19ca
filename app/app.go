// File: app/app.go
package app

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jeffschoe/chirpy/config"
	"github.com/jeffschoe/chirpy/db"
	"github.com/jeffschoe/chirpy/handler"
	"github.com/jeffschoe/chirpy/logger"
	"github.com/jeffschoe/chirpy/repository"
	"github.com/jeffschoe/chirpy/router"
	"github.com/jeffschoe/chirpy/service"
	"github.com/redis/go-redis/v9"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to redis: %v", err)
	}
	defer redisClient.Close()

	r := buildRouter(database, redisClient)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}

// buildRouter wires repositories, services and handlers together. This
// is the single place where the dependency graph is assembled.
func buildRouter(database *sql.DB, redisClient *redis.Client) http.Handler {
	cfg := config.AppConfig

	userRepo := repository.NewUserRepository(database)
	chirpRepo := repository.NewChirpRepository(database)
	tokenRepo := repository.NewTokenRepository(database)

	authService := service.NewAuthService(userRepo, tokenRepo, service.AuthConfig{
		Secret:          cfg.JWT.SecretKey,
		AccessTokenTTL:  cfg.JWT.AccessTokenTTL,
		RefreshTokenTTL: cfg.JWT.RefreshTokenTTL,
	})
	userService := service.NewUserService(userRepo, authService)
	chirpService := service.NewChirpService(chirpRepo, redisClient)

	userHandler := handler.NewUserHandler(userService, authService)
	chirpHandler := handler.NewChirpHandler(chirpService)
	tokenHandler := handler.NewTokenHandler(authService)
	webhookHandler := handler.NewWebhookHandler(userService, cfg.Polka.Key)
	metricsHandler := handler.NewMetricsHandler(userRepo, cfg.Platform)
	authMW := handler.NewAuthMiddleware(authService)

	return router.NewRouter(userHandler, chirpHandler, tokenHandler, webhookHandler, metricsHandler, authMW)
}

// TestApp bundles the wired router with its database handle for
// integration tests.
type TestApp struct {
	DB     *sql.DB
	Router http.Handler
}

// NewTestApp builds the full application stack on top of an existing
// database and redis connection. Config must already be loaded.
func NewTestApp(database *sql.DB, redisClient *redis.Client) *TestApp {
	return &TestApp{
		DB:     database,
		Router: buildRouter(database, redisClient),
	}
}

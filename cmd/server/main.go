package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/gradehub/resultportal-backend/internal/config"
	"github.com/gradehub/resultportal-backend/internal/database"
	"github.com/gradehub/resultportal-backend/internal/handler"
	"github.com/gradehub/resultportal-backend/internal/logger"
	"github.com/gradehub/resultportal-backend/internal/repository"
	"github.com/gradehub/resultportal-backend/internal/router"
	"github.com/gradehub/resultportal-backend/internal/service"
	"github.com/gradehub/resultportal-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Bool("otp_enabled", cfg.OTPEnabled()).
		Msg("Starting Result Portal Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to MongoDB ────────────────────────────────────────────
	client, db, err := database.NewMongoDatabase(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer disconnectCancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("MongoDB disconnect error")
		}
	}()

	// ─── OTP Session Store ─────────────────────────────────────────────
	// Redis when configured; otherwise pending sessions stay in process
	// memory for the short OTP validity window.
	var sessions service.SessionStore
	if cfg.RedisURL != "" {
		rdb, err := database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		sessions = service.NewRedisSessionStore(rdb)
	} else {
		log.Info().Msg("REDIS_URL not set, using in-memory OTP session store")
		sessions = service.NewMemorySessionStore()
	}

	// ─── Initialize Repository ─────────────────────────────────────────
	resultRepo := repository.NewResultRepository(db)
	if err := resultRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure indexes")
	}

	// ─── Initialize Services ───────────────────────────────────────────
	var verifier service.CodeVerifier
	if cfg.OTPEnabled() {
		verifier = service.NewTwilioVerifier(cfg)
	}
	authService := service.NewAuthService(cfg, sessions, verifier, log)
	resultService := service.NewResultService(resultRepo)
	importService := service.NewImportService(resultRepo, log)

	// ─── Initialize Handlers ───────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Admin:   handler.NewAdminHandler(resultService, importService, cfg.MaxUploadBytes),
		Student: handler.NewStudentHandler(resultService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}

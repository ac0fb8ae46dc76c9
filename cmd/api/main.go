package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/handler"
	"github.com/passforge/passforge-go/internal/middleware"
	"github.com/passforge/passforge-go/internal/repository"
	"github.com/passforge/passforge-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	// The audit log is optional: without a database everything except
	// recording and the stats route still works.
	var auditRepo *repository.AuditRepository
	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed — audit log disabled", "error", err)
	} else {
		auditRepo = repository.NewAuditRepository(db)
	}

	genService := service.NewGeneratorService(auditRepo)
	genHandler := handler.NewGeneratorHandler(genService)

	strengthService := service.NewStrengthService()
	strengthHandler := handler.NewStrengthHandler(strengthService)

	hashHandler := handler.NewHashHandler()

	tokenService := service.NewTokenService(cfg.APIKey, cfg.JWTSecret, cfg.TokenExpiry)
	authHandler := handler.NewAuthHandler(tokenService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/v1/generate", genHandler.HandleGenerate)
	r.Post("/api/v1/generate/batch", genHandler.HandleGenerateBatch)
	r.Post("/api/v1/strength", strengthHandler.HandleStrength)
	r.Post("/api/v1/hash", hashHandler.HandleHash)
	r.Post("/api/v1/hash/verify", hashHandler.HandleVerify)

	tokenLimiter := middleware.NewRateLimiter(5, 10, cfg.RateLimitTTL)
	defer tokenLimiter.Stop()

	r.Group(func(r chi.Router) {
		r.Use(tokenLimiter.Middleware)
		r.Post("/api/v1/auth/token", authHandler.HandleToken)
	})

	if auditRepo != nil {
		auditHandler := handler.NewAuditHandler(auditRepo)
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))
			r.Get("/api/v1/audit/stats", auditHandler.HandleStats)
		})
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

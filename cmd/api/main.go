package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/learnx/learnx-go/internal/adminlog"
	"github.com/learnx/learnx-go/internal/config"
	"github.com/learnx/learnx-go/internal/handler"
	"github.com/learnx/learnx-go/internal/middleware"
	"github.com/learnx/learnx-go/internal/repository"
	"github.com/learnx/learnx-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	startedAt := time.Now()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := repository.RunMigrations(ctx, db); err != nil {
		cancel()
		slog.Error("database migrations failed", "error", err)
		os.Exit(1)
	}
	cancel()

	audit, err := adminlog.NewFileSink(cfg.AdminLogPath, cfg.AdminEmail)
	if err != nil {
		slog.Error("admin log setup failed", "path", cfg.AdminLogPath, "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, audit, cfg.JWTSecret, cfg.TokenTTL)
	authHandler := handler.NewAuthHandler(authService)

	reflectionRepo := repository.NewReflectionRepository(db)
	reflectionService := service.NewReflectionService(reflectionRepo, audit)
	reflectionHandler := handler.NewReflectionHandler(reflectionService)

	feedbackRepo := repository.NewFeedbackRepository(db)
	feedbackService := service.NewFeedbackService(feedbackRepo, audit)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)

	healthHandler := handler.NewHealthHandler(startedAt)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: strings.Split(cfg.CORSOrigin, ","),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/api/health", healthHandler.HandleHealth)
	r.Post("/api/auth/register", authHandler.HandleRegister)
	r.Post("/api/auth/login", authHandler.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(cfg.JWTSecret))
		r.Get("/api/me", authHandler.HandleMe)
		r.Get("/api/reflections", reflectionHandler.HandleList)
		r.Post("/api/reflections", reflectionHandler.HandleCreate)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalAuth(cfg.JWTSecret))
		r.Post("/api/feedback", feedbackHandler.HandleCreate)
	})

	if cfg.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
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
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

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
	"github.com/securepassgen/securepassgen-go/internal/config"
	"github.com/securepassgen/securepassgen-go/internal/handler"
	"github.com/securepassgen/securepassgen-go/internal/middleware"
	"github.com/securepassgen/securepassgen-go/internal/password"
	"github.com/securepassgen/securepassgen-go/internal/repository"
	"github.com/securepassgen/securepassgen-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	src, err := password.NewCryptoSource()
	if err != nil {
		slog.Error("secure random source unavailable", "error", err)
		os.Exit(1)
	}

	assessor := password.NewAssessor()
	assessor.GuessesPerSecond = cfg.GuessesPerSecond

	// History is optional; without a database the generation endpoints
	// still work, just without recording or duplicate detection.
	var historyService *service.HistoryService

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed, auth and history routes disabled", "error", err)
	} else {
		userRepo := repository.NewUserRepository(db)
		authService := service.NewAuthService(userRepo, assessor, cfg.JWTSecret, cfg.JWTExpiry)
		authHandler := handler.NewAuthHandler(authService)

		historyRepo := repository.NewHistoryRepository(db)
		historyService = service.NewHistoryService(historyRepo)
		historyHandler := handler.NewHistoryHandler(historyService)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/api/v1/auth/register", authHandler.HandleRegister)
			r.Post("/api/v1/auth/login", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))
			r.Get("/api/v1/auth/me", authHandler.HandleMe)

			r.Get("/api/v1/history", historyHandler.HandleListHistory)
			r.Delete("/api/v1/history", historyHandler.HandleClearHistory)
		})
	}

	genService := service.NewGeneratorService(src, assessor, historyService)
	genHandler := handler.NewGeneratorHandler(genService)

	// Generation and assessment are public; a valid token attributes the
	// results to the caller's history.
	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalJWTAuth(cfg.JWTSecret))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Post("/api/v1/generate/bulk", genHandler.HandleGenerateBulk)
		r.Post("/api/v1/generate/pattern", genHandler.HandleGeneratePattern)
		r.Post("/api/v1/assess", genHandler.HandleAssess)
	})

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

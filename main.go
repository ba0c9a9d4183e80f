package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msomdec/user-service/internal/config"
	"github.com/msomdec/user-service/internal/handler"
	"github.com/msomdec/user-service/internal/repository/memory"
	"github.com/msomdec/user-service/internal/service"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	// The store lives here, in the composition root, and is passed down
	// explicitly. There is no package-level instance anywhere.
	users := memory.NewUserRepository()
	userService := service.NewUserService(users)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, cfg.APIPrefix,
		handler.NewUserHandler(userService, cfg.Development()),
		handler.NewHealthHandler(cfg.Environment, config.Version),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.RequestLogger(handler.Metrics(mux)),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "prefix", cfg.APIPrefix, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

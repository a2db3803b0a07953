package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pageza/devconnector/backend/config"
	"github.com/pageza/devconnector/backend/internal/api"
	"github.com/pageza/devconnector/backend/internal/database"
	"github.com/pageza/devconnector/backend/internal/middleware"
	"github.com/pageza/devconnector/backend/internal/router"
	"github.com/pageza/devconnector/backend/internal/server"
	"github.com/pageza/devconnector/backend/internal/service"
)

func main() {
	log := newLogger(config.GetEnvironment())
	slog.SetDefault(log)

	if err := run(log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func newLogger(env config.Environment) *slog.Logger {
	if env == config.Production {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func run(log *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	db, err := database.New(cfg, log)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		return err
	}

	var limiter *middleware.RateLimiter
	if cfg.Redis.Enabled() && cfg.Redis.AuthRateLimit > 0 {
		client, err := database.NewRedisClient(cfg.Redis, log)
		if err != nil {
			return err
		}
		defer client.Close()
		limiter = middleware.NewAuthRateLimiter(client, cfg.Redis.AuthRateLimit, cfg.Redis.AuthRateWindow, log)
	} else {
		log.Info("credential rate limiting disabled")
	}

	tokens := service.NewTokenService(service.TokenConfig{
		Secret: cfg.Auth.JWTSecret,
		TTL:    cfg.Auth.TokenTTL,
	})
	hasher := service.NewPasswordHasher(cfg.Auth.BcryptCost)

	handler := router.SetupRouter(cfg, api.Dependencies{
		Auth:        service.NewAuthService(db, hasher, tokens),
		Tokens:      tokens,
		Profiles:    service.NewProfileService(db),
		GitHub:      service.NewGitHubService(cfg.GitHub),
		Health:      func(ctx context.Context) error { return database.HealthCheck(ctx, db) },
		RateLimiter: limiter,
		Logger:      log,
	})

	srv := server.New(cfg.Server, handler, log)
	return serve(srv, cfg.Server, log)
}

func serve(srv *server.Server, cfg config.ServerConfig, log *slog.Logger) error {
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errChan:
		if err != nil {
			return err
		}
		return errors.New("server stopped unexpectedly")
	case sig := <-quit:
		log.Info("received signal", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	if err := <-errChan; err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}

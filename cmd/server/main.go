package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"

	"jobboard/internal/app"
	"jobboard/internal/auth"
	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/domain"
	"jobboard/internal/logging"
	"jobboard/internal/redis"
	"jobboard/internal/server"
	"jobboard/internal/storage"
)

func setupConfig() *config.Config {
	// .env is a development convenience; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized. A config error (including a
		// missing SECRET_KEY) aborts startup.
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupDB(cfg *config.Config) *pgxpool.Pool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.RunMigrations(ctx, pool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	return pool
}

func setupRedis(cfg *config.Config) *goredis.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	return client
}

func runGracefulShutdown(srv *server.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	pool := setupDB(cfg)
	defer pool.Close()

	redisClient := setupRedis(cfg)
	defer func() { _ = redisClient.Close() }()

	hasher, err := auth.NewPasswordHasher(cfg.BcryptCost)
	if err != nil {
		slog.Error("Failed to create password hasher", "error", err)
		os.Exit(1)
	}

	sessions, err := auth.NewSessions(cfg.SecretKey, clock)
	if err != nil {
		slog.Error("Failed to create session issuer", "error", err)
		os.Exit(1)
	}

	limiter := redis.NewLoginRateLimiter(redisClient, cfg.LoginRateLimit, time.Duration(cfg.LoginRateWindow)*time.Second)

	var files domain.FileStore
	if cfg.UploadURL != "" {
		files = storage.NewRemoteStore(cfg.UploadURL)
	}

	accountRepo := database.NewAccountRepo(pool)
	companyRepo := database.NewCompanyRepo(pool)
	jobRepo := database.NewJobRepo(pool)
	applicationRepo := database.NewApplicationRepo(pool)

	appSvc := app.NewService(accountRepo, companyRepo, jobRepo, applicationRepo, hasher)

	srv := server.NewServer(cfg, appSvc, sessions, limiter, files, pool, redisClient)
	done := runGracefulShutdown(srv)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
	slog.Info("Shutdown complete")
}

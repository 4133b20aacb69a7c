package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"

	"jobboard/internal/auth"
	"jobboard/internal/config"
	"jobboard/internal/domain"
	apperrors "jobboard/internal/errors"
)

// loginRateLimiter gates login attempts (nil-safe via the allowLogin helper).
type loginRateLimiter interface {
	Allow(ctx context.Context, email string) bool
}

type Server struct {
	echo     *echo.Echo
	config   *config.Config
	app      domain.AppService
	sessions *auth.Sessions
	limiter  loginRateLimiter
	files    domain.FileStore
	pool     *pgxpool.Pool
	rdb      *goredis.Client
}

// NewServer wires the HTTP layer. files may be nil when no upload service is
// configured; limiter may be nil to disable login rate limiting.
func NewServer(cfg *config.Config, app domain.AppService, sessions *auth.Sessions, limiter loginRateLimiter, files domain.FileStore, pool *pgxpool.Pool, rdb *goredis.Client) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:     e,
		config:   cfg,
		app:      app,
		sessions: sessions,
		limiter:  limiter,
		files:    files,
		pool:     pool,
		rdb:      rdb,
	}

	srv.registerRoutes()
	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

package server

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

func (s *Server) handleLiveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleReadiness reports whether the service can reach its backing stores.
func (s *Server) handleReadiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	checks := map[string]string{}
	healthy := true

	if s.pool != nil {
		if err := s.pool.Ping(ctx); err != nil {
			checks["database"] = "unavailable"
			healthy = false
		} else {
			checks["database"] = "ok"
		}
	}

	if s.rdb != nil {
		if err := s.rdb.Ping(ctx).Err(); err != nil {
			checks["redis"] = "unavailable"
			healthy = false
		} else {
			checks["redis"] = "ok"
		}
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{"checks": checks})
}

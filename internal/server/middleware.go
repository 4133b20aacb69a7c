package server

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"jobboard/internal/domain"
	apperrors "jobboard/internal/errors"
)

const sessionCookieName = "token"

// requireAuth validates the session cookie and stores the subject identity in
// the request context as "userID". Validation is stateless: no store lookup,
// just signature and expiry.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			return apperrors.AuthenticationError("authentication required")
		}

		subjectID, err := s.sessions.Validate(cookie.Value)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrTokenExpired):
				return apperrors.AuthenticationError("session expired")
			default:
				return apperrors.AuthenticationError("invalid session token")
			}
		}

		c.Set("userID", subjectID)
		return next(c)
	}
}

// subjectID extracts the authenticated subject set by requireAuth.
func subjectID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return uuid.Nil, apperrors.InternalError("invalid user ID in context", nil)
	}
	return id, nil
}

func (s *Server) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.config.AppEnv == "production",
		SameSite: http.SameSiteStrictMode,
	}
}

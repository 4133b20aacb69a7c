package server

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"jobboard/internal/auth"
	"jobboard/internal/domain"
	apperrors "jobboard/internal/errors"
	"jobboard/internal/metrics"
)

type accountResponse struct {
	ID          string   `json:"id"`
	FullName    string   `json:"fullName"`
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phoneNumber"`
	Role        string   `json:"role"`
	Bio         string   `json:"bio"`
	Skills      []string `json:"skills"`
	ResumeURL   string   `json:"resumeUrl,omitempty"`
	ResumeName  string   `json:"resumeName,omitempty"`
	PhotoURL    string   `json:"photoUrl,omitempty"`
}

func toAccountResponse(acct *domain.Account) accountResponse {
	return accountResponse{
		ID:          acct.ID.String(),
		FullName:    acct.FullName,
		Email:       acct.Email,
		PhoneNumber: acct.PhoneNumber,
		Role:        string(acct.Role),
		Bio:         acct.Profile.Bio,
		Skills:      acct.Profile.Skills,
		ResumeURL:   acct.Profile.ResumeURL,
		ResumeName:  acct.Profile.ResumeName,
		PhotoURL:    acct.Profile.PhotoURL,
	}
}

type registerRequest struct {
	FullName    string `json:"fullName" form:"fullName"`
	Email       string `json:"email" form:"email"`
	PhoneNumber string `json:"phoneNumber" form:"phoneNumber"`
	Password    string `json:"password" form:"password"`
	Role        string `json:"role" form:"role"`
}

func (s *Server) handleRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("malformed request body")
	}
	if req.FullName == "" || req.Email == "" || req.PhoneNumber == "" || req.Password == "" || req.Role == "" {
		return apperrors.ValidationError("fullName, email, phoneNumber, password and role are required")
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return apperrors.ValidationError("role must be applicant or recruiter")
	}

	// Optional profile photo: an upload failure is reported, but a missing
	// file never blocks registration.
	photoURL, err := s.uploadFormFile(c, "file")
	if err != nil {
		return apperrors.ExternalError("failed to upload profile photo", err)
	}

	acct, err := s.app.Register(c.Request().Context(), domain.RegisterInput{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Role:        role,
		PhotoURL:    photoURL,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return apperrors.ConflictError("account already exists with this email").WithField("email", req.Email)
		}
		return apperrors.InternalError("failed to create account", err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Account created successfully.",
		"user":    toAccountResponse(acct),
	})
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"`
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("malformed request body")
	}
	if req.Email == "" || req.Password == "" || req.Role == "" {
		return apperrors.ValidationError("email, password and role are required")
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return apperrors.ValidationError("role must be applicant or recruiter")
	}

	ctx := c.Request().Context()
	if s.limiter != nil && !s.limiter.Allow(ctx, req.Email) {
		metrics.LoginsTotal.WithLabelValues("rate_limited").Inc()
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts, try again later")
	}

	acct, err := s.app.Login(ctx, req.Email, req.Password, role)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return apperrors.AuthenticationError("incorrect email or password")
		}
		return apperrors.InternalError("failed to log in", err)
	}

	token, err := s.sessions.Issue(acct.ID)
	if err != nil {
		return apperrors.InternalError("failed to issue session token", err)
	}

	c.SetCookie(s.sessionCookie(token, int(auth.SessionTTL.Seconds())))
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Welcome back " + acct.FullName,
		"user":    toAccountResponse(acct),
	})
}

func (s *Server) handleLogout(c echo.Context) error {
	// The token is discarded client-side, not revoked: the cleared cookie is
	// the whole logout.
	c.SetCookie(s.sessionCookie("", -1))
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Logged out successfully.",
	})
}

func (s *Server) handleMe(c echo.Context) error {
	userID, err := subjectID(c)
	if err != nil {
		return err
	}

	acct, err := s.app.GetAccount(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return apperrors.NotFoundError("account not found")
		}
		return apperrors.InternalError("failed to load account", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"user": toAccountResponse(acct)})
}

func (s *Server) handleUpdateProfile(c echo.Context) error {
	userID, err := subjectID(c)
	if err != nil {
		return err
	}

	update := domain.ProfileUpdate{
		FullName:    c.FormValue("fullName"),
		Email:       c.FormValue("email"),
		PhoneNumber: c.FormValue("phoneNumber"),
		Bio:         c.FormValue("bio"),
	}
	if skills := c.FormValue("skills"); skills != "" {
		for _, skill := range strings.Split(skills, ",") {
			update.Skills = append(update.Skills, strings.TrimSpace(skill))
		}
	}

	if file, err := c.FormFile("file"); err == nil && file != nil {
		url, uploadErr := s.uploadMultipartFile(c, file)
		if uploadErr != nil {
			return apperrors.ExternalError("failed to upload resume", uploadErr)
		}
		update.ResumeURL = url
		update.ResumeName = file.Filename
	}

	acct, err := s.app.UpdateProfile(c.Request().Context(), userID, update)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return apperrors.NotFoundError("account not found")
		}
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return apperrors.ConflictError("account already exists with this email")
		}
		return apperrors.InternalError("failed to update profile", err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Profile updated successfully.",
		"user":    toAccountResponse(acct),
	})
}

// uploadFormFile uploads the named multipart file if one was sent. No file is
// not an error; a configured-but-failing upload service is.
func (s *Server) uploadFormFile(c echo.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil || file == nil {
		return "", nil
	}
	return s.uploadMultipartFile(c, file)
}

func (s *Server) uploadMultipartFile(c echo.Context, file *multipart.FileHeader) (string, error) {
	if s.files == nil {
		slog.Warn("File upload requested but no upload service configured", "filename", file.Filename)
		return "", nil
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	return s.files.Upload(c.Request().Context(), file.Filename, src)
}

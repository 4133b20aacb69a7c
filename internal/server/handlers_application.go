package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"jobboard/internal/domain"
	apperrors "jobboard/internal/errors"
)

type applicationResponse struct {
	ID          string    `json:"id"`
	JobID       string    `json:"jobId"`
	ApplicantID string    `json:"applicantId"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toApplicationResponse(a *domain.Application) applicationResponse {
	return applicationResponse{
		ID:          a.ID.String(),
		JobID:       a.JobID.String(),
		ApplicantID: a.ApplicantID.String(),
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (s *Server) handleApply(c echo.Context) error {
	userID, err := subjectID(c)
	if err != nil {
		return err
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ValidationError("invalid job ID").WithField("id", c.Param("id"))
	}

	app, err := s.app.Apply(c.Request().Context(), userID, jobID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return apperrors.ForbiddenError("only applicants can apply for jobs")
		case errors.Is(err, domain.ErrDuplicateApplication):
			return apperrors.ConflictError("you have already applied for this job").WithField("job_id", jobID.String())
		case errors.Is(err, domain.ErrJobNotFound):
			return apperrors.NotFoundError("job not found")
		case errors.Is(err, domain.ErrAccountNotFound):
			return apperrors.NotFoundError("account not found")
		}
		return apperrors.InternalError("failed to apply", err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message":     "Job applied successfully.",
		"application": toApplicationResponse(app),
	})
}

func (s *Server) handleAppliedJobs(c echo.Context) error {
	userID, err := subjectID(c)
	if err != nil {
		return err
	}

	applied, err := s.app.AppliedJobs(c.Request().Context(), userID)
	if err != nil {
		return apperrors.InternalError("failed to list applied jobs", err)
	}

	type appliedJobResponse struct {
		applicationResponse
		JobTitle    string `json:"jobTitle"`
		CompanyName string `json:"companyName"`
	}
	out := make([]appliedJobResponse, 0, len(applied))
	for i := range applied {
		out = append(out, appliedJobResponse{
			applicationResponse: toApplicationResponse(&applied[i].Application),
			JobTitle:            applied[i].JobTitle,
			CompanyName:         applied[i].CompanyName,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"applications": out})
}

func (s *Server) handleJobApplicants(c echo.Context) error {
	userID, err := subjectID(c)
	if err != nil {
		return err
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ValidationError("invalid job ID").WithField("id", c.Param("id"))
	}

	applicants, err := s.app.JobApplicants(c.Request().Context(), userID, jobID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return apperrors.ForbiddenError("you do not own the company for this job")
		case errors.Is(err, domain.ErrJobNotFound):
			return apperrors.NotFoundError("job not found")
		}
		return apperrors.InternalError("failed to list applicants", err)
	}

	type jobApplicantResponse struct {
		applicationResponse
		ApplicantName  string `json:"applicantName"`
		ApplicantEmail string `json:"applicantEmail"`
		ApplicantPhone string `json:"applicantPhone"`
		ResumeURL      string `json:"resumeUrl,omitempty"`
	}
	out := make([]jobApplicantResponse, 0, len(applicants))
	for i := range applicants {
		out = append(out, jobApplicantResponse{
			applicationResponse: toApplicationResponse(&applicants[i].Application),
			ApplicantName:       applicants[i].ApplicantName,
			ApplicantEmail:      applicants[i].ApplicantEmail,
			ApplicantPhone:      applicants[i].ApplicantPhone,
			ResumeURL:           applicants[i].ResumeURL,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"applicants": out})
}

func (s *Server) handleUpdateStatus(c echo.Context) error {
	userID, err := subjectID(c)
	if err != nil {
		return err
	}

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ValidationError("invalid application ID").WithField("id", c.Param("id"))
	}

	var req struct {
		Status string `json:"status" form:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("malformed request body")
	}
	if req.Status == "" {
		return apperrors.ValidationError("status is required")
	}

	status, err := domain.ParseDecision(req.Status)
	if err != nil {
		return apperrors.ValidationError("status must be accepted or rejected").WithField("status", req.Status)
	}

	app, err := s.app.DecideApplication(c.Request().Context(), userID, applicationID, status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrApplicationNotFound):
			return apperrors.NotFoundError("application not found")
		case errors.Is(err, domain.ErrJobNotFound):
			return apperrors.NotFoundError("job not found")
		case errors.Is(err, domain.ErrForbidden):
			return apperrors.ForbiddenError("you do not own the company for this application")
		case errors.Is(err, domain.ErrInvalidTransition):
			return apperrors.ConflictError("application status is already final").WithField("application_id", applicationID.String())
		}
		return apperrors.InternalError("failed to update application status", err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message":     "Status updated successfully.",
		"application": toApplicationResponse(app),
	})
}

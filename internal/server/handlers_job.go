package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"jobboard/internal/domain"
	apperrors "jobboard/internal/errors"
)

type jobResponse struct {
	ID              string    `json:"id"`
	CompanyID       string    `json:"companyId"`
	CompanyName     string    `json:"companyName,omitempty"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Requirements    []string  `json:"requirements"`
	Salary          string    `json:"salary"`
	Location        string    `json:"location"`
	JobType         string    `json:"jobType"`
	ExperienceLevel string    `json:"experienceLevel"`
	Positions       int       `json:"positions"`
	CreatedAt       time.Time `json:"createdAt"`
}

func toJobResponse(j *domain.JobWithCompany) jobResponse {
	return jobResponse{
		ID:              j.ID.String(),
		CompanyID:       j.CompanyID.String(),
		CompanyName:     j.CompanyName,
		Title:           j.Title,
		Description:     j.Description,
		Requirements:    j.Requirements,
		Salary:          j.Salary,
		Location:        j.Location,
		JobType:         j.JobType,
		ExperienceLevel: j.ExperienceLevel,
		Positions:       j.Positions,
		CreatedAt:       j.CreatedAt,
	}
}

type postJobRequest struct {
	Title           string `json:"title" form:"title"`
	Description     string `json:"description" form:"description"`
	Requirements    string `json:"requirements" form:"requirements"`
	Salary          string `json:"salary" form:"salary"`
	Location        string `json:"location" form:"location"`
	JobType         string `json:"jobType" form:"jobType"`
	ExperienceLevel string `json:"experienceLevel" form:"experienceLevel"`
	Positions       int    `json:"positions" form:"positions"`
	CompanyID       string `json:"companyId" form:"companyId"`
}

func (s *Server) handlePostJob(c echo.Context) error {
	userID, err := subjectID(c)
	if err != nil {
		return err
	}

	var req postJobRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("malformed request body")
	}
	if req.Title == "" || req.Description == "" || req.CompanyID == "" {
		return apperrors.ValidationError("title, description and companyId are required")
	}

	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return apperrors.ValidationError("invalid company ID").WithField("companyId", req.CompanyID)
	}

	var requirements []string
	for _, r := range strings.Split(req.Requirements, ",") {
		if r = strings.TrimSpace(r); r != "" {
			requirements = append(requirements, r)
		}
	}
	positions := req.Positions
	if positions < 1 {
		positions = 1
	}

	job, err := s.app.PostJob(c.Request().Context(), userID, domain.NewJob{
		CompanyID:       companyID,
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    requirements,
		Salary:          req.Salary,
		Location:        req.Location,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
		Positions:       positions,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return apperrors.ForbiddenError("only the owning recruiter can post jobs for this company")
		case errors.Is(err, domain.ErrCompanyNotFound):
			return apperrors.NotFoundError("company not found")
		case errors.Is(err, domain.ErrAccountNotFound):
			return apperrors.NotFoundError("account not found")
		}
		return apperrors.InternalError("failed to post job", err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Job posted successfully.",
		"job": jobResponse{
			ID:              job.ID.String(),
			CompanyID:       job.CompanyID.String(),
			Title:           job.Title,
			Description:     job.Description,
			Requirements:    job.Requirements,
			Salary:          job.Salary,
			Location:        job.Location,
			JobType:         job.JobType,
			ExperienceLevel: job.ExperienceLevel,
			Positions:       job.Positions,
			CreatedAt:       job.CreatedAt,
		},
	})
}

func (s *Server) handleListJobs(c echo.Context) error {
	jobs, err := s.app.ListJobs(c.Request().Context(), c.QueryParam("keyword"))
	if err != nil {
		return apperrors.InternalError("failed to list jobs", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"jobs": toJobResponses(jobs)})
}

func (s *Server) handleGetJob(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ValidationError("invalid job ID").WithField("id", c.Param("id"))
	}

	job, err := s.app.GetJob(c.Request().Context(), jobID)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return apperrors.NotFoundError("job not found")
		}
		return apperrors.InternalError("failed to get job", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"job": toJobResponse(job)})
}

func (s *Server) handleListOwnJobs(c echo.Context) error {
	userID, err := subjectID(c)
	if err != nil {
		return err
	}

	jobs, err := s.app.ListOwnJobs(c.Request().Context(), userID)
	if err != nil {
		return apperrors.InternalError("failed to list own jobs", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"jobs": toJobResponses(jobs)})
}

func toJobResponses(jobs []domain.JobWithCompany) []jobResponse {
	out := make([]jobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, toJobResponse(&jobs[i]))
	}
	return out
}

package server

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"jobboard/internal/domain"
	apperrors "jobboard/internal/errors"
)

type companyResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Location    string `json:"location"`
	LogoURL     string `json:"logoUrl,omitempty"`
	OwnerID     string `json:"ownerId"`
}

func toCompanyResponse(c *domain.Company) companyResponse {
	return companyResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		Website:     c.Website,
		Location:    c.Location,
		LogoURL:     c.LogoURL,
		OwnerID:     c.OwnerID.String(),
	}
}

func (s *Server) handleRegisterCompany(c echo.Context) error {
	userID, err := subjectID(c)
	if err != nil {
		return err
	}

	var req struct {
		CompanyName string `json:"companyName" form:"companyName"`
	}
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("malformed request body")
	}
	if req.CompanyName == "" {
		return apperrors.ValidationError("companyName is required")
	}

	company, err := s.app.RegisterCompany(c.Request().Context(), userID, req.CompanyName)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return apperrors.ForbiddenError("only recruiters can register companies")
		case errors.Is(err, domain.ErrDuplicateCompany):
			return apperrors.ConflictError("company already registered with this name").WithField("name", req.CompanyName)
		case errors.Is(err, domain.ErrAccountNotFound):
			return apperrors.NotFoundError("account not found")
		}
		return apperrors.InternalError("failed to register company", err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Company registered successfully.",
		"company": toCompanyResponse(company),
	})
}

func (s *Server) handleListCompanies(c echo.Context) error {
	userID, err := subjectID(c)
	if err != nil {
		return err
	}

	companies, err := s.app.ListCompanies(c.Request().Context(), userID)
	if err != nil {
		return apperrors.InternalError("failed to list companies", err)
	}

	out := make([]companyResponse, 0, len(companies))
	for i := range companies {
		out = append(out, toCompanyResponse(&companies[i]))
	}
	return c.JSON(http.StatusOK, map[string]any{"companies": out})
}

func (s *Server) handleGetCompany(c echo.Context) error {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ValidationError("invalid company ID").WithField("id", c.Param("id"))
	}

	company, err := s.app.GetCompany(c.Request().Context(), companyID)
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			return apperrors.NotFoundError("company not found")
		}
		return apperrors.InternalError("failed to get company", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"company": toCompanyResponse(company)})
}

func (s *Server) handleUpdateCompany(c echo.Context) error {
	userID, err := subjectID(c)
	if err != nil {
		return err
	}

	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ValidationError("invalid company ID").WithField("id", c.Param("id"))
	}

	var req struct {
		Name        string `json:"name" form:"name"`
		Description string `json:"description" form:"description"`
		Website     string `json:"website" form:"website"`
		Location    string `json:"location" form:"location"`
		LogoURL     string `json:"logoUrl" form:"logoUrl"`
	}
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("malformed request body")
	}

	company, err := s.app.UpdateCompany(c.Request().Context(), userID, companyID, domain.CompanyUpdate{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCompanyNotFound):
			return apperrors.NotFoundError("company not found")
		case errors.Is(err, domain.ErrForbidden):
			return apperrors.ForbiddenError("you do not own this company")
		case errors.Is(err, domain.ErrDuplicateCompany):
			return apperrors.ConflictError("company already registered with this name")
		}
		return apperrors.InternalError("failed to update company", err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Company updated successfully.",
		"company": toCompanyResponse(company),
	})
}

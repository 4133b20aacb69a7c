package domain

import (
	"context"

	"github.com/google/uuid"
)

// RegisterInput is the explicit input for account registration. Required
// fields are validated before reaching business logic.
type RegisterInput struct {
	FullName    string
	Email       string
	PhoneNumber string
	Password    string
	Role        Role
	PhotoURL    string
}

// AppService is the application layer contract consumed by the HTTP server.
type AppService interface {
	// Identity
	Register(ctx context.Context, input RegisterInput) (*Account, error)
	Login(ctx context.Context, email, password string, role Role) (*Account, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*Account, error)
	UpdateProfile(ctx context.Context, subjectID uuid.UUID, update ProfileUpdate) (*Account, error)

	// Companies
	RegisterCompany(ctx context.Context, subjectID uuid.UUID, name string) (*Company, error)
	ListCompanies(ctx context.Context, subjectID uuid.UUID) ([]Company, error)
	GetCompany(ctx context.Context, id uuid.UUID) (*Company, error)
	UpdateCompany(ctx context.Context, subjectID, companyID uuid.UUID, update CompanyUpdate) (*Company, error)

	// Jobs
	PostJob(ctx context.Context, subjectID uuid.UUID, job NewJob) (*Job, error)
	ListJobs(ctx context.Context, keyword string) ([]JobWithCompany, error)
	GetJob(ctx context.Context, id uuid.UUID) (*JobWithCompany, error)
	ListOwnJobs(ctx context.Context, subjectID uuid.UUID) ([]JobWithCompany, error)

	// Application lifecycle
	Apply(ctx context.Context, subjectID, jobID uuid.UUID) (*Application, error)
	AppliedJobs(ctx context.Context, subjectID uuid.UUID) ([]AppliedJob, error)
	JobApplicants(ctx context.Context, subjectID, jobID uuid.UUID) ([]JobApplicant, error)
	DecideApplication(ctx context.Context, subjectID, applicationID uuid.UUID, status Status) (*Application, error)
}

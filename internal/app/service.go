package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"jobboard/internal/auth"
	"jobboard/internal/domain"
	"jobboard/internal/metrics"
)

// Service is the application layer - the only component that references
// multiple domain components. It orchestrates all use cases.
type Service struct {
	accounts     domain.AccountRepository
	companies    domain.CompanyRepository
	jobs         domain.JobRepository
	applications domain.ApplicationRepository
	hasher       *auth.PasswordHasher
}

var _ domain.AppService = (*Service)(nil)

// NewService creates the application layer service.
func NewService(
	accounts domain.AccountRepository,
	companies domain.CompanyRepository,
	jobs domain.JobRepository,
	applications domain.ApplicationRepository,
	hasher *auth.PasswordHasher,
) *Service {
	return &Service{
		accounts:     accounts,
		companies:    companies,
		jobs:         jobs,
		applications: applications,
		hasher:       hasher,
	}
}

// Register creates a new account with a hashed credential. Email uniqueness
// is enforced by the accounts table, not by a find-then-create check.
func (s *Service) Register(ctx context.Context, input domain.RegisterInput) (*domain.Account, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	acct, err := s.accounts.Create(ctx, domain.NewAccount{
		FullName:     input.FullName,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: hash,
		Role:         input.Role,
		PhotoURL:     input.PhotoURL,
	})
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(acct.Role)).Inc()
	return acct, nil
}

// Login verifies the presented credentials against the stored hash. Unknown
// email, wrong password, and role mismatch all collapse into
// ErrInvalidCredentials so a caller cannot probe which accounts exist.
func (s *Service) Login(ctx context.Context, email, password string, role domain.Role) (*domain.Account, error) {
	acct, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, acct.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	if acct.Role != role {
		return nil, domain.ErrInvalidCredentials
	}

	return acct, nil
}

func (s *Service) GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return s.accounts.GetByID(ctx, id)
}

// UpdateProfile mutates the subject's own profile. Ownership is structural:
// the update is keyed by the authenticated subject's id.
func (s *Service) UpdateProfile(ctx context.Context, subjectID uuid.UUID, update domain.ProfileUpdate) (*domain.Account, error) {
	return s.accounts.UpdateProfile(ctx, subjectID, update)
}

func (s *Service) RegisterCompany(ctx context.Context, subjectID uuid.UUID, name string) (*domain.Company, error) {
	if err := s.requireRole(ctx, subjectID, domain.RoleRecruiter); err != nil {
		return nil, err
	}
	return s.companies.Create(ctx, name, subjectID)
}

func (s *Service) ListCompanies(ctx context.Context, subjectID uuid.UUID) ([]domain.Company, error) {
	return s.companies.ListByOwner(ctx, subjectID)
}

func (s *Service) GetCompany(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	return s.companies.GetByID(ctx, id)
}

func (s *Service) UpdateCompany(ctx context.Context, subjectID, companyID uuid.UUID, update domain.CompanyUpdate) (*domain.Company, error) {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireOwner(subjectID, company.OwnerID); err != nil {
		return nil, err
	}
	return s.companies.Update(ctx, companyID, update)
}

func (s *Service) PostJob(ctx context.Context, subjectID uuid.UUID, job domain.NewJob) (*domain.Job, error) {
	if err := s.requireRole(ctx, subjectID, domain.RoleRecruiter); err != nil {
		return nil, err
	}

	company, err := s.companies.GetByID(ctx, job.CompanyID)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireOwner(subjectID, company.OwnerID); err != nil {
		return nil, err
	}

	job.CreatedBy = subjectID
	return s.jobs.Create(ctx, job)
}

func (s *Service) ListJobs(ctx context.Context, keyword string) ([]domain.JobWithCompany, error) {
	return s.jobs.List(ctx, keyword)
}

func (s *Service) GetJob(ctx context.Context, id uuid.UUID) (*domain.JobWithCompany, error) {
	return s.jobs.GetByID(ctx, id)
}

func (s *Service) ListOwnJobs(ctx context.Context, subjectID uuid.UUID) ([]domain.JobWithCompany, error) {
	return s.jobs.ListByCreator(ctx, subjectID)
}

// Apply creates a pending application for the subject. The duplicate check is
// not performed here: the applications table's unique constraint is the
// source of truth, so two concurrent applies for the same (applicant, job)
// produce exactly one row and one ErrDuplicateApplication.
func (s *Service) Apply(ctx context.Context, subjectID, jobID uuid.UUID) (*domain.Application, error) {
	if err := s.requireRole(ctx, subjectID, domain.RoleApplicant); err != nil {
		return nil, err
	}

	app, err := s.applications.Create(ctx, subjectID, jobID)
	if err != nil {
		return nil, err
	}

	metrics.ApplicationsCreatedTotal.Inc()
	return app, nil
}

func (s *Service) AppliedJobs(ctx context.Context, subjectID uuid.UUID) ([]domain.AppliedJob, error) {
	return s.applications.ListByApplicant(ctx, subjectID)
}

// JobApplicants lists a job's applications with applicant details. Only the
// recruiter who owns the job's company may see them.
func (s *Service) JobApplicants(ctx context.Context, subjectID, jobID uuid.UUID) ([]domain.JobApplicant, error) {
	ownerID, err := s.jobs.OwnerOf(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireOwner(subjectID, ownerID); err != nil {
		return nil, err
	}
	return s.applications.ListByJob(ctx, jobID)
}

// DecideApplication moves a pending application to accepted or rejected.
// Ownership is checked before the write; the transition itself is a
// conditional update, so a second decision on the same application observes
// ErrInvalidTransition instead of flipping a terminal state.
func (s *Service) DecideApplication(ctx context.Context, subjectID, applicationID uuid.UUID, status domain.Status) (*domain.Application, error) {
	if !status.Terminal() {
		return nil, fmt.Errorf("invalid decision status %q", status)
	}

	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	ownerID, err := s.jobs.OwnerOf(ctx, app.JobID)
	if err != nil {
		return nil, err
	}
	if err := auth.RequireOwner(subjectID, ownerID); err != nil {
		return nil, err
	}

	updated, err := s.applications.UpdateStatus(ctx, applicationID, status)
	if err != nil {
		return nil, err
	}

	metrics.ApplicationDecisionsTotal.WithLabelValues(string(status)).Inc()
	return updated, nil
}

func (s *Service) requireRole(ctx context.Context, subjectID uuid.UUID, role domain.Role) error {
	acct, err := s.accounts.GetByID(ctx, subjectID)
	if err != nil {
		return err
	}
	return auth.RequireRole(acct.Role, role)
}

package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is referenced by the application lifecycle but owned by the job/company
// CRUD surface. The lifecycle core only needs job-id to owning-recruiter
// resolution (OwnerOf) for authorization.
type Job struct {
	ID              uuid.UUID
	CompanyID       uuid.UUID
	CreatedBy       uuid.UUID
	Title           string
	Description     string
	Requirements    []string
	Salary          string
	Location        string
	JobType         string
	ExperienceLevel string
	Positions       int
	CreatedAt       time.Time
}

// JobWithCompany is the public listing shape: a job plus the company it
// belongs to.
type JobWithCompany struct {
	Job
	CompanyName string
	CompanyLogo string
}

type NewJob struct {
	CompanyID       uuid.UUID
	CreatedBy       uuid.UUID
	Title           string
	Description     string
	Requirements    []string
	Salary          string
	Location        string
	JobType         string
	ExperienceLevel string
	Positions       int
}

type JobRepository interface {
	Create(ctx context.Context, job NewJob) (*Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*JobWithCompany, error)
	// List returns all jobs, optionally filtered by a keyword matched against
	// title and description, newest first.
	List(ctx context.Context, keyword string) ([]JobWithCompany, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]JobWithCompany, error)
	// OwnerOf resolves the recruiter who owns the company the job belongs to.
	OwnerOf(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error)
}

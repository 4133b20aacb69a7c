package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status values mirror the application_status check constraint in PostgreSQL.
//
// Valid status graph:
//
//	pending ──► accepted
//	    │
//	    └─────► rejected
//
// accepted and rejected are terminal states.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Terminal returns true when no further transition is permitted from s.
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// ParseDecision converts a raw status string from a triage request into a
// Status. Only the two terminal states are valid decisions; input is
// case-insensitive and normalized to lowercase before storage.
func ParseDecision(s string) (Status, error) {
	switch st := Status(strings.ToLower(s)); st {
	case StatusAccepted, StatusRejected:
		return st, nil
	}
	return "", fmt.Errorf("invalid status %q: must be accepted or rejected", s)
}

type Application struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	ApplicantID uuid.UUID
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AppliedJob is an application joined with the job and company it targets,
// the shape an applicant sees in their own list.
type AppliedJob struct {
	Application
	JobTitle    string
	CompanyName string
}

// JobApplicant is an application joined with the applicant's details, the
// shape a recruiter sees when triaging a job's applicants.
type JobApplicant struct {
	Application
	ApplicantName  string
	ApplicantEmail string
	ApplicantPhone string
	ResumeURL      string
}

type ApplicationRepository interface {
	// Create inserts a new pending application. The (job, applicant) pair is
	// guarded by a storage-level unique constraint; a second insert for the
	// same pair returns ErrDuplicateApplication regardless of interleaving.
	Create(ctx context.Context, applicantID, jobID uuid.UUID) (*Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Application, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]AppliedJob, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]JobApplicant, error)
	// UpdateStatus transitions an application out of pending. The update is
	// conditional on the row still being pending, so concurrent calls
	// serialize at the database and the loser gets ErrInvalidTransition.
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Application, error)
}

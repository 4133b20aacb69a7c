package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobboard/internal/domain"
)

const applicationColumns = `id, job_id, applicant_id, status, created_at, updated_at`

// ApplicationRepo implements domain.ApplicationRepository backed by PostgreSQL.
//
// The two lifecycle invariants live in the database: the UNIQUE
// (job_id, applicant_id) constraint makes concurrent applies linearizable,
// and UpdateStatus is a conditional update that only fires while the row is
// still pending.
type ApplicationRepo struct {
	pool *pgxpool.Pool
}

func NewApplicationRepo(pool *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{pool: pool}
}

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var a domain.Application
	err := row.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ApplicationRepo) Create(ctx context.Context, applicantID, jobID uuid.UUID) (*domain.Application, error) {
	app, err := scanApplication(r.pool.QueryRow(ctx, `
		INSERT INTO applications (job_id, applicant_id)
		VALUES ($1, $2)
		RETURNING `+applicationColumns,
		jobID, applicantID,
	))
	if isUniqueViolation(err) {
		return nil, domain.ErrDuplicateApplication
	}
	if isForeignKeyViolation(err) {
		return nil, domain.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return app, nil
}

func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	app, err := scanApplication(r.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrApplicationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get application by ID: %w", err)
	}
	return app, nil
}

func (r *ApplicationRepo) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]domain.AppliedJob, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.job_id, a.applicant_id, a.status, a.created_at, a.updated_at,
			j.title, c.name
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN companies c ON c.id = j.company_id
		WHERE a.applicant_id = $1
		ORDER BY a.created_at DESC`, applicantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications by applicant: %w", err)
	}
	defer rows.Close()

	applied := make([]domain.AppliedJob, 0)
	for rows.Next() {
		var a domain.AppliedJob
		err := rows.Scan(
			&a.ID, &a.JobID, &a.ApplicantID, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&a.JobTitle, &a.CompanyName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan applied job: %w", err)
		}
		applied = append(applied, a)
	}
	return applied, rows.Err()
}

func (r *ApplicationRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]domain.JobApplicant, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.job_id, a.applicant_id, a.status, a.created_at, a.updated_at,
			acc.full_name, acc.email, acc.phone_number, acc.resume_url
		FROM applications a
		JOIN accounts acc ON acc.id = a.applicant_id
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC`, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications by job: %w", err)
	}
	defer rows.Close()

	applicants := make([]domain.JobApplicant, 0)
	for rows.Next() {
		var a domain.JobApplicant
		err := rows.Scan(
			&a.ID, &a.JobID, &a.ApplicantID, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&a.ApplicantName, &a.ApplicantEmail, &a.ApplicantPhone, &a.ResumeURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job applicant: %w", err)
		}
		applicants = append(applicants, a)
	}
	return applicants, rows.Err()
}

// UpdateStatus transitions the application out of pending. The WHERE clause
// keeps the transition conditional, so of two concurrent updates exactly one
// sees a row; the other falls through to the existence check and reports
// ErrInvalidTransition.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) (*domain.Application, error) {
	app, err := scanApplication(r.pool.QueryRow(ctx, `
		UPDATE applications
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING `+applicationColumns,
		id, status,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		var current domain.Status
		checkErr := r.pool.QueryRow(ctx,
			`SELECT status FROM applications WHERE id = $1`, id).Scan(&current)
		if errors.Is(checkErr, pgx.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		if checkErr != nil {
			return nil, fmt.Errorf("failed to check application status: %w", checkErr)
		}
		return nil, domain.ErrInvalidTransition
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	return app, nil
}

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

const jobColumns = `j.id, j.company_id, j.created_by, j.title, j.description, j.requirements,
	j.salary, j.location, j.job_type, j.experience_level, j.positions, j.created_at`

// JobRepo implements domain.JobRepository backed by PostgreSQL.
type JobRepo struct {
	pool *pgxpool.Pool
}

func NewJobRepo(pool *pgxpool.Pool) *JobRepo {
	return &JobRepo{pool: pool}
}

func scanJobWithCompany(row pgx.Row) (*domain.JobWithCompany, error) {
	var j domain.JobWithCompany
	err := row.Scan(
		&j.ID, &j.CompanyID, &j.CreatedBy, &j.Title, &j.Description, &j.Requirements,
		&j.Salary, &j.Location, &j.JobType, &j.ExperienceLevel, &j.Positions, &j.CreatedAt,
		&j.CompanyName, &j.CompanyLogo,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *JobRepo) Create(ctx context.Context, job domain.NewJob) (*domain.Job, error) {
	var created domain.Job
	err := r.pool.QueryRow(ctx, `
		INSERT INTO jobs (company_id, created_by, title, description, requirements,
			salary, location, job_type, experience_level, positions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, company_id, created_by, title, description, requirements,
			salary, location, job_type, experience_level, positions, created_at`,
		job.CompanyID, job.CreatedBy, job.Title, job.Description, job.Requirements,
		job.Salary, job.Location, job.JobType, job.ExperienceLevel, job.Positions,
	).Scan(
		&created.ID, &created.CompanyID, &created.CreatedBy, &created.Title,
		&created.Description, &created.Requirements, &created.Salary, &created.Location,
		&created.JobType, &created.ExperienceLevel, &created.Positions, &created.CreatedAt,
	)
	if isForeignKeyViolation(err) {
		return nil, domain.ErrCompanyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return &created, nil
}

func (r *JobRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobWithCompany, error) {
	job, err := scanJobWithCompany(r.pool.QueryRow(ctx, `
		SELECT `+jobColumns+`, c.name, c.logo_url
		FROM jobs j JOIN companies c ON c.id = j.company_id
		WHERE j.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job by ID: %w", err)
	}
	return job, nil
}

func (r *JobRepo) List(ctx context.Context, keyword string) ([]domain.JobWithCompany, error) {
	query := `
		SELECT ` + jobColumns + `, c.name, c.logo_url
		FROM jobs j JOIN companies c ON c.id = j.company_id`
	args := []any{}
	if keyword != "" {
		query += ` WHERE j.title ILIKE '%' || $1 || '%' OR j.description ILIKE '%' || $1 || '%'`
		args = append(args, keyword)
	}
	query += ` ORDER BY j.created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

func (r *JobRepo) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.JobWithCompany, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+jobColumns+`, c.name, c.logo_url
		FROM jobs j JOIN companies c ON c.id = j.company_id
		WHERE j.created_by = $1
		ORDER BY j.created_at DESC`, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs by creator: %w", err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

func collectJobs(rows pgx.Rows) ([]domain.JobWithCompany, error) {
	jobs := make([]domain.JobWithCompany, 0)
	for rows.Next() {
		job, err := scanJobWithCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

// OwnerOf resolves the recruiter who owns the company the job belongs to.
// This is the single lookup the lifecycle core needs for its ownership checks.
func (r *JobRepo) OwnerOf(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	var ownerID uuid.UUID
	err := r.pool.QueryRow(ctx, `
		SELECT c.owner_id
		FROM jobs j JOIN companies c ON c.id = j.company_id
		WHERE j.id = $1`, jobID,
	).Scan(&ownerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, domain.ErrJobNotFound
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to resolve job owner: %w", err)
	}
	return ownerID, nil
}

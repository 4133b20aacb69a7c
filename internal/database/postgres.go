package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("Database connected", "min_conns", poolCfg.MinConns, "max_conns", poolCfg.MaxConns)
	return pool, nil
}

func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			full_name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			phone_number TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL CHECK (role IN ('applicant', 'recruiter')),
			bio TEXT NOT NULL DEFAULT '',
			skills TEXT[] NOT NULL DEFAULT '{}',
			resume_url TEXT NOT NULL DEFAULT '',
			resume_name TEXT NOT NULL DEFAULT '',
			photo_url TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS companies (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT UNIQUE NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			website TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			logo_url TEXT NOT NULL DEFAULT '',
			owner_id UUID NOT NULL REFERENCES accounts(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_companies_owner_id ON companies(owner_id)`,
		`CREATE TABLE IF NOT EXISTS jobs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			company_id UUID NOT NULL REFERENCES companies(id),
			created_by UUID NOT NULL REFERENCES accounts(id),
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			requirements TEXT[] NOT NULL DEFAULT '{}',
			salary TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			job_type TEXT NOT NULL DEFAULT '',
			experience_level TEXT NOT NULL DEFAULT '',
			positions INT NOT NULL DEFAULT 1,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_jobs_company_id ON jobs(company_id)`,
		`CREATE INDEX IF NOT EXISTS idx_jobs_created_by ON jobs(created_by)`,
		`CREATE TABLE IF NOT EXISTS applications (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			job_id UUID NOT NULL REFERENCES jobs(id),
			applicant_id UUID NOT NULL REFERENCES accounts(id),
			status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'accepted', 'rejected')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (job_id, applicant_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_applications_applicant_id ON applications(applicant_id)`,
		`CREATE INDEX IF NOT EXISTS idx_applications_job_id ON applications(job_id)`,
	}

	for _, migration := range migrations {
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	slog.Info("Database migrations completed")
	return nil
}

// PostgreSQL error codes relevant to constraint-enforced invariants.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

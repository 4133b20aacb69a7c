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

const companyColumns = `id, name, description, website, location, logo_url, owner_id, created_at, updated_at`

// CompanyRepo implements domain.CompanyRepository backed by PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

func NewCompanyRepo(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var c domain.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Description, &c.Website, &c.Location,
		&c.LogoURL, &c.OwnerID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CompanyRepo) Create(ctx context.Context, name string, ownerID uuid.UUID) (*domain.Company, error) {
	company, err := scanCompany(r.pool.QueryRow(ctx, `
		INSERT INTO companies (name, owner_id)
		VALUES ($1, $2)
		RETURNING `+companyColumns,
		name, ownerID,
	))
	if isUniqueViolation(err) {
		return nil, domain.ErrDuplicateCompany
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return company, nil
}

func (r *CompanyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	company, err := scanCompany(r.pool.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCompanyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get company by ID: %w", err)
	}
	return company, nil
}

func (r *CompanyRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Company, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	companies := make([]domain.Company, 0)
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, *company)
	}
	return companies, rows.Err()
}

func (r *CompanyRepo) Update(ctx context.Context, id uuid.UUID, update domain.CompanyUpdate) (*domain.Company, error) {
	company, err := scanCompany(r.pool.QueryRow(ctx, `
		UPDATE companies SET
			name        = COALESCE(NULLIF($2, ''), name),
			description = COALESCE(NULLIF($3, ''), description),
			website     = COALESCE(NULLIF($4, ''), website),
			location    = COALESCE(NULLIF($5, ''), location),
			logo_url    = COALESCE(NULLIF($6, ''), logo_url),
			updated_at  = NOW()
		WHERE id = $1
		RETURNING `+companyColumns,
		id, update.Name, update.Description, update.Website, update.Location, update.LogoURL,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCompanyNotFound
	}
	if isUniqueViolation(err) {
		return nil, domain.ErrDuplicateCompany
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return company, nil
}

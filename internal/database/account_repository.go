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

// accountColumns must match the Scan order in scanAccount.
const accountColumns = `id, full_name, email, phone_number, password_hash, role,
	bio, skills, resume_url, resume_name, photo_url, created_at, updated_at`

// AccountRepo implements domain.AccountRepository backed by PostgreSQL.
type AccountRepo struct {
	pool *pgxpool.Pool
}

func NewAccountRepo(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var acct domain.Account
	err := row.Scan(
		&acct.ID, &acct.FullName, &acct.Email, &acct.PhoneNumber,
		&acct.PasswordHash, &acct.Role,
		&acct.Profile.Bio, &acct.Profile.Skills,
		&acct.Profile.ResumeURL, &acct.Profile.ResumeName, &acct.Profile.PhotoURL,
		&acct.CreatedAt, &acct.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &acct, nil
}

func (r *AccountRepo) Create(ctx context.Context, acct domain.NewAccount) (*domain.Account, error) {
	created, err := scanAccount(r.pool.QueryRow(ctx, `
		INSERT INTO accounts (full_name, email, phone_number, password_hash, role, photo_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+accountColumns,
		acct.FullName, acct.Email, acct.PhoneNumber, acct.PasswordHash, acct.Role, acct.PhotoURL,
	))
	if isUniqueViolation(err) {
		return nil, domain.ErrDuplicateEmail
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return created, nil
}

func (r *AccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	acct, err := scanAccount(r.pool.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account by ID: %w", err)
	}
	return acct, nil
}

func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	acct, err := scanAccount(r.pool.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email = $1`, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}
	return acct, nil
}

// UpdateProfile applies a partial update: empty fields keep their current
// value. Skills pass as NULL when unset so COALESCE keeps the stored array.
func (r *AccountRepo) UpdateProfile(ctx context.Context, id uuid.UUID, update domain.ProfileUpdate) (*domain.Account, error) {
	acct, err := scanAccount(r.pool.QueryRow(ctx, `
		UPDATE accounts SET
			full_name    = COALESCE(NULLIF($2, ''), full_name),
			email        = COALESCE(NULLIF($3, ''), email),
			phone_number = COALESCE(NULLIF($4, ''), phone_number),
			bio          = COALESCE(NULLIF($5, ''), bio),
			skills       = COALESCE($6, skills),
			resume_url   = COALESCE(NULLIF($7, ''), resume_url),
			resume_name  = COALESCE(NULLIF($8, ''), resume_name),
			photo_url    = COALESCE(NULLIF($9, ''), photo_url),
			updated_at   = NOW()
		WHERE id = $1
		RETURNING `+accountColumns,
		id, update.FullName, update.Email, update.PhoneNumber, update.Bio,
		update.Skills, update.ResumeURL, update.ResumeName, update.PhotoURL,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAccountNotFound
	}
	if isUniqueViolation(err) {
		return nil, domain.ErrDuplicateEmail
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return acct, nil
}

package database

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"jobboard/internal/domain"
)

// CreateTestAccount is a helper that creates an account with default values
// for testing. The email must be unique within the test.
func CreateTestAccount(t *testing.T, pool *pgxpool.Pool, email string, role domain.Role) *domain.Account {
	t.Helper()

	repo := NewAccountRepo(pool)
	acct, err := repo.Create(context.Background(), domain.NewAccount{
		FullName:     "Test " + string(role),
		Email:        email,
		PhoneNumber:  "0123456789",
		PasswordHash: "$2a$04$invalidhashusedonlyintests1234567890123456789012345",
		Role:         role,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, acct.ID)

	return acct
}

// CreateTestCompany creates a company owned by ownerID.
func CreateTestCompany(t *testing.T, pool *pgxpool.Pool, name string, ownerID uuid.UUID) *domain.Company {
	t.Helper()

	repo := NewCompanyRepo(pool)
	company, err := repo.Create(context.Background(), name, ownerID)
	require.NoError(t, err)

	return company
}

// CreateTestJob creates a job at the given company.
func CreateTestJob(t *testing.T, pool *pgxpool.Pool, companyID, createdBy uuid.UUID, title string) *domain.Job {
	t.Helper()

	repo := NewJobRepo(pool)
	job, err := repo.Create(context.Background(), domain.NewJob{
		CompanyID:       companyID,
		CreatedBy:       createdBy,
		Title:           title,
		Description:     "test job",
		Requirements:    []string{"go"},
		Salary:          "100k",
		Location:        "remote",
		JobType:         "full-time",
		ExperienceLevel: "mid",
		Positions:       1,
	})
	require.NoError(t, err)

	return job
}

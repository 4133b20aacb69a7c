package app

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"jobboard/internal/auth"
	"jobboard/internal/domain"
)

func newTestHasher(t *testing.T) *auth.PasswordHasher {
	t.Helper()
	hasher, err := auth.NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)
	return hasher
}

func accountWithRole(id uuid.UUID, role domain.Role) *domain.Account {
	return &domain.Account{ID: id, Role: role}
}

func TestRegister_HashesPassword(t *testing.T) {
	hasher := newTestHasher(t)

	var stored domain.NewAccount
	accounts := &mockAccountRepo{
		create: func(_ context.Context, acct domain.NewAccount) (*domain.Account, error) {
			stored = acct
			return &domain.Account{ID: uuid.New(), Email: acct.Email, Role: acct.Role}, nil
		},
	}
	svc := NewService(accounts, nil, nil, nil, hasher)

	acct, err := svc.Register(context.Background(), domain.RegisterInput{
		FullName: "Alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
		Role:     domain.RoleApplicant,
	})
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
	assert.True(t, hasher.Verify("s3cret-pass", stored.PasswordHash))
	assert.Equal(t, domain.RoleApplicant, acct.Role)
}

func TestRegister_DuplicateEmailPassesThrough(t *testing.T) {
	accounts := &mockAccountRepo{
		create: func(context.Context, domain.NewAccount) (*domain.Account, error) {
			return nil, domain.ErrDuplicateEmail
		},
	}
	svc := NewService(accounts, nil, nil, nil, newTestHasher(t))

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Email:    "alice@example.com",
		Password: "pw",
		Role:     domain.RoleApplicant,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestLogin(t *testing.T) {
	hasher := newTestHasher(t)
	hash, err := hasher.Hash("correct-password")
	require.NoError(t, err)

	known := &domain.Account{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: hash,
		Role:         domain.RoleApplicant,
	}
	accounts := &mockAccountRepo{
		getByEmail: func(_ context.Context, email string) (*domain.Account, error) {
			if email == known.Email {
				return known, nil
			}
			return nil, domain.ErrAccountNotFound
		},
	}
	svc := NewService(accounts, nil, nil, nil, hasher)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		acct, err := svc.Login(ctx, "alice@example.com", "correct-password", domain.RoleApplicant)
		require.NoError(t, err)
		assert.Equal(t, known.ID, acct.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "correct-password", domain.RoleApplicant)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice@example.com", "wrong-password", domain.RoleApplicant)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("role mismatch", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice@example.com", "correct-password", domain.RoleRecruiter)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestApply(t *testing.T) {
	applicantID := uuid.New()
	jobID := uuid.New()

	t.Run("applicant can apply", func(t *testing.T) {
		accounts := &mockAccountRepo{
			getByID: func(context.Context, uuid.UUID) (*domain.Account, error) {
				return accountWithRole(applicantID, domain.RoleApplicant), nil
			},
		}
		applications := &mockApplicationRepo{
			create: func(_ context.Context, gotApplicant, gotJob uuid.UUID) (*domain.Application, error) {
				assert.Equal(t, applicantID, gotApplicant)
				assert.Equal(t, jobID, gotJob)
				return &domain.Application{ID: uuid.New(), JobID: gotJob, ApplicantID: gotApplicant, Status: domain.StatusPending}, nil
			},
		}
		svc := NewService(accounts, nil, nil, applications, newTestHasher(t))

		app, err := svc.Apply(context.Background(), applicantID, jobID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, app.Status)
	})

	t.Run("recruiter cannot apply", func(t *testing.T) {
		accounts := &mockAccountRepo{
			getByID: func(context.Context, uuid.UUID) (*domain.Account, error) {
				return accountWithRole(applicantID, domain.RoleRecruiter), nil
			},
		}
		svc := NewService(accounts, nil, nil, &mockApplicationRepo{}, newTestHasher(t))

		_, err := svc.Apply(context.Background(), applicantID, jobID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("duplicate passes through", func(t *testing.T) {
		accounts := &mockAccountRepo{
			getByID: func(context.Context, uuid.UUID) (*domain.Account, error) {
				return accountWithRole(applicantID, domain.RoleApplicant), nil
			},
		}
		applications := &mockApplicationRepo{
			create: func(context.Context, uuid.UUID, uuid.UUID) (*domain.Application, error) {
				return nil, domain.ErrDuplicateApplication
			},
		}
		svc := NewService(accounts, nil, nil, applications, newTestHasher(t))

		_, err := svc.Apply(context.Background(), applicantID, jobID)
		assert.ErrorIs(t, err, domain.ErrDuplicateApplication)
	})
}

func TestJobApplicants_OwnershipEnforced(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()
	jobID := uuid.New()

	jobs := &mockJobRepo{
		ownerOf: func(context.Context, uuid.UUID) (uuid.UUID, error) {
			return ownerID, nil
		},
	}
	applications := &mockApplicationRepo{
		listByJob: func(context.Context, uuid.UUID) ([]domain.JobApplicant, error) {
			return []domain.JobApplicant{{ApplicantName: "Alice"}}, nil
		},
	}
	svc := NewService(nil, nil, jobs, applications, newTestHasher(t))
	ctx := context.Background()

	got, err := svc.JobApplicants(ctx, ownerID, jobID)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.JobApplicants(ctx, strangerID, jobID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDecideApplication(t *testing.T) {
	ownerID := uuid.New()
	jobID := uuid.New()
	applicationID := uuid.New()

	pendingApp := &domain.Application{ID: applicationID, JobID: jobID, Status: domain.StatusPending}

	newService := func(t *testing.T, applications *mockApplicationRepo) *Service {
		jobs := &mockJobRepo{
			ownerOf: func(context.Context, uuid.UUID) (uuid.UUID, error) {
				return ownerID, nil
			},
		}
		return NewService(nil, nil, jobs, applications, newTestHasher(t))
	}

	t.Run("accepts pending application", func(t *testing.T) {
		applications := &mockApplicationRepo{
			getByID: func(context.Context, uuid.UUID) (*domain.Application, error) {
				return pendingApp, nil
			},
			updateStatus: func(_ context.Context, id uuid.UUID, status domain.Status) (*domain.Application, error) {
				assert.Equal(t, applicationID, id)
				assert.Equal(t, domain.StatusAccepted, status)
				return &domain.Application{ID: id, JobID: jobID, Status: status}, nil
			},
		}
		svc := newService(t, applications)

		updated, err := svc.DecideApplication(context.Background(), ownerID, applicationID, domain.StatusAccepted)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAccepted, updated.Status)
	})

	t.Run("rejects non-terminal target", func(t *testing.T) {
		svc := newService(t, &mockApplicationRepo{})

		_, err := svc.DecideApplication(context.Background(), ownerID, applicationID, domain.StatusPending)
		assert.Error(t, err)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		applications := &mockApplicationRepo{
			getByID: func(context.Context, uuid.UUID) (*domain.Application, error) {
				return pendingApp, nil
			},
		}
		svc := newService(t, applications)

		_, err := svc.DecideApplication(context.Background(), uuid.New(), applicationID, domain.StatusRejected)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("already decided passes through", func(t *testing.T) {
		applications := &mockApplicationRepo{
			getByID: func(context.Context, uuid.UUID) (*domain.Application, error) {
				return &domain.Application{ID: applicationID, JobID: jobID, Status: domain.StatusAccepted}, nil
			},
			updateStatus: func(context.Context, uuid.UUID, domain.Status) (*domain.Application, error) {
				return nil, domain.ErrInvalidTransition
			},
		}
		svc := newService(t, applications)

		_, err := svc.DecideApplication(context.Background(), ownerID, applicationID, domain.StatusRejected)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
}

func TestPostJob_RequiresRecruiterAndOwnership(t *testing.T) {
	recruiterID := uuid.New()
	companyID := uuid.New()

	accounts := &mockAccountRepo{
		getByID: func(context.Context, uuid.UUID) (*domain.Account, error) {
			return accountWithRole(recruiterID, domain.RoleRecruiter), nil
		},
	}
	companies := &mockCompanyRepo{
		getByID: func(context.Context, uuid.UUID) (*domain.Company, error) {
			return &domain.Company{ID: companyID, OwnerID: recruiterID}, nil
		},
	}
	jobs := &mockJobRepo{
		create: func(_ context.Context, job domain.NewJob) (*domain.Job, error) {
			assert.Equal(t, recruiterID, job.CreatedBy)
			return &domain.Job{ID: uuid.New(), CompanyID: job.CompanyID, CreatedBy: job.CreatedBy, Title: job.Title}, nil
		},
	}
	svc := NewService(accounts, companies, jobs, nil, newTestHasher(t))

	job, err := svc.PostJob(context.Background(), recruiterID, domain.NewJob{CompanyID: companyID, Title: "Go Engineer"})
	require.NoError(t, err)
	assert.Equal(t, recruiterID, job.CreatedBy)

	_, err = svc.PostJob(context.Background(), uuid.New(), domain.NewJob{CompanyID: companyID})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateCompany_OwnershipEnforced(t *testing.T) {
	ownerID := uuid.New()
	companyID := uuid.New()

	companies := &mockCompanyRepo{
		getByID: func(context.Context, uuid.UUID) (*domain.Company, error) {
			return &domain.Company{ID: companyID, OwnerID: ownerID}, nil
		},
		update: func(_ context.Context, id uuid.UUID, update domain.CompanyUpdate) (*domain.Company, error) {
			return &domain.Company{ID: id, OwnerID: ownerID, Name: update.Name}, nil
		},
	}
	svc := NewService(nil, companies, nil, nil, newTestHasher(t))
	ctx := context.Background()

	updated, err := svc.UpdateCompany(ctx, ownerID, companyID, domain.CompanyUpdate{Name: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "Acme", updated.Name)

	_, err = svc.UpdateCompany(ctx, uuid.New(), companyID, domain.CompanyUpdate{Name: "Evil"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

package app

import (
	"context"

	"github.com/google/uuid"

	"jobboard/internal/domain"
)

// Function-field fakes let each test pin down exactly the repository behavior
// it needs. Unset fields panic, which surfaces unexpected calls immediately.

type mockAccountRepo struct {
	create        func(ctx context.Context, acct domain.NewAccount) (*domain.Account, error)
	getByID       func(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	getByEmail    func(ctx context.Context, email string) (*domain.Account, error)
	updateProfile func(ctx context.Context, id uuid.UUID, update domain.ProfileUpdate) (*domain.Account, error)
}

func (m *mockAccountRepo) Create(ctx context.Context, acct domain.NewAccount) (*domain.Account, error) {
	return m.create(ctx, acct)
}

func (m *mockAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return m.getByID(ctx, id)
}

func (m *mockAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return m.getByEmail(ctx, email)
}

func (m *mockAccountRepo) UpdateProfile(ctx context.Context, id uuid.UUID, update domain.ProfileUpdate) (*domain.Account, error) {
	return m.updateProfile(ctx, id, update)
}

type mockCompanyRepo struct {
	create      func(ctx context.Context, name string, ownerID uuid.UUID) (*domain.Company, error)
	getByID     func(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	listByOwner func(ctx context.Context, ownerID uuid.UUID) ([]domain.Company, error)
	update      func(ctx context.Context, id uuid.UUID, update domain.CompanyUpdate) (*domain.Company, error)
}

func (m *mockCompanyRepo) Create(ctx context.Context, name string, ownerID uuid.UUID) (*domain.Company, error) {
	return m.create(ctx, name, ownerID)
}

func (m *mockCompanyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	return m.getByID(ctx, id)
}

func (m *mockCompanyRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Company, error) {
	return m.listByOwner(ctx, ownerID)
}

func (m *mockCompanyRepo) Update(ctx context.Context, id uuid.UUID, update domain.CompanyUpdate) (*domain.Company, error) {
	return m.update(ctx, id, update)
}

type mockJobRepo struct {
	create        func(ctx context.Context, job domain.NewJob) (*domain.Job, error)
	getByID       func(ctx context.Context, id uuid.UUID) (*domain.JobWithCompany, error)
	list          func(ctx context.Context, keyword string) ([]domain.JobWithCompany, error)
	listByCreator func(ctx context.Context, creatorID uuid.UUID) ([]domain.JobWithCompany, error)
	ownerOf       func(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error)
}

func (m *mockJobRepo) Create(ctx context.Context, job domain.NewJob) (*domain.Job, error) {
	return m.create(ctx, job)
}

func (m *mockJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobWithCompany, error) {
	return m.getByID(ctx, id)
}

func (m *mockJobRepo) List(ctx context.Context, keyword string) ([]domain.JobWithCompany, error) {
	return m.list(ctx, keyword)
}

func (m *mockJobRepo) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.JobWithCompany, error) {
	return m.listByCreator(ctx, creatorID)
}

func (m *mockJobRepo) OwnerOf(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	return m.ownerOf(ctx, jobID)
}

type mockApplicationRepo struct {
	create          func(ctx context.Context, applicantID, jobID uuid.UUID) (*domain.Application, error)
	getByID         func(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	listByApplicant func(ctx context.Context, applicantID uuid.UUID) ([]domain.AppliedJob, error)
	listByJob       func(ctx context.Context, jobID uuid.UUID) ([]domain.JobApplicant, error)
	updateStatus    func(ctx context.Context, id uuid.UUID, status domain.Status) (*domain.Application, error)
}

func (m *mockApplicationRepo) Create(ctx context.Context, applicantID, jobID uuid.UUID) (*domain.Application, error) {
	return m.create(ctx, applicantID, jobID)
}

func (m *mockApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	return m.getByID(ctx, id)
}

func (m *mockApplicationRepo) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]domain.AppliedJob, error) {
	return m.listByApplicant(ctx, applicantID)
}

func (m *mockApplicationRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]domain.JobApplicant, error) {
	return m.listByJob(ctx, jobID)
}

func (m *mockApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) (*domain.Application, error) {
	return m.updateStatus(ctx, id, status)
}

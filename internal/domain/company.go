package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID          uuid.UUID
	Name        string
	Description string
	Website     string
	Location    string
	LogoURL     string
	OwnerID     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CompanyUpdate carries a partial company change. Empty fields are left
// unchanged.
type CompanyUpdate struct {
	Name        string
	Description string
	Website     string
	Location    string
	LogoURL     string
}

type CompanyRepository interface {
	Create(ctx context.Context, name string, ownerID uuid.UUID) (*Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Company, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Company, error)
	Update(ctx context.Context, id uuid.UUID, update CompanyUpdate) (*Company, error)
}

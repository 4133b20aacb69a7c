package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role is the account's fixed category. It is assigned at registration and
// never changes afterwards (no role-change operation exists).
type Role string

const (
	RoleApplicant Role = "applicant"
	RoleRecruiter Role = "recruiter"
)

// ParseRole converts a raw string to a Role, returning an error for unknown
// values. Roles are exact strings; there is no hierarchy or wildcard.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleApplicant, RoleRecruiter:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

type Account struct {
	ID          uuid.UUID
	FullName    string
	Email       string
	PhoneNumber string
	// PasswordHash is the bcrypt hash of the password. The plaintext is never
	// stored or logged.
	PasswordHash string
	Role         Role
	Profile      Profile
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile holds the free-form fields owned exclusively by the account holder.
// Resume and photo values are opaque URLs produced by an external upload
// service; the core neither validates nor fetches them.
type Profile struct {
	Bio        string
	Skills     []string
	ResumeURL  string
	ResumeName string
	PhotoURL   string
}

// ProfileUpdate carries a partial profile change. Empty string fields are left
// unchanged; a nil Skills slice leaves skills unchanged.
type ProfileUpdate struct {
	FullName    string
	Email       string
	PhoneNumber string
	Bio         string
	Skills      []string
	ResumeURL   string
	ResumeName  string
	PhotoURL    string
}

type NewAccount struct {
	FullName     string
	Email        string
	PhoneNumber  string
	PasswordHash string
	Role         Role
	PhotoURL     string
}

type AccountRepository interface {
	Create(ctx context.Context, acct NewAccount) (*Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) (*Account, error)
}

package auth

import (
	"github.com/google/uuid"

	"jobboard/internal/domain"
)

// RequireRole allows the action only when the subject's role claim exactly
// matches the required role. There is no hierarchy and no wildcard; denial is
// terminal.
func RequireRole(subjectRole, requiredRole domain.Role) error {
	if subjectRole != requiredRole {
		return domain.ErrForbidden
	}
	return nil
}

// RequireOwner allows the action only when the subject is the resource's
// owner.
func RequireOwner(subjectID, resourceOwnerID uuid.UUID) error {
	if subjectID != resourceOwnerID {
		return domain.ErrForbidden
	}
	return nil
}

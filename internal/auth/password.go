package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes and verifies account passwords with bcrypt. Cost is
// tunable so tests can run at bcrypt.MinCost while production stays slow
// enough to resist offline brute force.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) (*PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &PasswordHasher{cost: cost}, nil
}

// Hash returns the salted bcrypt hash of plaintext. The salt is random per
// call, so hashing the same plaintext twice yields different credentials that
// both verify.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored credential. The
// comparison is constant-time within bcrypt; malformed credentials verify as
// false rather than erroring.
func (h *PasswordHasher) Verify(plaintext, credential string) bool {
	return bcrypt.CompareHashAndPassword([]byte(credential), []byte(plaintext)) == nil
}

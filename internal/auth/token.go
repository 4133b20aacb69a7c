package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"jobboard/internal/domain"
)

// SessionTTL is the fixed lifetime of a session token.
const SessionTTL = 24 * time.Hour

// Sessions issues and validates stateless signed session tokens. A token
// carries only {subject, issuedAt, expiresAt}; validation needs no database
// lookup and is deterministic given the same secret.
type Sessions struct {
	secret []byte
	clock  clockwork.Clock
}

// NewSessions creates the session issuer/validator. An empty secret is a
// configuration fault and refuses construction; callers treat this as fatal
// at startup.
func NewSessions(secret string, clock clockwork.Clock) (*Sessions, error) {
	if secret == "" {
		return nil, fmt.Errorf("session signing secret is not configured")
	}
	return &Sessions{secret: []byte(secret), clock: clock}, nil
}

// Issue produces a signed token for the subject, expiring SessionTTL from now.
func (s *Sessions) Issue(subjectID uuid.UUID) (string, error) {
	now := s.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subjectID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}

// Validate recovers the subject identity from a token, or fails with one of
// the domain token sentinels (ErrTokenExpired, ErrTokenMalformed,
// ErrTokenSignatureInvalid).
func (s *Sessions) Validate(token string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return uuid.Nil, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return uuid.Nil, domain.ErrTokenSignatureInvalid
		default:
			return uuid.Nil, domain.ErrTokenMalformed
		}
	}

	subjectID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, domain.ErrTokenMalformed
	}
	return subjectID, nil
}

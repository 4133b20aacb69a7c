package domain

import "errors"

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrCompanyNotFound     = errors.New("company not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrApplicationNotFound = errors.New("application not found")

	ErrDuplicateEmail       = errors.New("account already exists with this email")
	ErrDuplicateCompany     = errors.New("company already registered with this name")
	ErrDuplicateApplication = errors.New("already applied for this job")

	// ErrInvalidTransition is returned when an application status update
	// targets an application that is no longer pending.
	ErrInvalidTransition = errors.New("application status is already final")

	ErrForbidden = errors.New("forbidden")

	// ErrInvalidCredentials deliberately covers both unknown email and wrong
	// password so login failures do not reveal which part was wrong.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	ErrTokenExpired          = errors.New("session token expired")
	ErrTokenMalformed        = errors.New("session token malformed")
	ErrTokenSignatureInvalid = errors.New("session token signature invalid")
)

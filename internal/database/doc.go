// Package database provides PostgreSQL connectivity and repositories.
//
// Uses pgx for connection pooling; the schema is created by idempotent
// startup migrations. Repositories implement the domain interfaces:
// AccountRepository, CompanyRepository, JobRepository, ApplicationRepository.
// Uniqueness invariants (account email, company name, one application per
// applicant and job) are enforced by database constraints, not by
// check-then-act logic in Go.
package database

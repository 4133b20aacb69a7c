// Package app provides the application service layer.
//
// Orchestrates use cases: registration, login, profile updates, company and
// job management, and the application lifecycle. Sits between HTTP handlers
// and domain repositories. Depends on domain interfaces, not concrete
// implementations. Authorization decisions (role and ownership checks) happen
// here, before any write reaches a repository.
package app

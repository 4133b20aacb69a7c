// Package server implements the HTTP server using Echo framework.
//
// Routes: user (register/login/logout/profile), company, job, application,
// plus health and metrics endpoints. Handlers split by domain:
// handlers_auth.go, handlers_company.go, handlers_job.go,
// handlers_application.go, handlers_health.go. Session tokens travel as an
// HttpOnly cookie; requireAuth validates the token and stashes the subject id
// in the request context.
package server

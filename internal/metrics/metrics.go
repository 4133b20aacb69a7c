// Package metrics defines the Prometheus collectors for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RegistrationsTotal tracks account registrations by role.
	RegistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registrations_total",
			Help: "Total account registrations by role",
		},
		[]string{"role"},
	)

	// LoginsTotal tracks login attempts by outcome.
	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Total login attempts by outcome (success/failure/rate_limited)",
		},
		[]string{"outcome"},
	)

	// ApplicationsCreatedTotal tracks created job applications.
	ApplicationsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "applications_created_total",
			Help: "Total job applications created",
		},
	)

	// ApplicationDecisionsTotal tracks status transitions by target status.
	ApplicationDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "application_decisions_total",
			Help: "Total application status decisions by target status",
		},
		[]string{"status"},
	)
)

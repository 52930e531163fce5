// Package metrics defines and registers all custom Prometheus metrics
// for the platform backend. It is the single source of truth for metric
// names, labels, and help strings. Metrics are registered with the
// default registry at package load and exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tesotunes"

// RegistrationsCompletedTotal counts onboarding wizards that finalized
// into a real artist account.
var RegistrationsCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_completed_total",
		Help:      "Total number of artist registrations finalized.",
	},
)

// RegistrationStepsTotal counts validated step submissions.
// Label:
//   - step: wizard step number ("1", "2", "3")
var RegistrationStepsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registration_steps_total",
		Help:      "Total number of validated registration step submissions, by step.",
	},
	[]string{"step"},
)

// PhoneVerificationsTotal counts phone verification attempts.
// Label:
//   - result: "verified", "already_verified", or "rejected"
var PhoneVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "phone_verifications_total",
		Help:      "Total number of phone verification attempts, by result.",
	},
	[]string{"result"},
)

// LoansRecalculatedTotal counts writes that refreshed a loan's four
// computed fields.
var LoansRecalculatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "loans_recalculated_total",
		Help:      "Total number of loan writes that recomputed derived fields.",
	},
)

// DividendsDistributedTotal counts dividends that reached the
// distributed state.
var DividendsDistributedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dividends_distributed_total",
		Help:      "Total number of dividends distributed.",
	},
)

// TicketsCheckedInTotal counts consumed tickets.
var TicketsCheckedInTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tickets_checked_in_total",
		Help:      "Total number of tickets checked in.",
	},
)

package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	proposalsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kp_proposals_generated_total",
			Help: "Total number of successfully generated proposal archives.",
		},
	)

	proposalFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kp_proposal_failures_total",
			Help: "Number of failed proposal requests (by failure reason).",
		},
		[]string{"reason"},
	)
)

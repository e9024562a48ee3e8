// Package metric provides Prometheus metrics for proofgate.
package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// namespace prefixes every proofgate metric.
const namespace = "proofgate"

// Registry holds all application metrics.
type Registry struct {
	registry *prometheus.Registry

	// Solver metrics
	SolveAttempts prometheus.Counter
	SolveAccepted prometheus.Counter
	SolveRejected prometheus.Counter
	FetchErrors   prometheus.Counter
	SubmitErrors  prometheus.Counter

	// Verifier metrics
	ChallengesIssued  prometheus.Counter
	SolutionsAccepted prometheus.Counter
	SolutionsRejected prometheus.Counter
}

// NewRegistry creates a metrics registry with all counters registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,

		SolveAttempts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "solver",
			Name:      "attempts_total",
			Help:      "Total solve runs started",
		}),
		SolveAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "solver",
			Name:      "accepted_total",
			Help:      "Solve runs whose secret was accepted",
		}),
		SolveRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "solver",
			Name:      "rejected_total",
			Help:      "Solve runs whose secret was rejected",
		}),
		FetchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "solver",
			Name:      "fetch_errors_total",
			Help:      "Challenge fetch failures",
		}),
		SubmitErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "solver",
			Name:      "submit_errors_total",
			Help:      "Solution submission transport failures",
		}),

		ChallengesIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "verifier",
			Name:      "challenges_issued_total",
			Help:      "Challenges handed out by the practice verifier",
		}),
		SolutionsAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "verifier",
			Name:      "solutions_accepted_total",
			Help:      "Solutions the practice verifier accepted",
		}),
		SolutionsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "verifier",
			Name:      "solutions_rejected_total",
			Help:      "Solutions the practice verifier rejected",
		}),
	}

	reg.MustRegister(
		r.SolveAttempts,
		r.SolveAccepted,
		r.SolveRejected,
		r.FetchErrors,
		r.SubmitErrors,
		r.ChallengesIssued,
		r.SolutionsAccepted,
		r.SolutionsRejected,
	)

	// Process and Go runtime collectors, as exposed by any serious
	// Prometheus endpoint.
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// Prometheus returns the underlying registry for components that
// register their own metrics (e.g. the Badger journal).
func (r *Registry) Prometheus() *prometheus.Registry {
	return r.registry
}

// Handler returns the HTTP handler for the /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

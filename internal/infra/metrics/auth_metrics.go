// Package metrics exposes Prometheus instruments for the authentication flows.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "identity"

// Outcome labels shared by the counters below.
const (
	OutcomeSuccess    = "success"
	OutcomeFailure    = "failure"
	OutcomeIncomplete = "incomplete"
	OutcomeCreated    = "created"
	OutcomeLinked     = "linked"
	OutcomeExisting   = "existing"
)

// AuthMetrics groups the counters and histograms recorded by the usecases.
type AuthMetrics struct {
	registrations     *prometheus.CounterVec
	logins            *prometheus.CounterVec
	federationLogins  *prometheus.CounterVec
	profileCompletion *prometheus.CounterVec
	tokenFailures     *prometheus.CounterVec
	logouts           prometheus.Counter
	hashDuration      prometheus.Histogram
}

// New registers the instruments on the default Prometheus registerer served at /metrics.
func New() *AuthMetrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the instruments on reg. Tests pass a fresh registry.
func NewWithRegisterer(reg prometheus.Registerer) *AuthMetrics {
	factory := promauto.With(reg)

	return &AuthMetrics{
		registrations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Local registrations by outcome",
		}, []string{"outcome"}),
		logins: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Local password logins by outcome",
		}, []string{"outcome"}),
		federationLogins: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "federation_logins_total",
			Help:      "Federated logins by provider and outcome",
		}, []string{"provider", "outcome"}),
		profileCompletion: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profile_completions_total",
			Help:      "Profile completion submissions by outcome",
		}, []string{"outcome"}),
		tokenFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_verification_failures_total",
			Help:      "Session token verification failures by reason",
		}, []string{"reason"}),
		logouts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logouts_total",
			Help:      "Logouts",
		}),
		hashDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "password_hash_duration_seconds",
			Help:      "Time spent computing password hashes, including queueing",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5},
		}),
	}
}

func (m *AuthMetrics) Registration(outcome string) {
	if m == nil {
		return
	}
	m.registrations.WithLabelValues(outcome).Inc()
}

func (m *AuthMetrics) Login(outcome string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(outcome).Inc()
}

func (m *AuthMetrics) FederationLogin(provider, outcome string) {
	if m == nil {
		return
	}
	m.federationLogins.WithLabelValues(provider, outcome).Inc()
}

func (m *AuthMetrics) ProfileCompletion(outcome string) {
	if m == nil {
		return
	}
	m.profileCompletion.WithLabelValues(outcome).Inc()
}

func (m *AuthMetrics) TokenFailure(reason string) {
	if m == nil {
		return
	}
	m.tokenFailures.WithLabelValues(reason).Inc()
}

func (m *AuthMetrics) Logout() {
	if m == nil {
		return
	}
	m.logouts.Inc()
}

// ObserveHash records the duration of a password hash started at start.
func (m *AuthMetrics) ObserveHash(start time.Time) {
	if m == nil {
		return
	}
	m.hashDuration.Observe(time.Since(start).Seconds())
}

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry())

	m.Registration(OutcomeSuccess)
	m.Registration(OutcomeSuccess)
	m.Login(OutcomeFailure)
	m.FederationLogin("google", OutcomeCreated)
	m.ProfileCompletion(OutcomeSuccess)
	m.TokenFailure("expired")
	m.Logout()

	assert.InDelta(t, 2, testutil.ToFloat64(m.registrations.WithLabelValues(OutcomeSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.logins.WithLabelValues(OutcomeFailure)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.federationLogins.WithLabelValues("google", OutcomeCreated)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.profileCompletion.WithLabelValues(OutcomeSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.tokenFailures.WithLabelValues("expired")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.logouts), 0)
}

func TestAuthMetrics_ObserveHash(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer(reg)

	m.ObserveHash(time.Now().Add(-50 * time.Millisecond))

	count, err := testutil.GatherAndCount(reg, "identity_password_hash_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAuthMetrics_NilIsNoop(t *testing.T) {
	var m *AuthMetrics

	assert.NotPanics(t, func() {
		m.Registration(OutcomeSuccess)
		m.Logout()
		m.ObserveHash(time.Now())
	})
}

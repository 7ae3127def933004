package metrics_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/sign-oracle/internal/metrics"
)

func TestObserveSign(t *testing.T) {
	m, err := metrics.New()
	require.NoError(t, err)

	m.ObserveSign(0.01, nil)
	m.ObserveSign(0.02, nil)
	m.ObserveSign(0.03, errors.New("boom"))

	families, err := m.Registry.Gather()
	require.NoError(t, err)

	var requests, duration bool
	for _, f := range families {
		switch f.GetName() {
		case "sign_oracle_sign_requests_total":
			requests = true
			for _, metric := range f.GetMetric() {
				switch metric.GetLabel()[0].GetValue() {
				case metrics.ResultSuccess:
					assert.InDelta(t, 2, metric.GetCounter().GetValue(), 0)
				case metrics.ResultFailure:
					assert.InDelta(t, 1, metric.GetCounter().GetValue(), 0)
				}
			}
		case "sign_oracle_sign_duration_seconds":
			duration = true
			assert.Equal(t, uint64(3), f.GetMetric()[0].GetHistogram().GetSampleCount())
		}
	}

	assert.True(t, requests)
	assert.True(t, duration)
}

func TestNewIndependentRegistries(t *testing.T) {
	first, err := metrics.New()
	require.NoError(t, err)
	second, err := metrics.New()
	require.NoError(t, err)

	first.ObserveSign(0.01, nil)

	families, err := second.Registry.Gather()
	require.NoError(t, err)

	for _, f := range families {
		if f.GetName() != "sign_oracle_sign_requests_total" {
			continue
		}

		for _, metric := range f.GetMetric() {
			assert.Zero(t, metric.GetCounter().GetValue())
		}
	}
}

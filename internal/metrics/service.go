package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	namespace = "sign_oracle"

	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Service owns a dedicated registry so multiple servers (e.g. in parallel tests)
// never collide on the global default registerer.
type Service struct {
	Registry *prometheus.Registry

	signRequests *prometheus.CounterVec
	signDuration prometheus.Histogram
}

func New() (*Service, error) {
	registry := prometheus.NewRegistry()

	s := &Service{
		Registry: registry,
		signRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sign_requests_total",
			Help:      "Number of personal_sign requests by result.",
		}, []string{"result"}),
		signDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sign_duration_seconds",
			Help:      "Time spent deriving the account key and signing.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
	}

	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		s.signRequests,
		s.signDuration,
	} {
		if err := registry.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register metrics collector")
		}
	}

	// pre-populate both label values so they are exported before the first request
	s.signRequests.WithLabelValues(ResultSuccess)
	s.signRequests.WithLabelValues(ResultFailure)

	return s, nil
}

// ObserveSign records the outcome of a single sign request.
func (s *Service) ObserveSign(seconds float64, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}

	s.signRequests.WithLabelValues(result).Inc()
	s.signDuration.Observe(seconds)
}

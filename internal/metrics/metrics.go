package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "guestbook"

// Operation labels.
const (
	OperationFetch  = "fetch"
	OperationSubmit = "submit"
)

type Metrics struct {
	registry       *prometheus.Registry
	requests       *prometheus.CounterVec
	staleResponses *prometheus.CounterVec
	entries        prometheus.Gauge
}

func New() (metrics *Metrics, err error) {
	metrics = &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_requests_total",
			Help:      "Number of backend requests by operation and outcome",
		}, []string{"operation", "outcome"}),
		staleResponses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_responses_total",
			Help:      "Number of backend responses discarded because a newer write was applied",
		}, []string{"operation"}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entries",
			Help:      "Number of entries currently displayed",
		}),
	}

	collectors := []prometheus.Collector{
		metrics.requests,
		metrics.staleResponses,
		metrics.entries,
	}
	for _, collector := range collectors {
		err = metrics.registry.Register(collector)
		if err != nil {
			return nil, fmt.Errorf("registering collector: %w", err)
		}
	}

	return metrics, nil
}

func (m *Metrics) RequestDone(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.requests.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) StaleResponse(operation string) {
	m.staleResponses.WithLabelValues(operation).Inc()
}

func (m *Metrics) SetEntries(count int) {
	m.entries.Set(float64(count))
}

func (m *Metrics) HTTPHandler() http.Handler {
	return promhttp.InstrumentMetricHandler(m.registry,
		promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

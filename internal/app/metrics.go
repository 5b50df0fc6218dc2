package app

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/cctv-quotations/internal/domain"
)

// Metrics records quotation operation outcomes in Prometheus.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetrics registers the quotation collectors with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quotations",
			Name:      "operations_total",
			Help:      "Quotation operations by name and result.",
		}, []string{"operation", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "quotations",
			Name:      "operation_duration_seconds",
			Help:      "Latency of quotation operations including the store round trip.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	for _, c := range []prometheus.Collector{m.operations, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observe(op string, start time.Time, err error) {
	if m == nil {
		return
	}

	m.operations.WithLabelValues(op, resultLabel(err)).Inc()
	m.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case domain.IsValidation(err):
		return "invalid"
	case domain.IsInvalidID(err):
		return "invalid_id"
	case domain.IsNotFound(err):
		return "not_found"
	case domain.IsUnavailable(err):
		return "unavailable"
	default:
		return "error"
	}
}

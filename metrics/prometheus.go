package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all prometheus metrics. Every method is safe on a nil receiver.
type Metrics struct {
	registry *prometheus.Registry

	BookingsCreated    prometheus.Counter
	BookingsCancelled  prometheus.Counter
	BookingConflicts   *prometheus.CounterVec
	AvailabilityWrites *prometheus.CounterVec
	LedgerRepairs      *prometheus.CounterVec
	PaymentsRecorded   *prometheus.CounterVec
	HTTPRequests       *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
}

// NewMetrics creates new prometheus metrics on a private registry.
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		BookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "The total number of bookings created",
		}),
		BookingsCancelled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_cancelled_total",
			Help:      "The total number of bookings cancelled",
		}),
		BookingConflicts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_conflicts_total",
			Help:      "Requests rejected because of overlapping bookings or blocked days",
		}, []string{"operation"}),
		AvailabilityWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "availability_days_written_total",
			Help:      "Ledger days written, by resulting status",
		}, []string{"status"}),
		LedgerRepairs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_repairs_total",
			Help:      "Ledger days corrected by reconciliation",
		}, []string{"action"}),
		PaymentsRecorded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_recorded_total",
			Help:      "Transactions recorded, by type",
		}, []string{"type"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served",
		}, []string{"method", "route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time taken to serve HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// Handler exposes this instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) BookingCreated() {
	if m == nil {
		return
	}
	m.BookingsCreated.Inc()
}

func (m *Metrics) BookingCancelled() {
	if m == nil {
		return
	}
	m.BookingsCancelled.Inc()
}

func (m *Metrics) Conflict(operation string) {
	if m == nil {
		return
	}
	m.BookingConflicts.WithLabelValues(operation).Inc()
}

func (m *Metrics) DaysWritten(status string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.AvailabilityWrites.WithLabelValues(status).Add(float64(n))
}

func (m *Metrics) Repaired(action string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.LedgerRepairs.WithLabelValues(action).Add(float64(n))
}

func (m *Metrics) PaymentRecorded(txType string) {
	if m == nil {
		return
	}
	m.PaymentsRecorded.WithLabelValues(txType).Inc()
}

func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(seconds)
}

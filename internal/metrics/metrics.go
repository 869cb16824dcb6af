// Package metrics exposes Prometheus collectors for settlement calls,
// payouts and keeper runs.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rentescrow-backend/internal/domain"
)

const namespace = "rent_escrow"

type Metrics struct {
	registry *prometheus.Registry

	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	payouts    *prometheus.CounterVec
	payoutSum  *prometheus.CounterVec
	keeperRuns *prometheus.CounterVec
	settled    *prometheus.CounterVec
}

// New builds a Metrics backed by its own registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "settlement",
				Name:      "operations_total",
				Help:      "Settlement calls by operation and outcome reason.",
			},
			[]string{"operation", "reason"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "settlement",
				Name:      "operation_duration_seconds",
				Help:      "Duration of settlement calls.",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
			},
			[]string{"operation"},
		),
		payouts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "ledger",
				Name:      "payouts_total",
				Help:      "Payouts out of escrow by kind.",
			},
			[]string{"kind"},
		),
		payoutSum: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "ledger",
				Name:      "payout_amount_total",
				Help:      "Base units paid out of escrow by kind.",
			},
			[]string{"kind"},
		),
		keeperRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "keeper",
				Name:      "runs_total",
				Help:      "Keeper job runs.",
			},
			[]string{"job", "success"},
		),
		settled: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "keeper",
				Name:      "items_settled_total",
				Help:      "Items settled by keeper jobs.",
			},
			[]string{"job"},
		),
	}
	m.registry.MustRegister(
		m.operations,
		m.duration,
		m.payouts,
		m.payoutSum,
		m.keeperRuns,
		m.settled,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
	return m
}

// Handler returns an HTTP handler exposing the registered collectors.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveOperation records one settlement call. Successful calls carry the
// reason "OK".
func (m *Metrics) ObserveOperation(op string, err error, elapsed time.Duration) {
	reason := "OK"
	if err != nil {
		reason = domain.ErrorCode(err)
	}
	m.operations.WithLabelValues(op, reason).Inc()
	m.duration.WithLabelValues(op).Observe(elapsed.Seconds())
}

func (m *Metrics) ObservePayout(kind domain.TransferType, amount int64) {
	m.payouts.WithLabelValues(string(kind)).Inc()
	m.payoutSum.WithLabelValues(string(kind)).Add(float64(amount))
}

// ObserveKeeperRun records a keeper job and how many items it settled.
func (m *Metrics) ObserveKeeperRun(job string, settled int, err error) {
	m.keeperRuns.WithLabelValues(job, strconv.FormatBool(err == nil)).Inc()
	m.settled.WithLabelValues(job).Add(float64(settled))
}

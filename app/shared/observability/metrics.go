package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ArchiveMetrics records archive service and event activity.
type ArchiveMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, duration time.Duration)
	RecordRoundArchived(ctx context.Context)
	RecordRoundDeleted(ctx context.Context)
	RecordEventHandled(ctx context.Context, topic string)
}

const metricsNamespace = "scorecard"

type prometheusArchiveMetrics struct {
	attempts  *prometheus.CounterVec
	successes *prometheus.CounterVec
	failures  *prometheus.CounterVec
	durations *prometheus.HistogramVec
	archived  prometheus.Counter
	deleted   prometheus.Counter
	events    *prometheus.CounterVec
}

// NewArchiveMetrics registers the archive collectors on reg.
func NewArchiveMetrics(reg prometheus.Registerer) (ArchiveMetrics, error) {
	m := &prometheusArchiveMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "archive",
			Name:      "operation_attempts_total",
			Help:      "Archive operations started.",
		}, []string{"operation"}),
		successes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "archive",
			Name:      "operation_successes_total",
			Help:      "Archive operations that completed without error.",
		}, []string{"operation"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "archive",
			Name:      "operation_failures_total",
			Help:      "Archive operations that returned an error or panicked.",
		}, []string{"operation"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "archive",
			Name:      "operation_duration_seconds",
			Help:      "Archive operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		archived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "archive",
			Name:      "rounds_archived_total",
			Help:      "Rounds written to the archive.",
		}),
		deleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "archive",
			Name:      "rounds_deleted_total",
			Help:      "Rounds removed from the archive.",
		}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "events",
			Name:      "handled_total",
			Help:      "Archive events consumed by the audit router.",
		}, []string{"topic"}),
	}

	for _, c := range []prometheus.Collector{m.attempts, m.successes, m.failures, m.durations, m.archived, m.deleted, m.events} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *prometheusArchiveMetrics) RecordOperationAttempt(_ context.Context, operation string) {
	m.attempts.WithLabelValues(operation).Inc()
}

func (m *prometheusArchiveMetrics) RecordOperationSuccess(_ context.Context, operation string) {
	m.successes.WithLabelValues(operation).Inc()
}

func (m *prometheusArchiveMetrics) RecordOperationFailure(_ context.Context, operation string) {
	m.failures.WithLabelValues(operation).Inc()
}

func (m *prometheusArchiveMetrics) RecordOperationDuration(_ context.Context, operation string, duration time.Duration) {
	m.durations.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *prometheusArchiveMetrics) RecordRoundArchived(context.Context) { m.archived.Inc() }

func (m *prometheusArchiveMetrics) RecordRoundDeleted(context.Context) { m.deleted.Inc() }

func (m *prometheusArchiveMetrics) RecordEventHandled(_ context.Context, topic string) {
	m.events.WithLabelValues(topic).Inc()
}

// NoOpMetrics discards everything.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}
func (NoOpMetrics) RecordRoundArchived(context.Context)                            {}
func (NoOpMetrics) RecordRoundDeleted(context.Context)                             {}
func (NoOpMetrics) RecordEventHandled(context.Context, string)                     {}

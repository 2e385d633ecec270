package archiverouter

import (
	"context"
	"log/slog"
	"os"

	archiveevents "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/events"
	archivehandlers "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/infrastructure/handlers"
	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// TestEnvironmentFlag is the flag to check if we're in a test environment
	TestEnvironmentFlag  = "APP_ENV"
	TestEnvironmentValue = "test"
)

// ArchiveRouter routes archive events to the audit handlers.
type ArchiveRouter struct {
	logger         *slog.Logger
	Router         *message.Router
	subscriber     message.Subscriber
	metricsBuilder *metrics.PrometheusMetricsBuilder
	metricsEnabled bool
}

// NewArchiveRouter creates a new ArchiveRouter. Router metrics are only
// registered when a registry is given and APP_ENV is not "test".
func NewArchiveRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber message.Subscriber,
	registry *prometheus.Registry,
) *ArchiveRouter {
	inTestEnv := os.Getenv(TestEnvironmentFlag) == TestEnvironmentValue

	var metricsBuilder *metrics.PrometheusMetricsBuilder
	if registry != nil && !inTestEnv {
		b := metrics.NewPrometheusMetricsBuilder(registry, "scorecard", "router")
		metricsBuilder = &b
	}

	return &ArchiveRouter{
		logger:         logger,
		Router:         router,
		subscriber:     subscriber,
		metricsBuilder: metricsBuilder,
		metricsEnabled: metricsBuilder != nil,
	}
}

// Configure adds middleware and registers the audit handlers.
func (r *ArchiveRouter) Configure(_ context.Context, handlers archivehandlers.Handlers) error {
	if r.metricsEnabled && r.metricsBuilder != nil {
		r.logger.Info("Adding Prometheus router metrics middleware for Archive")
		r.metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	}

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
	)

	r.Router.AddNoPublisherHandler(
		"archive.audit."+archiveevents.RoundArchivedV1,
		archiveevents.RoundArchivedV1,
		r.subscriber,
		handlers.HandleRoundArchived,
	)
	r.Router.AddNoPublisherHandler(
		"archive.audit."+archiveevents.RoundDeletedV1,
		archiveevents.RoundDeletedV1,
		r.subscriber,
		handlers.HandleRoundDeleted,
	)
	return nil
}

// Close stops the router.
func (r *ArchiveRouter) Close() error {
	return r.Router.Close()
}

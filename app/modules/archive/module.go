package archive

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	archiveservice "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/application"
	archivehandlers "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/infrastructure/handlers"
	archivedb "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/infrastructure/repositories"
	archiverouter "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/infrastructure/router"
	roundutil "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/utils"
	"github.com/Black-And-White-Club/frolf-scorecard/app/shared/observability"
	"github.com/Black-And-White-Club/frolf-scorecard/config"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

// Module represents the archive module.
type Module struct {
	ArchiveService archiveservice.Service
	ArchiveRouter  *archiverouter.ArchiveRouter
	logger         *slog.Logger
	cancelFunc     context.CancelFunc
}

// NewArchiveModule wires the archive repository, service and audit router.
func NewArchiveModule(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	tracer trace.Tracer,
	metrics observability.ArchiveMetrics,
	registry *prometheus.Registry,
	store archivedb.Store,
	publisher message.Publisher,
	subscriber message.Subscriber,
	router *message.Router,
) (*Module, error) {
	logger.Info("archive.NewArchiveModule called", "driver", cfg.Storage.Driver)

	repo := archivedb.NewArchiveRepository(store, cfg.Storage.ArchiveKey)
	service := archiveservice.NewArchiveService(repo, publisher, logger, metrics, tracer, roundutil.RealClock{})

	archiveRouter := archiverouter.NewArchiveRouter(logger, router, subscriber, registry)
	handlers := archivehandlers.NewArchiveHandlers(logger, tracer, metrics)
	if err := archiveRouter.Configure(ctx, handlers); err != nil {
		return nil, fmt.Errorf("failed to configure archive router: %w", err)
	}

	return &Module{
		ArchiveService: service,
		ArchiveRouter:  archiveRouter,
		logger:         logger,
	}, nil
}

// Run blocks until ctx is done.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.logger.Info("Starting archive module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	m.logger.Info("Archive module goroutine stopped")
}

// Close stops the module.
func (m *Module) Close() error {
	m.logger.Info("Stopping archive module")
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	m.logger.Info("Archive module stopped")
	return nil
}

package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/Black-And-White-Club/frolf-scorecard/app/eventbus"
	"github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive"
	"github.com/Black-And-White-Club/frolf-scorecard/app/modules/round"
	"github.com/Black-And-White-Club/frolf-scorecard/app/shared/observability"
	"github.com/Black-And-White-Club/frolf-scorecard/config"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"
)

// App holds the wired scorecard: storage, event bus and both modules.
type App struct {
	Config     *config.Config
	Logger     *slog.Logger
	Tracer     trace.Tracer
	Registry   *prometheus.Registry
	Storage    *Storage
	EventBus   *eventbus.EventBus
	Router     *message.Router
	HTTPRouter chi.Router
	Modules    Modules
}

// Modules lists the application modules.
type Modules struct {
	ArchiveModule *archive.Module
	RoundModule   *round.Module
}

// NewApp opens storage and the event bus and wires both modules.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	metrics, err := observability.NewArchiveMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	tracer := observability.Tracer()

	storage, err := OpenStorage(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	bus, err := eventbus.NewEventBus(cfg, logger)
	if err != nil {
		storage.Close()
		return nil, fmt.Errorf("failed to create event bus: %w", err)
	}

	router, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(logger))
	if err != nil {
		bus.Close()
		storage.Close()
		return nil, fmt.Errorf("failed to create message router: %w", err)
	}

	httpRouter := chi.NewRouter()
	httpRouter.Use(chimiddleware.RequestID, chimiddleware.RealIP, chimiddleware.Recoverer)
	httpRouter.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	httpRouter.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	archiveModule, err := archive.NewArchiveModule(ctx, cfg, logger, tracer, metrics, registry, storage.Store, bus.Publisher, bus.Subscriber, router)
	if err != nil {
		bus.Close()
		storage.Close()
		return nil, fmt.Errorf("failed to initialize archive module: %w", err)
	}

	roundModule, err := round.NewRoundModule(cfg, logger, archiveModule.ArchiveService, httpRouter)
	if err != nil {
		bus.Close()
		storage.Close()
		return nil, fmt.Errorf("failed to initialize round module: %w", err)
	}

	return &App{
		Config:     cfg,
		Logger:     logger,
		Tracer:     tracer,
		Registry:   registry,
		Storage:    storage,
		EventBus:   bus,
		Router:     router,
		HTTPRouter: httpRouter,
		Modules: Modules{
			ArchiveModule: archiveModule,
			RoundModule:   roundModule,
		},
	}, nil
}

// Run starts the event router and the module goroutines and blocks until ctx is done.
func (app *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	wg.Add(2)
	go app.Modules.ArchiveModule.Run(ctx, &wg)
	go app.Modules.RoundModule.Run(ctx, &wg)

	err := app.Router.Run(ctx)
	wg.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("message router stopped: %w", err)
	}
	return nil
}

// Close shuts the modules, router, event bus and storage down in that order.
func (app *App) Close() error {
	app.Logger.Info("Shutting down application...")
	var errs []error
	if err := app.Modules.RoundModule.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := app.Modules.ArchiveModule.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := app.Router.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := app.EventBus.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := app.Storage.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

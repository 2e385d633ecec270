package round

import (
	"context"
	"io"
	"log/slog"
	"sync"

	archiveservice "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/application"
	roundservice "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/application"
	roundhandlers "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/infrastructure/handlers"
	roundterminal "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/infrastructure/terminal"
	roundutil "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/utils"
	"github.com/Black-And-White-Club/frolf-scorecard/config"
	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

// Module represents the round module: one scorecard session and the surfaces that drive it.
type Module struct {
	Session    *roundservice.Session
	Handlers   roundhandlers.Handlers
	logger     *slog.Logger
	config     *config.Config
	cancelFunc context.CancelFunc
}

// NewRoundModule creates the session and, when httpRouter is given, mounts
// the scorecard API under /api.
func NewRoundModule(
	cfg *config.Config,
	logger *slog.Logger,
	archive archiveservice.Service,
	httpRouter chi.Router,
) (*Module, error) {
	logger.Info("round.NewRoundModule called")

	clock := roundutil.RealClock{}
	session := roundservice.NewSession(archive, clock, logger)
	handlers := roundhandlers.NewRoundHandlers(session, archive, logger, clock)

	if httpRouter != nil {
		limiter := roundhandlers.NewIPRateLimiter(rate.Limit(cfg.HTTP.RateLimit), cfg.HTTP.RateBurst)
		httpRouter.Route("/api", func(r chi.Router) {
			r.Use(roundhandlers.CORSMiddleware(cfg.HTTP.AllowedOrigins))
			r.Use(roundhandlers.RateLimitMiddleware(limiter))
			handlers.Routes(r)
		})
	}

	return &Module{
		Session:  session,
		Handlers: handlers,
		logger:   logger,
		config:   cfg,
	}, nil
}

// Terminal returns an interactive client for the module's session.
func (m *Module) Terminal(in io.Reader, out io.Writer) *roundterminal.Terminal {
	return roundterminal.NewTerminal(m.Session, in, out, m.logger)
}

// Run blocks until ctx is done.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.logger.Info("Starting round module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	m.logger.Info("Round module goroutine stopped")
}

// Close stops the module.
func (m *Module) Close() error {
	m.logger.Info("Stopping round module")
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	m.logger.Info("Round module stopped")
	return nil
}

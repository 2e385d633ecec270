package archiveservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	archiveevents "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/events"
	archivedb "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/infrastructure/repositories"
	roundutil "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/utils"
	"github.com/Black-And-White-Club/frolf-scorecard/app/shared/observability"
	"github.com/Black-And-White-Club/frolf-scorecard/app/shared/observability/attr"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ArchiveService implements the Service interface.
type ArchiveService struct {
	repo      archivedb.Repository
	publisher message.Publisher
	logger    *slog.Logger
	metrics   observability.ArchiveMetrics
	tracer    trace.Tracer
	clock     roundutil.Clock
}

// NewArchiveService creates a new ArchiveService. publisher may be nil, in which
// case no archive events are emitted.
func NewArchiveService(
	repo archivedb.Repository,
	publisher message.Publisher,
	logger *slog.Logger,
	metrics observability.ArchiveMetrics,
	tracer trace.Tracer,
	clock roundutil.Clock,
) *ArchiveService {
	if clock == nil {
		clock = roundutil.RealClock{}
	}
	return &ArchiveService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
		tracer:    tracer,
		clock:     clock,
	}
}

// operationFunc is the signature wrapped by withTelemetry.
type operationFunc[T any] func(ctx context.Context) (T, error)

// withTelemetry wraps a service operation with tracing, metrics, logging and panic recovery.
func withTelemetry[T any](
	s *ArchiveService,
	ctx context.Context,
	operationName string,
	roundID string,
	op operationFunc[T],
) (result T, err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.String("round_id", roundID),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, time.Since(startTime))
	}()

	s.logger.InfoContext(ctx, operationName+" triggered",
		attr.String("operation", operationName),
		attr.RoundID(roundID),
		attr.ExtractCorrelationID(ctx),
	)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.RoundID(roundID),
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName)
			span.RecordError(err)
		}
	}()

	result, err = op(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Operation failed with error",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.RoundID(roundID),
			attr.Error(err),
		)
		s.metrics.RecordOperationFailure(ctx, operationName)
		span.RecordError(err)
		return result, err
	}

	s.logger.InfoContext(ctx, operationName+" completed successfully",
		attr.String("operation", operationName),
		attr.RoundID(roundID),
		attr.ExtractCorrelationID(ctx),
	)
	s.metrics.RecordOperationSuccess(ctx, operationName)
	return result, nil
}

// publish emits an archive event. A publish failure is logged and swallowed:
// the archive write has already happened.
func (s *ArchiveService) publish(ctx context.Context, topic string, payload any) {
	if s.publisher == nil {
		return
	}
	msg, err := archiveevents.NewMessage(topic, attr.CorrelationIDFromContext(ctx), payload)
	if err == nil {
		err = s.publisher.Publish(topic, msg)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to publish archive event",
			attr.String("topic", topic),
			attr.ExtractCorrelationID(ctx),
			attr.Error(err),
		)
	}
}

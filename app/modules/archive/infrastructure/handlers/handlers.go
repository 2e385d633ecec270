package archivehandlers

import (
	"context"
	"log/slog"

	archiveevents "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/events"
	"github.com/Black-And-White-Club/frolf-scorecard/app/shared/observability"
	"github.com/Black-And-White-Club/frolf-scorecard/app/shared/observability/attr"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Handlers consumes archive events.
type Handlers interface {
	HandleRoundArchived(msg *message.Message) error
	HandleRoundDeleted(msg *message.Message) error
}

// ArchiveHandlers writes an audit trail for archive changes.
type ArchiveHandlers struct {
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics observability.ArchiveMetrics
}

// NewArchiveHandlers creates the audit handlers.
func NewArchiveHandlers(logger *slog.Logger, tracer trace.Tracer, metrics observability.ArchiveMetrics) *ArchiveHandlers {
	return &ArchiveHandlers{logger: logger, tracer: tracer, metrics: metrics}
}

func (h *ArchiveHandlers) start(msg *message.Message, topic string) (context.Context, trace.Span) {
	ctx := attr.WithCorrelationID(msg.Context(), middleware.MessageCorrelationID(msg))
	return h.tracer.Start(ctx, "archive.audit."+topic, trace.WithAttributes(
		attribute.String("message_id", msg.UUID),
		attribute.String("topic", topic),
	))
}

// HandleRoundArchived logs a newly archived round.
func (h *ArchiveHandlers) HandleRoundArchived(msg *message.Message) error {
	ctx, span := h.start(msg, archiveevents.RoundArchivedV1)
	defer span.End()

	payload, err := archiveevents.Decode[archiveevents.RoundArchivedPayloadV1](msg)
	if err != nil {
		// A payload that never decodes is dropped rather than redelivered forever.
		h.logger.ErrorContext(ctx, "Dropping undecodable archive event",
			attr.String("topic", archiveevents.RoundArchivedV1),
			attr.ExtractCorrelationID(ctx),
			attr.Error(err),
		)
		span.RecordError(err)
		return nil
	}

	h.logger.InfoContext(ctx, "Round archived",
		attr.RoundID(payload.RoundID),
		attr.Any("players", payload.Players),
		attr.Int("hole_count", payload.HoleCount),
		attr.Int("archive_size", payload.ArchiveSize),
		attr.ExtractCorrelationID(ctx),
	)
	h.metrics.RecordEventHandled(ctx, archiveevents.RoundArchivedV1)
	return nil
}

// HandleRoundDeleted logs a removed round.
func (h *ArchiveHandlers) HandleRoundDeleted(msg *message.Message) error {
	ctx, span := h.start(msg, archiveevents.RoundDeletedV1)
	defer span.End()

	payload, err := archiveevents.Decode[archiveevents.RoundDeletedPayloadV1](msg)
	if err != nil {
		h.logger.ErrorContext(ctx, "Dropping undecodable archive event",
			attr.String("topic", archiveevents.RoundDeletedV1),
			attr.ExtractCorrelationID(ctx),
			attr.Error(err),
		)
		span.RecordError(err)
		return nil
	}

	h.logger.InfoContext(ctx, "Round deleted from archive",
		attr.RoundID(payload.RoundID),
		attr.Int("index", payload.Index),
		attr.Int("archive_size", payload.ArchiveSize),
		attr.ExtractCorrelationID(ctx),
	)
	h.metrics.RecordEventHandled(ctx, archiveevents.RoundDeletedV1)
	return nil
}

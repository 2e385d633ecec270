package observability

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope for every span the scorecard emits.
const TracerName = "github.com/Black-And-White-Club/frolf-scorecard"

// Tracer returns the scorecard tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

package wrapper

import (
	"context"

	"github.com/rise-and-shine/userbook/result"
	"github.com/rise-and-shine/userbook/ucdef"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "userbook/usecase"

// TracingQueryWrapper wraps a use case with OpenTelemetry tracing.
//
// It starts a span named after the operation id for each execution and marks the
// span as failed when the use case returns a failure.
type TracingQueryWrapper[I, O any] struct {
	tracer trace.Tracer
	next   ucdef.Query[I, O]
}

// NewTracingQueryWrapper returns a ucdef.WrapFunc that traces the wrapped use case
// using the global tracer provider.
func NewTracingQueryWrapper[I, O any]() ucdef.WrapFunc[I, O] {
	return func(next ucdef.Query[I, O]) ucdef.Query[I, O] {
		return &TracingQueryWrapper[I, O]{
			tracer: otel.Tracer(tracerName),
			next:   next,
		}
	}
}

func (w *TracingQueryWrapper[I, O]) OperationID() string {
	return w.next.OperationID()
}

func (w *TracingQueryWrapper[I, O]) Execute(ctx context.Context, in I) result.Result[O] {
	ctx, span := w.tracer.Start(ctx, w.next.OperationID())
	defer span.End()

	res := w.next.Execute(ctx, in)

	if info, failed := res.Failure(); failed {
		span.RecordError(info)
		span.SetStatus(codes.Error, info.Error())
	}

	return res
}

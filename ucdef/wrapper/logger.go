package wrapper

import (
	"context"
	"time"

	"github.com/code19m/errx"
	"github.com/rise-and-shine/userbook/logger"
	"github.com/rise-and-shine/userbook/meta"
	"github.com/rise-and-shine/userbook/result"
	"github.com/rise-and-shine/userbook/ucdef"
)

// LoggerQueryWrapper logs every execution of a use case with its duration and outcome.
type LoggerQueryWrapper[I, O any] struct {
	logger logger.Logger
	next   ucdef.Query[I, O]
}

// NewLoggerQueryWrapper returns a ucdef.WrapFunc that logs executions of the wrapped use case.
func NewLoggerQueryWrapper[I, O any](log logger.Logger) ucdef.WrapFunc[I, O] {
	return func(next ucdef.Query[I, O]) ucdef.Query[I, O] {
		return &LoggerQueryWrapper[I, O]{
			logger: log.Named("usecase." + next.OperationID()),
			next:   next,
		}
	}
}

func (w *LoggerQueryWrapper[I, O]) OperationID() string {
	return w.next.OperationID()
}

func (w *LoggerQueryWrapper[I, O]) Execute(ctx context.Context, in I) result.Result[O] {
	ctx = meta.InjectMetaToContext(ctx, map[meta.ContextKey]string{
		meta.OperationID: w.next.OperationID(),
	})

	start := time.Now()
	res := w.next.Execute(ctx, in)

	log := w.logger.
		WithContext(ctx).
		With("execution_time", time.Since(start).String()).
		With("input", in)

	if info, failed := res.Failure(); failed {
		if info.Cause != nil {
			e := errx.AsErrorX(info.Cause)
			log = log.With("error", map[string]any{
				"code":    e.Code(),
				"type":    e.Type().String(),
				"trace":   e.Trace(),
				"fields":  e.Fields(),
				"details": e.Details(),
			})
		}
		log.Warn(info.Message)
		return res
	}

	log.Info("use case succeeded")
	return res
}

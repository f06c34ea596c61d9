package wrapper

import (
	"context"
	"fmt"
	"runtime"

	"github.com/code19m/errx"
	"github.com/rise-and-shine/userbook/logger"
	"github.com/rise-and-shine/userbook/result"
	"github.com/rise-and-shine/userbook/ucdef"
)

// CodePanicRecovered is the errx code of failures produced from a recovered panic.
const CodePanicRecovered = "USECASE_PANIC_RECOVERED"

// RecoveryQueryWrapper turns a panic in the wrapped use case into a failure result.
type RecoveryQueryWrapper[I, O any] struct {
	logger logger.Logger
	next   ucdef.Query[I, O]
}

// NewRecoveryQueryWrapper returns a ucdef.WrapFunc that recovers panics of the wrapped use case.
func NewRecoveryQueryWrapper[I, O any](log logger.Logger) ucdef.WrapFunc[I, O] {
	return func(next ucdef.Query[I, O]) ucdef.Query[I, O] {
		return &RecoveryQueryWrapper[I, O]{
			logger: log.Named("usecase.recovery").With("operation_id", next.OperationID()),
			next:   next,
		}
	}
}

func (w *RecoveryQueryWrapper[I, O]) OperationID() string {
	return w.next.OperationID()
}

func (w *RecoveryQueryWrapper[I, O]) Execute(ctx context.Context, in I) (res result.Result[O]) {
	defer func() {
		if r := recover(); r != nil {
			stackTrace := make([]byte, 4096) //nolint:mnd // 4KB
			stackTrace = stackTrace[:runtime.Stack(stackTrace, false)]

			w.logger.
				WithContext(ctx).
				With("stack_trace", string(stackTrace)).
				With("panic_values", fmt.Sprintf("%v", r)).
				Error("panic recovered in recovery wrapper")

			res = result.FromError[O](errx.New(
				fmt.Sprintf("unexpected failure: %v", r),
				errx.WithCode(CodePanicRecovered),
			))
		}
	}()

	return w.next.Execute(ctx, in)
}

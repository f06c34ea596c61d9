// Package ucdef defines the use case contract shared by the application layer.
package ucdef

import (
	"context"

	"github.com/rise-and-shine/userbook/result"
)

// NoInput is the input type of use cases that take no arguments.
type NoInput = struct{}

// Query represents a read-only operation triggered by a screen.
// It returns its outcome as a result.Result and never panics or returns raw errors,
// so screens can turn it into view state without inspecting error types.
//
// Type parameters:
//   - I: Input data type
//   - O: Output data type carried by a successful result
type Query[I, O any] interface {
	// OperationID returns a unique identifier for the use case.
	OperationID() string

	// Execute executes the use case.
	Execute(ctx context.Context, in I) result.Result[O]
}

// WrapFunc defines a middleware function for wrapping use cases.
// It takes a Query and returns a wrapped Query, enabling cross-cutting concerns.
type WrapFunc[I, O any] func(Query[I, O]) Query[I, O]

// Chain applies wrappers to q. The first wrapper becomes the outermost one.
func Chain[I, O any](q Query[I, O], wrappers ...WrapFunc[I, O]) Query[I, O] {
	for i := len(wrappers) - 1; i >= 0; i-- {
		q = wrappers[i](q)
	}
	return q
}

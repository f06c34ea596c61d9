// Package viewstate models what a screen shows while it fetches: Loading, Success or Error.
package viewstate

import "fmt"

// Kind is the active variant of a State.
type Kind int

const (
	KindLoading Kind = iota
	KindSuccess
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindLoading:
		return "loading"
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// State is exactly one of Loading, Success(value) or Error(message).
// States are values; screens replace them wholesale, never partially.
// The zero value is Loading.
type State[T any] struct {
	kind    Kind
	value   T
	message string
}

// Loading returns the loading state.
func Loading[T any]() State[T] {
	return State[T]{kind: KindLoading}
}

// Success returns a state carrying the fetched value.
func Success[T any](v T) State[T] {
	return State[T]{kind: KindSuccess, value: v}
}

// Error returns a state carrying a message for the user.
func Error[T any](message string) State[T] {
	return State[T]{kind: KindError, message: message}
}

func (s State[T]) Kind() Kind {
	return s.kind
}

func (s State[T]) IsLoading() bool {
	return s.kind == KindLoading
}

// Value returns the payload of a Success state.
func (s State[T]) Value() (T, bool) {
	if s.kind != KindSuccess {
		var zero T
		return zero, false
	}
	return s.value, true
}

// Message returns the message of an Error state.
func (s State[T]) Message() (string, bool) {
	if s.kind != KindError {
		return "", false
	}
	return s.message, true
}

func (s State[T]) String() string {
	switch s.kind {
	case KindSuccess:
		return fmt.Sprintf("Success(%v)", s.value)
	case KindError:
		return fmt.Sprintf("Error(%q)", s.message)
	default:
		return "Loading"
	}
}

// Package result provides a two-variant outcome type used at the repository and use case seams.
//
// A Result is either a success carrying a value or a failure carrying an ErrorInfo.
// Layers below the repository keep returning (T, error); the repository folds every
// error into a failure so nothing above it has to inspect raw errors.
package result

// ErrorInfo describes why an operation failed.
type ErrorInfo struct {
	// Message is the human readable description shown to the user. May be empty.
	Message string

	// Cause is the underlying error, kept for logging. May be nil.
	Cause error
}

// Error implements the error interface.
func (e ErrorInfo) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return ""
}

// Unwrap returns the underlying error.
func (e ErrorInfo) Unwrap() error {
	return e.Cause
}

// Result is the outcome of a single operation: Success(value) or Failure(ErrorInfo).
// The zero value is a success carrying the zero value of T.
type Result[T any] struct {
	value T
	fail  *ErrorInfo
}

// Success returns a successful result carrying v.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Failure returns a failed result carrying info.
func Failure[T any](info ErrorInfo) Result[T] {
	return Result[T]{fail: &info}
}

// FromError returns a failed result whose message is err's message.
// A nil err yields a failure with an empty message.
func FromError[T any](err error) Result[T] {
	if err == nil {
		return Failure[T](ErrorInfo{})
	}
	return Failure[T](ErrorInfo{Message: err.Error(), Cause: err})
}

// From converts a conventional (value, error) pair into a Result.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return FromError[T](err)
	}
	return Success(v)
}

// IsSuccess reports whether r carries a value.
func (r Result[T]) IsSuccess() bool {
	return r.fail == nil
}

// IsFailure reports whether r carries an error.
func (r Result[T]) IsFailure() bool {
	return r.fail != nil
}

// Value returns the carried value and true on success, the zero value and false otherwise.
func (r Result[T]) Value() (T, bool) {
	if r.fail != nil {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Failure returns the carried error info and true on failure.
func (r Result[T]) Failure() (ErrorInfo, bool) {
	if r.fail == nil {
		return ErrorInfo{}, false
	}
	return *r.fail, true
}

// Unwrap converts r back into a (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	if r.fail != nil {
		var zero T
		return zero, *r.fail
	}
	return r.value, nil
}

// OnSuccess calls fn with the value if r is a success. It returns r unchanged.
func (r Result[T]) OnSuccess(fn func(T)) Result[T] {
	if r.fail == nil {
		fn(r.value)
	}
	return r
}

// OnFailure calls fn with the error info if r is a failure. It returns r unchanged.
func (r Result[T]) OnFailure(fn func(ErrorInfo)) Result[T] {
	if r.fail != nil {
		fn(*r.fail)
	}
	return r
}

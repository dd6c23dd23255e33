package result

import (
	"time"

	"github.com/google/uuid"
)

// Result holds the outcome of an operation that may fail: either a success
// value of type T or a failure value of type E, never both. Instances are
// immutable after construction; combinators return new instances.
type Result[T any, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	isSuccess bool
}

func Success[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// successFrom carries a success value into a result with a different error
// type parameter, preserving the diagnostic identity of the original.
func successFrom[T, E, F any](from Result[T, E]) Result[T, F] {
	return Result[T, F]{
		value:     from.value,
		isSuccess: true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// failureFrom carries a failure value into a result with a different success
// type parameter, preserving the diagnostic identity of the original.
func failureFrom[In, Out, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

// Value returns the success value. Calling it on a failure is a caller bug
// and panics with *MisuseError, not with the domain error.
func (r Result[T, E]) Value() T {
	if !r.isSuccess {
		panic(&MisuseError{Op: "Value", Variant: "failure"})
	}
	return r.value
}

// Err returns the failure value. Calling it on a success is a caller bug
// and panics with *MisuseError.
func (r Result[T, E]) Err() E {
	if r.isSuccess {
		panic(&MisuseError{Op: "Err", Variant: "success"})
	}
	return r.err
}

// ID identifies this result for correlation in logs and traces.
func (r Result[T, E]) ID() uuid.UUID {
	return r.id
}

// CreatedAt is the construction time (UTC).
func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

// Fold collapses a result into a single value by applying exactly one of the
// two handlers to the contained payload. It is the terminal consumption
// operation: chains end with a Fold at the state or UI boundary.
func Fold[T, E, R any](r Result[T, E],
	onSuccess func(v T) R,
	onFailure func(err E) R) R {

	if r.isSuccess {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}

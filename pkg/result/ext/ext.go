package ext

import (
	"github.com/ib-77/outcome/pkg/result"
)

// ValueOrNil returns a pointer to the success value, or nil on failure.
// Never panics.
func ValueOrNil[T, E any](r result.Result[T, E]) *T {
	return result.Fold(r,
		func(v T) *T { return &v },
		func(_ E) *T { return nil })
}

// ErrOrNil returns a pointer to the failure value, or nil on success.
// Never panics.
func ErrOrNil[T, E any](r result.Result[T, E]) *E {
	return result.Fold(r,
		func(_ T) *E { return nil },
		func(err E) *E { return &err })
}

// GetOrElse returns the success value, or derives one from the error.
func GetOrElse[T, E any](r result.Result[T, E], fallback func(err E) T) T {
	return result.Fold(r,
		func(v T) T { return v },
		fallback)
}

// Tap invokes onSuccess for its side effect when r is a success and returns
// r unchanged either way.
func Tap[T, E any](r result.Result[T, E], onSuccess func(v T)) result.Result[T, E] {
	if r.IsSuccess() {
		onSuccess(r.Value())
	}
	return r
}

// TapError invokes onFailure for its side effect when r is a failure and
// returns r unchanged either way.
func TapError[T, E any](r result.Result[T, E], onFailure func(err E)) result.Result[T, E] {
	if r.IsFailure() {
		onFailure(r.Err())
	}
	return r
}

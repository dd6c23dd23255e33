package result

// Type-changing combinators live at package level because Go methods cannot
// introduce new type parameters. Same-type combinators stay methods.

// Map transforms the success value and rewraps it; a failure passes through
// with its error payload untouched.
func Map[In, Out, E any](r Result[In, E], transform func(v In) Out) Result[Out, E] {
	if r.isSuccess {
		return Success[Out, E](transform(r.value))
	}
	return failureFrom[In, Out, E](r)
}

// MapErr transforms the failure value; a success passes through with its
// value untouched.
func MapErr[T, E, F any](r Result[T, E], transform func(err E) F) Result[T, F] {
	if r.isSuccess {
		return successFrom[T, E, F](r)
	}
	return Failure[T, F](transform(r.err))
}

// AndThen chains a result-returning step. On success the step's result is
// returned as-is, never double-wrapped. On failure the step is not invoked
// and the original error short-circuits through.
func AndThen[In, Out, E any](r Result[In, E], next func(v In) Result[Out, E]) Result[Out, E] {
	if r.isSuccess {
		return next(r.value)
	}
	return failureFrom[In, Out, E](r)
}

// FlatMap is an alias for AndThen.
func FlatMap[In, Out, E any](r Result[In, E], next func(v In) Result[Out, E]) Result[Out, E] {
	return AndThen(r, next)
}

// Recover converts a failure into a success by applying fallback to the
// error. A success is returned unchanged.
func (r Result[T, E]) Recover(fallback func(err E) T) Result[T, E] {
	if r.isSuccess {
		return r
	}
	return Success[T, E](fallback(r.err))
}

// RecoverWith is Recover where the fallback may itself fail. A success is
// returned unchanged.
func (r Result[T, E]) RecoverWith(fallback func(err E) Result[T, E]) Result[T, E] {
	if r.isSuccess {
		return r
	}
	return fallback(r.err)
}

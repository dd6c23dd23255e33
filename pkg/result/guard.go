package result

import (
	"context"
	"fmt"
	"runtime/debug"
)

// Guard runs a fallible action and contains its failures: a non-nil returned
// error and a recovered panic are both handed to onError, whose return value
// becomes the failure payload. A panic supplies the stack trace captured at
// the recovery point; a plain error supplies a nil trace. Guard itself never
// re-raises. If onError panics, that panic propagates.
func Guard[T, E any](action func() (T, error),
	onError func(cause error, trace []byte) E) (res Result[T, E]) {

	defer func() {
		if p := recover(); p != nil {
			res = Failure[T, E](onError(panicCause(p), debug.Stack()))
		}
	}()

	v, err := action()
	if err != nil {
		return Failure[T, E](onError(err, nil))
	}
	return Success[T, E](v)
}

// GuardAsync is Guard for asynchronous work. The action runs in its own
// goroutine and the returned channel settles exactly once with the outcome.
// The capture region covers the whole action, so a panic before any real
// work starts and a failure surfaced later both reach the same onError.
// Context cancellation is not special: an action that honors ctx returns
// ctx.Err() and that error is routed through onError like any other cause.
// No timeout logic lives here; wrap the action if one is needed.
func GuardAsync[T, E any](ctx context.Context,
	action func(ctx context.Context) (T, error),
	onError func(cause error, trace []byte) E) <-chan Result[T, E] {

	out := make(chan Result[T, E], 1)

	go func() {
		defer close(out)
		out <- Guard(func() (T, error) { return action(ctx) }, onError)
	}()

	return out
}

func panicCause(p any) error {
	if err, ok := p.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", p)
}

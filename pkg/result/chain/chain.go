package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/result"
)

type Chain[T, E any] struct {
	ctx context.Context
	res result.Result[T, E]
}

func Start[T, E any](ctx context.Context, r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: ctx, res: r}
}

func FromValue[T, E any](ctx context.Context, v T) Chain[T, E] {
	return Start(ctx, result.Success[T, E](v))
}

func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

// Then composes functions that already return a result.
func (c Chain[T, E]) Then(onSuccess func(ctx context.Context, v T) result.Result[T, E]) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Value())}
}

// ThenTry composes functions that return (T, error) — like repo calls.
// Returned errors and panics are contained and mapped to E via onError.
func (c Chain[T, E]) ThenTry(try func(ctx context.Context, v T) (T, error),
	onError func(cause error, trace []byte) E) Chain[T, E] {

	if c.res.IsFailure() {
		return c
	}
	v := c.res.Value()
	return Chain[T, E]{ctx: c.ctx, res: result.Guard(func() (T, error) {
		return try(c.ctx, v)
	}, onError)}
}

// Map transforms the successful value to a new value
func (c Chain[T, E]) Map(onSuccess func(ctx context.Context, v T) T) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: result.Success[T, E](onSuccess(c.ctx, c.res.Value()))}
}

// Recover switches a failed chain back to the success track.
func (c Chain[T, E]) Recover(fallback func(ctx context.Context, err E) T) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: result.Success[T, E](fallback(c.ctx, c.res.Err()))}
}

// RecoverWith is Recover where the fallback may itself fail.
func (c Chain[T, E]) RecoverWith(fallback func(ctx context.Context, err E) result.Result[T, E]) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: fallback(c.ctx, c.res.Err())}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T, E]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, E)) Chain[T, E] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

// Finally collapses the chain to a final value.
func (c Chain[T, E]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, E) T,
) T {
	return result.Fold(c.res,
		func(v T) T { return onSuccess(c.ctx, v) },
		func(err E) T { return onFailure(c.ctx, err) })
}

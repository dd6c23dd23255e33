package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/ib-77/outcome/pkg/result"
)

func asMessage(cause error, trace []byte) string {
	return cause.Error()
}

func TestStartAndResult_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := Start(ctx, result.Success[int, string](5)).Result()

	if !out.IsSuccess() || out.Value() != 5 {
		t.Fatalf("expected success with 5, got: success=%v", out.IsSuccess())
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue[int, string](ctx, 7).Result()

	if !out.IsSuccess() || out.Value() != 7 {
		t.Fatalf("expected success with 7, got: success=%v", out.IsSuccess())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := false
	out := Start(ctx, result.Failure[int, string]("boom")).
		Then(func(ctx context.Context, v int) result.Result[int, string] {
			called = true
			return result.Success[int, string](v + 1)
		}).Result()

	if out.IsSuccess() || out.Err() != "boom" {
		t.Fatalf("expected failure 'boom', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
	if called {
		t.Fatalf("onSuccess should not be called when chain already failed")
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue[int, string](ctx, 3).
		Then(func(ctx context.Context, v int) result.Result[int, string] {
			return result.Success[int, string](v * 2)
		}).Result()

	if !out.IsSuccess() || out.Value() != 6 {
		t.Fatalf("expected success with 6, got: success=%v", out.IsSuccess())
	}
}

func TestThenTry_ErrorContained(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue[int, string](ctx, 10).
		ThenTry(func(ctx context.Context, v int) (int, error) {
			return 0, errors.New("try-error")
		}, asMessage).Result()

	if out.IsSuccess() || out.Err() != "try-error" {
		t.Fatalf("expected failure 'try-error', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestThenTry_PanicContained(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue[int, string](ctx, 10).
		ThenTry(func(ctx context.Context, v int) (int, error) {
			panic("bad decode")
		}, asMessage).Result()

	if out.IsSuccess() || out.Err() != "panic: bad decode" {
		t.Fatalf("expected contained panic, got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestThenTry_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue[int, string](ctx, 4).
		ThenTry(func(ctx context.Context, v int) (int, error) { return v * v, nil }, asMessage).
		Result()

	if !out.IsSuccess() || out.Value() != 16 {
		t.Fatalf("expected success with 16, got: success=%v", out.IsSuccess())
	}
}

func TestMap_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue[int, string](ctx, 2).
		Map(func(ctx context.Context, v int) int { return v + 100 }).Result()

	if !out.IsSuccess() || out.Value() != 102 {
		t.Fatalf("expected success with 102, got: success=%v", out.IsSuccess())
	}
}

func TestRecover_RejoinsSuccessTrack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := Start(ctx, result.Failure[int, string]("net")).
		Recover(func(ctx context.Context, err string) int { return len(err) }).
		Map(func(ctx context.Context, v int) int { return v * 2 }).
		Result()

	if !out.IsSuccess() || out.Value() != 6 {
		t.Fatalf("expected success with 6, got: success=%v", out.IsSuccess())
	}
}

func TestRecoverWith_FallbackMayFail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := Start(ctx, result.Failure[int, string]("net")).
		RecoverWith(func(ctx context.Context, err string) result.Result[int, string] {
			return result.Failure[int, string](err + ":again")
		}).Result()

	if out.IsSuccess() || out.Err() != "net:again" {
		t.Fatalf("expected failure 'net:again', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestEnsure_SideEffects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var sawValue int
	FromValue[int, string](ctx, 9).
		Ensure(func(_ context.Context, v int) { sawValue = v }, nil)
	if sawValue != 9 {
		t.Fatalf("expected success hook to see 9, got %v", sawValue)
	}

	var sawErr string
	Start(ctx, result.Failure[int, string]("net")).
		Ensure(nil, func(_ context.Context, err string) { sawErr = err })
	if sawErr != "net" {
		t.Fatalf("expected failure hook to see 'net', got %q", sawErr)
	}
}

func TestFinally_CollapsesBothTracks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := FromValue[int, string](ctx, 3).
		Map(func(_ context.Context, v int) int { return v * 2 }).
		Finally(
			func(_ context.Context, v int) int { return v },
			func(_ context.Context, _ string) int { return -1 })
	if ok != 6 {
		t.Fatalf("expected 6, got %v", ok)
	}

	bad := Start(ctx, result.Failure[int, string]("net")).
		Finally(
			func(_ context.Context, v int) int { return v },
			func(_ context.Context, err string) int { return -len(err) })
	if bad != -3 {
		t.Fatalf("expected -3, got %v", bad)
	}
}

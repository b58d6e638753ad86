package either

import (
	"context"
	"errors"
)

// Future is the pending outcome of an operation started by an AsAsyncEither
// wrapper.
type Future[T any] struct {
	done      chan struct{}
	res       Either[T, error]
	cancelErr error
	misuse    any
}

// Done is closed once the operation has settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the operation settles or ctx ends. A settled operation
// wins over a done ctx.
//
// A settled operation yields its Either and a nil error. Cancellation, either
// of ctx or of the context the operation ran with, is returned as the error
// and never as an Err payload. An operation that left its goroutine through
// runtime.Goexit yields ErrAbandoned. Misuse of Either inside the operation
// is re-panicked here, on the caller's goroutine.
func (f *Future[T]) Await(ctx context.Context) (Either[T, error], error) {
	select {
	case <-f.done:
		return f.settled()
	default:
	}

	select {
	case <-f.done:
		return f.settled()
	case <-ctx.Done():
		return Either[T, error]{}, ctx.Err()
	}
}

func (f *Future[T]) settled() (Either[T, error], error) {
	if f.misuse != nil {
		panic(f.misuse)
	}
	if f.cancelErr != nil {
		return Either[T, error]{}, f.cancelErr
	}
	return f.res, nil
}

func goCapture[T any](ctx context.Context, call func(ctx context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		returned := false
		defer func() {
			// capture only lets misuse panics through
			if r := recover(); r != nil {
				f.misuse = r
			} else if !returned {
				f.cancelErr = ErrAbandoned
			}
			close(f.done)
		}()

		res := capture(func() (T, error) {
			return call(ctx)
		})
		returned = true
		if errVal, ok := res.ErrValue(); ok && ctx.Err() != nil && IsCancellationError(errVal) {
			f.cancelErr = errVal
			return
		}
		f.res = res
	}()

	return f
}

// AsAsyncEither wraps fn so that each call runs it on its own goroutine and
// returns a Future of its outcome.
func AsAsyncEither[T any](fn func(ctx context.Context) (T, error)) func(ctx context.Context) *Future[T] {
	return func(ctx context.Context) *Future[T] {
		return goCapture(ctx, fn)
	}
}

func AsAsyncEither1[A, T any](fn func(ctx context.Context, a A) (T, error)) func(ctx context.Context, a A) *Future[T] {
	return func(ctx context.Context, a A) *Future[T] {
		return goCapture(ctx, func(ctx context.Context) (T, error) {
			return fn(ctx, a)
		})
	}
}

func AsAsyncEither2[A, B, T any](fn func(ctx context.Context, a A, b B) (T, error)) func(ctx context.Context, a A, b B) *Future[T] {
	return func(ctx context.Context, a A, b B) *Future[T] {
		return goCapture(ctx, func(ctx context.Context) (T, error) {
			return fn(ctx, a, b)
		})
	}
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

package either

import (
	"github.com/pkg/errors"
)

// capture runs call and turns its outcome into an Either. A returned error or
// a recovered panic becomes Err; panics from misusing Either are re-raised.
func capture[T any](call func() (T, error)) (res Either[T, error]) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if isEitherError(r) {
			panic(r)
		}
		res = Err[T](panicToError(r))
	}()

	v, err := call()
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

func panicToError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return errors.WithStack(&PanicError{Value: r})
}

// AsEither wraps fn so that it returns Ok with its value, or Err with the
// error it returned or panicked with.
func AsEither[T any](fn func() (T, error)) func() Either[T, error] {
	return func() Either[T, error] {
		return capture(fn)
	}
}

func AsEither1[A, T any](fn func(A) (T, error)) func(A) Either[T, error] {
	return func(a A) Either[T, error] {
		return capture(func() (T, error) {
			return fn(a)
		})
	}
}

func AsEither2[A, B, T any](fn func(A, B) (T, error)) func(A, B) Either[T, error] {
	return func(a A, b B) Either[T, error] {
		return capture(func() (T, error) {
			return fn(a, b)
		})
	}
}

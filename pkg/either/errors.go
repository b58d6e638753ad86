package either

import (
	"errors"
	"fmt"
)

// ErrEither is the family every error raised by this package belongs to.
var ErrEither = errors.New("either")

var (
	// ErrPrivateConstruction reports an Either that was not built by Ok or Err.
	ErrPrivateConstruction = fmt.Errorf("%w: use either.Ok or either.Err to create an instance", ErrEither)
	// ErrUnreachableState reports a corrupt discriminant. Ok and Err never produce one.
	ErrUnreachableState = fmt.Errorf("%w: either is in an invalid state", ErrEither)
	// ErrAbandoned reports an asynchronous operation that exited its goroutine
	// without returning, e.g. through runtime.Goexit.
	ErrAbandoned = fmt.Errorf("%w: operation exited without settling", ErrEither)
)

// PanicError holds a recovered panic value that was not an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func isEitherError(v any) bool {
	err, ok := v.(error)
	return ok && errors.Is(err, ErrEither)
}

package either

import "fmt"

type state uint8

const (
	unset state = iota
	okState
	errState
)

// Either holds exactly one of a success payload T or a failure payload E.
// Build it with Ok or Err; the zero value is not a valid Either.
type Either[T, E any] struct {
	ok    T
	err   E
	state state
}

func Ok[T, E any](v T) Either[T, E] {
	return Either[T, E]{
		ok:    v,
		state: okState,
	}
}

func Err[T, E any](e E) Either[T, E] {
	return Either[T, E]{
		err:   e,
		state: errState,
	}
}

// Match calls onOk with the success payload or onErr with the failure payload
// and returns what it returns.
//
// It panics with ErrPrivateConstruction on a zero Either and with
// ErrUnreachableState on a corrupt one.
func Match[T, E, R any](e Either[T, E], onOk func(T) R, onErr func(E) R) R {
	switch e.state {
	case okState:
		if onOk == nil {
			panic("either: onOk cannot be nil")
		}
		return onOk(e.ok)
	case errState:
		if onErr == nil {
			panic("either: onErr cannot be nil")
		}
		return onErr(e.err)
	case unset:
		panic(ErrPrivateConstruction)
	default:
		panic(ErrUnreachableState)
	}
}

func (e Either[T, E]) IsOk() bool {
	return e.state == okState
}

func (e Either[T, E]) IsErr() bool {
	return e.state == errState
}

// OkValue returns the success payload and true, or the zero T and false.
func (e Either[T, E]) OkValue() (T, bool) {
	if e.state == okState {
		return e.ok, true
	}
	var zero T
	return zero, false
}

// ErrValue returns the failure payload and true, or the zero E and false.
func (e Either[T, E]) ErrValue() (E, bool) {
	if e.state == errState {
		return e.err, true
	}
	var zero E
	return zero, false
}

// Valid reports whether e was built by Ok or Err.
func (e Either[T, E]) Valid() error {
	switch e.state {
	case okState, errState:
		return nil
	case unset:
		return ErrPrivateConstruction
	default:
		return ErrUnreachableState
	}
}

func (e Either[T, E]) String() string {
	switch e.state {
	case okState:
		return fmt.Sprintf("Ok(%v)", e.ok)
	case errState:
		return fmt.Sprintf("Err(%v)", e.err)
	default:
		return "Either(<invalid>)"
	}
}

// Package either provides Either[T, E], a value holding exactly one of a
// success payload or a failure payload, and adapters that turn fallible Go
// calls into Either values.
//
// Highlights:
// - Ok/Err: the only sanctioned constructors
// - Match: reduce an Either to a value via ok/err handlers
// - AsEither/AsEither1/AsEither2: capture returned errors and panics as Err
// - AsAsyncEither/AsAsyncEither1/AsAsyncEither2: same, on a goroutine, awaited
//   through a Future that propagates cancellation as cancellation
//
// The zero Either was not built by Ok or Err; using it panics with
// ErrPrivateConstruction. Either does not chain: transform inside Match.
package either

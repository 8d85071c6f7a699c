// Package duration implements exact, overflow-checked arithmetic on a
// fixed-point span of time.
//
// A Duration is a non-negative (seconds, nanoseconds) pair where seconds is a
// uint64 and nanoseconds is always below one second. Unlike time.Duration it
// covers the whole uint64 range of seconds, so products and quotients by an
// arbitrary uint64 scalar need 128-bit intermediates; those are computed
// exactly from 64-bit operations.
//
// # Errors
//
// Every operation that can fail returns *OpError. Use errors.Is to tell the
// kinds apart:
//
//   - ErrOverflow: the result is not representable.
//   - ErrDivideByZero: the scalar divisor is zero.
//   - ErrNegative: a negative time.Duration was converted.
//
// # Concurrency
//
// Duration is an immutable value type. All functions are pure and safe for
// concurrent use.
package duration

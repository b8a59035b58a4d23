// Package rop contains the two closed container types used across the module:
// Option[T] for "value or absence" and Result[T, E] for "value or error".
//
// Highlights:
// - Some/None/TrySome: construct Option[T]; Some rejects nil-equivalent values
// - Ok/Err: construct Result[T, E]; neither factory validates its payload
// - Or/OrElse/UnwrapOr/UnwrapOrElse: same-type fallbacks as methods
// - Ok()/Err(): convert a Result into an Option
// - Unwrap/Expect family: return the payload or abort the process
//
// Combinators that change the payload type (Map to another type, AndThen,
// OkOr, Match) live in the option and result subpackages, since Go methods
// cannot introduce type parameters.
//
// Calling an Unwrap or Expect method on the variant that does not hold the
// requested payload is a programmer error. The diagnostic is written through
// the module logger at fatal level and the process exits.
package rop

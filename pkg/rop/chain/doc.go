// Package chain provides a fluent wrapper around rop.Result[T, E]
// for building synchronous Railway-Oriented chains.
//
// It composes AndThen, Map, MapErr, OrElse and Match behind a convenient
// Chain[T, E] type, so a pipeline does not branch on the result at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T, E] or a value
// - Then: continue with a function returning Result[U, E]
// - ThenTry: call a function (U, error) and convert the error to a failure
// - Map/MapErr: transform the value or the error
// - Recover: replace a failure with the result of a handler
// - And/Or: combine with other results; first error or first success wins
// - Ensure/EnsureErr: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
// - Validate/ValidateAll: run checks stopping at the first error, or
//   collecting all of them
package chain

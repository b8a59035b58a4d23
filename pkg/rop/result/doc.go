// Package result holds the Result combinators whose output type differs from
// their input, written as functions over rop.Result[T, E].
//
// Highlights:
// - Map/MapErr/MapOr/MapOrElse: transform the value or the error
// - And/AndThen: continue on success; the first error wins
// - Or/OrElse: recover on failure; the first success wins
// - Match: collapse a Result into a single value with two handlers
// - FromPair/Try/ToPair: bridge to Go's (T, error) convention
// - Transpose/Flatten: reshape nested containers
package result

// Package option holds the Option combinators whose output type differs from
// their input, written as functions over rop.Option[T].
//
// Highlights:
// - Map/MapOr/MapOrElse: transform a present value
// - And/AndThen: continue with another Option only when a value is present
// - OkOr/OkOrElse: turn an Option into a rop.Result
// - Match: collapse an Option into a single value with two handlers
// - FromOk/FromPtr/ToPtr/Flatten: adapters for comma-ok, pointers and nesting
//
// Function arguments are called at most once and only on the branch that
// needs them.
package option

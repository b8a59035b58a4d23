package chain

import (
	"errors"

	"github.com/ib-77/monads/pkg/rop"
)

var ErrInvalid = errors.New("invalid value")

// Validate runs checks in order against the value each one passes on and
// stops at the first failure.
func Validate[T, E any](value T, checks ...func(T) rop.Result[T, E]) rop.Result[T, E] {
	res := rop.Ok[T, E](value)
	for _, check := range checks {
		res = res.AndThen(check)
	}
	return res
}

// ValidateAll runs every check against value and joins the errors of the
// failing ones. A check failing with a nil error counts as ErrInvalid.
func ValidateAll[T any](value T, checks ...func(T) rop.Result[T, error]) rop.Result[T, error] {
	var errs []error
	for _, check := range checks {
		if _, err, ok := check(value).Get(); !ok {
			parts := rop.GetErrors(err)
			if len(parts) == 0 {
				parts = []error{ErrInvalid}
			}
			errs = append(errs, parts...)
		}
	}

	if len(errs) == 0 {
		return rop.Ok[T, error](value)
	}
	return rop.Err[T](errors.Join(errs...))
}

// Check adapts a predicate into a check that fails with msg.
func Check[T any](valid func(T) bool, msg string) func(T) rop.Result[T, error] {
	return func(v T) rop.Result[T, error] {
		if valid(v) {
			return rop.Ok[T, error](v)
		}
		return rop.Err[T](errors.New(msg))
	}
}

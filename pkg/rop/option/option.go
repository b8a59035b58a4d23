package option

import (
	"github.com/ib-77/monads/pkg/rop"
)

func Map[T, R any](o rop.Option[T], f func(T) R) rop.Option[R] {
	if v, ok := o.Get(); ok {
		return rop.Some(f(v))
	}
	return rop.None[R]()
}

func MapOr[T, R any](o rop.Option[T], defaultValue R, f func(T) R) R {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return defaultValue
}

func MapOrElse[T, R any](o rop.Option[T], fDefault func() R, f func(T) R) R {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return fDefault()
}

// And returns other when o is Some, otherwise None.
func And[T, R any](o rop.Option[T], other rop.Option[R]) rop.Option[R] {
	if o.IsSome() {
		return other
	}
	return rop.None[R]()
}

// AndThen returns f(value) when o is Some. It lets Option-returning steps be
// chained without nesting.
func AndThen[T, R any](o rop.Option[T], f func(T) rop.Option[R]) rop.Option[R] {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return rop.None[R]()
}

func OkOr[T, E any](o rop.Option[T], err E) rop.Result[T, E] {
	if v, ok := o.Get(); ok {
		return rop.Ok[T, E](v)
	}
	return rop.Err[T](err)
}

func OkOrElse[T, E any](o rop.Option[T], fError func() E) rop.Result[T, E] {
	if v, ok := o.Get(); ok {
		return rop.Ok[T, E](v)
	}
	return rop.Err[T](fError())
}

// Match returns fSome(value) for a Some and fNone() for a None.
func Match[T, R any](o rop.Option[T], fSome func(T) R, fNone func() R) R {
	if v, ok := o.Get(); ok {
		return fSome(v)
	}
	return fNone()
}

// FromOk builds an Option from a comma-ok pair such as a map lookup.
func FromOk[T any](value T, ok bool) rop.Option[T] {
	if !ok {
		return rop.None[T]()
	}
	return rop.Some(value)
}

// FromPtr treats a nil pointer as None and copies the pointee otherwise.
func FromPtr[T any](ptr *T) rop.Option[T] {
	if ptr == nil {
		return rop.None[T]()
	}
	return rop.Some(*ptr)
}

// ToPtr returns a pointer to a copy of the value, or nil for None.
func ToPtr[T any](o rop.Option[T]) *T {
	v, ok := o.Get()
	if !ok {
		return nil
	}
	return &v
}

func Flatten[T any](o rop.Option[rop.Option[T]]) rop.Option[T] {
	if inner, ok := o.Get(); ok {
		return inner
	}
	return rop.None[T]()
}

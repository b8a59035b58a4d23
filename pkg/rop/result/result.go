package result

import (
	"github.com/ib-77/monads/pkg/rop"
)

func Map[T, R, E any](r rop.Result[T, E], f func(T) R) rop.Result[R, E] {
	v, e, ok := r.Get()
	if ok {
		return rop.Ok[R, E](f(v))
	}
	return rop.Err[R](e)
}

func MapErr[T, E, F any](r rop.Result[T, E], f func(E) F) rop.Result[T, F] {
	v, e, ok := r.Get()
	if ok {
		return rop.Ok[T, F](v)
	}
	return rop.Err[T](f(e))
}

func MapOr[T, R, E any](r rop.Result[T, E], defaultValue R, f func(T) R) R {
	if v, _, ok := r.Get(); ok {
		return f(v)
	}
	return defaultValue
}

// MapOrElse returns fOk(value) for an Ok and fErr(error) for an Err.
func MapOrElse[T, R, E any](r rop.Result[T, E], fErr func(E) R, fOk func(T) R) R {
	v, e, ok := r.Get()
	if ok {
		return fOk(v)
	}
	return fErr(e)
}

// And returns other when r is Ok. An Err keeps its error.
func And[T, R, E any](r rop.Result[T, E], other rop.Result[R, E]) rop.Result[R, E] {
	_, e, ok := r.Get()
	if ok {
		return other
	}
	return rop.Err[R](e)
}

func AndThen[T, R, E any](r rop.Result[T, E], f func(T) rop.Result[R, E]) rop.Result[R, E] {
	v, e, ok := r.Get()
	if ok {
		return f(v)
	}
	return rop.Err[R](e)
}

// Or returns r's value when it is Ok, otherwise other.
func Or[T, E, F any](r rop.Result[T, E], other rop.Result[T, F]) rop.Result[T, F] {
	if v, _, ok := r.Get(); ok {
		return rop.Ok[T, F](v)
	}
	return other
}

func OrElse[T, E, F any](r rop.Result[T, E], f func(E) rop.Result[T, F]) rop.Result[T, F] {
	v, e, ok := r.Get()
	if ok {
		return rop.Ok[T, F](v)
	}
	return f(e)
}

func Match[T, E, R any](r rop.Result[T, E], fOk func(T) R, fErr func(E) R) R {
	v, e, ok := r.Get()
	if ok {
		return fOk(v)
	}
	return fErr(e)
}

// FromPair turns a Go (value, error) pair into a Result. A nil error is Ok.
func FromPair[T any](value T, err error) rop.Result[T, error] {
	if err != nil {
		return rop.Err[T](err)
	}
	return rop.Ok[T, error](value)
}

func Try[T any](f func() (T, error)) rop.Result[T, error] {
	return FromPair(f())
}

// ToPair returns the value and a nil error for an Ok, or the zero value and
// the error for an Err.
func ToPair[T any](r rop.Result[T, error]) (T, error) {
	v, e, ok := r.Get()
	if ok {
		return v, nil
	}
	var zero T
	return zero, e
}

// Transpose maps Ok(None) to None, Ok(Some(v)) to Some(Ok(v)) and Err(e) to
// Some(Err(e)).
func Transpose[T, E any](r rop.Result[rop.Option[T], E]) rop.Option[rop.Result[T, E]] {
	o, e, ok := r.Get()
	if !ok {
		return rop.Some(rop.Err[T](e))
	}
	if v, some := o.Get(); some {
		return rop.Some(rop.Ok[T, E](v))
	}
	return rop.None[rop.Result[T, E]]()
}

func Flatten[T, E any](r rop.Result[rop.Result[T, E], E]) rop.Result[T, E] {
	inner, e, ok := r.Get()
	if ok {
		return inner
	}
	return rop.Err[T](e)
}

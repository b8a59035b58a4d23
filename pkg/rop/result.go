package rop

import "fmt"

// Result holds either the value of a successful operation (Ok) or the error
// it failed with (Err). E can be any type. The zero value is an Err holding
// the zero E.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		value: value,
		ok:    true,
	}
}

func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err: err,
		ok:  false,
	}
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Ok converts r into Some(value), or None when r is an Err.
func (r Result[T, E]) Ok() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// Err converts r into Some(error), or None when r is an Ok.
func (r Result[T, E]) Err() Option[E] {
	if r.ok {
		return None[E]()
	}
	return Some(r.err)
}

// Get returns both payloads and whether r is an Ok. Only the payload of the
// held variant is meaningful.
func (r Result[T, E]) Get() (T, E, bool) {
	return r.value, r.err, r.ok
}

func (r Result[T, E]) Map(f func(T) T) Result[T, E] {
	if r.ok {
		return Ok[T, E](f(r.value))
	}
	return r
}

func (r Result[T, E]) MapErr(f func(E) E) Result[T, E] {
	if r.ok {
		return r
	}
	return Err[T](f(r.err))
}

// And returns other when r is Ok. An Err is returned unchanged.
func (r Result[T, E]) And(other Result[T, E]) Result[T, E] {
	if r.ok {
		return other
	}
	return r
}

func (r Result[T, E]) AndThen(f func(T) Result[T, E]) Result[T, E] {
	if r.ok {
		return f(r.value)
	}
	return r
}

// Or returns r when it is Ok, otherwise other.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return other
}

func (r Result[T, E]) OrElse(f func(E) Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return f(r.err)
}

func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		abort(wrongVariant(resultType, "Unwrap", "Err"), resultType, "Unwrap", "Err",
			errField(r.err))
	}
	return r.value
}

func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		abort(wrongVariant(resultType, "UnwrapErr", "Ok"), resultType, "UnwrapErr", "Ok",
			valueField(r.value))
	}
	return r.err
}

func (r Result[T, E]) UnwrapOr(defaultValue T) T {
	if r.ok {
		return r.value
	}
	return defaultValue
}

func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if r.ok {
		return r.value
	}
	return f(r.err)
}

func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		abort(msg, resultType, "Expect", "Err", errField(r.err))
	}
	return r.value
}

func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		abort(msg, resultType, "ExpectErr", "Ok", valueField(r.value))
	}
	return r.err
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

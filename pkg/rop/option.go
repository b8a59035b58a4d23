package rop

import "fmt"

// Option holds either a value (Some) or nothing (None). The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps value. It panics with a ConstructionError when value is nil or a
// nil pointer, map, channel or func.
func Some[T any](value T) Option[T] {
	o, err := TrySome(value)
	if err != nil {
		panic(err)
	}
	return o
}

// TrySome is Some returning the construction error instead of panicking.
func TrySome[T any](value T) (Option[T], error) {
	if IsNil(value) {
		return Option[T]{}, nilSomeError(value)
	}
	return Option[T]{value: value, some: true}, nil
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Map applies f to the value of a Some. f is not called on None.
func (o Option[T]) Map(f func(T) T) Option[T] {
	if o.some {
		return Some(f(o.value))
	}
	return o
}

// And returns other when o is Some, otherwise None.
func (o Option[T]) And(other Option[T]) Option[T] {
	if o.some {
		return other
	}
	return o
}

// AndThen returns f(value) for a Some. f is not called on None.
func (o Option[T]) AndThen(f func(T) Option[T]) Option[T] {
	if o.some {
		return f(o.value)
	}
	return o
}

// Or returns o when it is Some, otherwise other.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

// OrElse returns o when it is Some, otherwise f().
func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return f()
}

// Filter returns o when it is Some and predicate holds for its value.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.some && predicate(o.value) {
		return o
	}
	return None[T]()
}

func (o Option[T]) Unwrap() T {
	if !o.some {
		abort(wrongVariant(optionType, "Unwrap", "None"), optionType, "Unwrap", "None")
	}
	return o.value
}

func (o Option[T]) UnwrapOr(defaultValue T) T {
	if o.some {
		return o.value
	}
	return defaultValue
}

func (o Option[T]) UnwrapOrElse(fDefault func() T) T {
	if o.some {
		return o.value
	}
	return fDefault()
}

// Expect returns the value or aborts the process reporting msg.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		abort(msg, optionType, "Expect", "None")
	}
	return o.value
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

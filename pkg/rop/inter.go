package rop

// Unwrapper is the unwrap surface shared by Option and Result.
type Unwrapper[T any] interface {
	// Unwrap returns the payload or aborts the process
	Unwrap() T
	// UnwrapOr returns the payload or defaultValue
	UnwrapOr(defaultValue T) T
	// Expect returns the payload or aborts the process reporting msg
	Expect(msg string) T
}

var (
	_ Unwrapper[int] = Option[int]{}
	_ Unwrapper[int] = Result[int, error]{}
)

package chain

import (
	"github.com/ib-77/monads/pkg/rop"
	"github.com/ib-77/monads/pkg/rop/result"
)

// Chain wraps a rop.Result to enable fluent chaining
type Chain[T, E any] struct {
	result rop.Result[T, E]
}

// Start creates a new chain from a rop.Result
func Start[T, E any](r rop.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		result: r,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](value T) *Chain[T, E] {
	return &Chain[T, E]{
		result: rop.Ok[T, E](value),
	}
}

// Result returns the underlying rop.Result
func (c *Chain[T, E]) Result() rop.Result[T, E] {
	return c.result
}

// Then chains a function that returns rop.Result[U, E]
func Then[T, U, E any](c *Chain[T, E], onSuccess func(T) rop.Result[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		result: result.AndThen(c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T, error], tryOnSuccess func(T) (U, error)) *Chain[U, error] {
	return &Chain[U, error]{
		result: result.AndThen(c.result, func(v T) rop.Result[U, error] {
			return result.FromPair(tryOnSuccess(v))
		}),
	}
}

// Map chains a pure transformation function
func Map[T, U, E any](c *Chain[T, E], onSuccess func(T) U) *Chain[U, E] {
	return &Chain[U, E]{
		result: result.Map(c.result, onSuccess),
	}
}

func (c *Chain[T, E]) MapErr(onFailure func(E) E) *Chain[T, E] {
	return &Chain[T, E]{
		result: c.result.MapErr(onFailure),
	}
}

// Recover replaces a failure with whatever onFailure returns
func (c *Chain[T, E]) Recover(onFailure func(E) rop.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		result: c.result.OrElse(onFailure),
	}
}

// And keeps the first failure among the chain and required, or the last
// success when none failed.
func (c *Chain[T, E]) And(required ...rop.Result[T, E]) *Chain[T, E] {
	res := c.result
	for _, r := range required {
		res = res.And(r)
	}
	return &Chain[T, E]{result: res}
}

// Or keeps the first success among the chain and alternatives, or the last
// failure when none succeeded.
func (c *Chain[T, E]) Or(alternatives ...rop.Result[T, E]) *Chain[T, E] {
	res := c.result
	for _, r := range alternatives {
		res = res.Or(r)
	}
	return &Chain[T, E]{result: res}
}

// Ensure performs a side effect on success without changing the result
func (c *Chain[T, E]) Ensure(onSuccess func(T)) *Chain[T, E] {
	if v, _, ok := c.result.Get(); ok && onSuccess != nil {
		onSuccess(v)
	}
	return c
}

// EnsureErr performs a side effect on failure without changing the result
func (c *Chain[T, E]) EnsureErr(onFailure func(E)) *Chain[T, E] {
	if _, e, ok := c.result.Get(); !ok && onFailure != nil {
		onFailure(e)
	}
	return c
}

// Finally collapses the chain into a final value
func Finally[T, U, E any](c *Chain[T, E], onSuccess func(T) U, onFailure func(E) U) U {
	return result.Match(c.result, onSuccess, onFailure)
}

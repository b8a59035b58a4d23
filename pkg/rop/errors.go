package rop

import "github.com/zeebo/errs"

// ConstructionError is the class of errors raised when a container is built
// from an argument it must never hold.
var ConstructionError = errs.Class("rop")

func nilSomeError(value any) error {
	return ConstructionError.New("cannot create Some from nil value of type %T", value)
}

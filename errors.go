package mvar

import (
	"errors"
	"fmt"
)

// The kinds of contract violations reported by this package. Every error returned or
// panicked by this package is an [*Error] whose Kind is one of these, so callers can
// test for them with [errors.Is].
var (
	ErrDomain         = errors.New("parameter outside of domain")
	ErrAxis           = errors.New("direction not valid")
	ErrIndex          = errors.New("index not in mesh")
	ErrArity          = errors.New("dimensions mismatch")
	ErrRepresentation = errors.New("undefined geometry representation")
	ErrScalarExpected = errors.New("scalar multivariate expected")
	ErrInvalid        = errors.New("invalid multivariate")
)

// Error describes a violated contract.
type Error struct {
	// Op is the operation that detected the violation, e.g. "Eval".
	Op string
	// Kind is one of the Err* sentinels.
	Kind error
	// Detail is optional free-form context.
	Detail string
}

func newError(op string, kind error, format string, args ...any) *Error {
	return &Error{
		Op:     op,
		Kind:   kind,
		Detail: fmt.Sprintf(format, args...),
	}
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("mvar: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("mvar: %s: %s: %s", e.Op, e.Kind, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Catch converts a panic carrying an [*Error] into an error stored in *err. Panics of
// any other kind are propagated. It must be deferred directly:
//
//	func userFacing(mv *mvar.MV, params []float64) (c mvar.Coord, err error) {
//		defer mvar.Catch(&err)
//		return mv.Eval(params), nil
//	}
//
// Evaluation functions such as [MV.Eval] panic on contract violations because they run
// inside tight numerical loops on already validated geometry. Catch is for the few
// call sites that handle caller-supplied input.
func Catch(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(*Error); ok {
		*err = e
		return
	}
	panic(r)
}

package errors

import (
	"errors"
	"fmt"

	"github.com/sunholo/rinha/internal/ast"
)

// RuntimeError is the canonical error type for everything the
// interpreter can reject: malformed AST input, evaluation failures,
// and host I/O problems. The first error aborts evaluation; Rinha has
// no construct that could observe or recover one.
type RuntimeError struct {
	Code    string
	Message string
	Loc     ast.Location
}

func (e *RuntimeError) Error() string {
	return e.Code + ": " + e.Message
}

// AsRuntime attempts to extract a RuntimeError from an error chain
func AsRuntime(err error) (*RuntimeError, bool) {
	var re *RuntimeError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// UnknownKind reports an AST node whose kind discriminator is not in
// the closed set of thirteen term kinds
func UnknownKind(kind string, loc ast.Location) *RuntimeError {
	return &RuntimeError{
		Code:    DEC001,
		Message: fmt.Sprintf("unknown term kind %q", kind),
		Loc:     loc,
	}
}

// MissingField reports a term that lacks one of its required fields
func MissingField(kind, field string, loc ast.Location) *RuntimeError {
	return &RuntimeError{
		Code:    DEC002,
		Message: fmt.Sprintf("term %q is missing required field %q", kind, field),
		Loc:     loc,
	}
}

// InvalidInput reports input that could not be decoded as JSON
func InvalidInput(err error) *RuntimeError {
	return &RuntimeError{
		Code:    DEC003,
		Message: fmt.Sprintf("cannot decode AST: %v", err),
	}
}

// UndefinedVariable reports a variable lookup miss
func UndefinedVariable(name string, loc ast.Location) *RuntimeError {
	return &RuntimeError{
		Code:    RT001,
		Message: fmt.Sprintf("undefined variable %q", name),
		Loc:     loc,
	}
}

// TypeMismatch reports a value tag incompatible with the operation
func TypeMismatch(loc ast.Location, format string, args ...any) *RuntimeError {
	return &RuntimeError{
		Code:    RT002,
		Message: fmt.Sprintf(format, args...),
		Loc:     loc,
	}
}

// ArityMismatch reports a call whose argument count does not match
// the closure's parameter count
func ArityMismatch(want, got int, loc ast.Location) *RuntimeError {
	return &RuntimeError{
		Code:    RT003,
		Message: fmt.Sprintf("function expects %d arguments, got %d", want, got),
		Loc:     loc,
	}
}

// DivisionByZero reports division or remainder with a zero divisor
func DivisionByZero(loc ast.Location) *RuntimeError {
	return &RuntimeError{
		Code:    RT004,
		Message: "division by zero",
		Loc:     loc,
	}
}

// HostIO wraps an I/O failure from the host environment
func HostIO(err error, loc ast.Location) *RuntimeError {
	return &RuntimeError{
		Code:    IO001,
		Message: err.Error(),
		Loc:     loc,
	}
}

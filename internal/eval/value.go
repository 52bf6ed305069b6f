package eval

import (
	"strconv"

	"github.com/sunholo/rinha/internal/ast"
)

// Value represents a runtime value. Type returns the value's tag;
// String renders it exactly the way print does.
type Value interface {
	Type() string
	String() string
}

// IntValue represents an integer value
type IntValue struct {
	Value int64
}

func (i *IntValue) Type() string   { return "int" }
func (i *IntValue) String() string { return strconv.FormatInt(i.Value, 10) }

// StringValue represents a string value
type StringValue struct {
	Value string
}

func (s *StringValue) Type() string   { return "string" }
func (s *StringValue) String() string { return s.Value }

// BoolValue represents a boolean value
type BoolValue struct {
	Value bool
}

func (b *BoolValue) Type() string { return "boolean" }
func (b *BoolValue) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// TupleValue represents a pair of values. Nesting is arbitrary; both
// components are already fully evaluated.
type TupleValue struct {
	First  Value
	Second Value
}

func (t *TupleValue) Type() string { return "tuple" }
func (t *TupleValue) String() string {
	return "(" + t.First.String() + ", " + t.Second.String() + ")"
}

// ClosureValue represents a function value: a body term, the
// parameter names, and the environment captured at creation time
type ClosureValue struct {
	Params []string
	Body   ast.Term
	Env    *Environment
}

func (c *ClosureValue) Type() string   { return "closure" }
func (c *ClosureValue) String() string { return "<#closure>" }

package eval

import (
	"github.com/sunholo/rinha/internal/ast"
	"github.com/sunholo/rinha/internal/errors"
)

// applyBinary dispatches a binary operator over two already-evaluated
// operands. Both sides are always evaluated before this runs: And and
// Or do not short-circuit.
//
// Add is the one overloaded operator: int+int adds, string+string
// concatenates, and a mixed int/string pair renders the int in
// decimal and concatenates in source order. Every other operator
// rejects operands whose tags differ.
func applyBinary(op ast.BinaryOp, left, right Value, loc ast.Location) (Value, error) {
	if op == ast.OpAdd {
		return addValues(left, right, loc)
	}

	if left.Type() != right.Type() {
		return nil, errors.TypeMismatch(loc, "invalid operator %s for operands of type %s and %s",
			op.Symbol(), left.Type(), right.Type())
	}

	switch op {
	case ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpRem:
		l, r, err := intOperands(op, left, right, loc)
		if err != nil {
			return nil, err
		}
		switch op {
		case ast.OpSub:
			return &IntValue{Value: l - r}, nil
		case ast.OpMul:
			return &IntValue{Value: l * r}, nil
		case ast.OpDiv:
			if r == 0 {
				return nil, errors.DivisionByZero(loc)
			}
			return &IntValue{Value: floorDiv(l, r)}, nil
		default:
			if r == 0 {
				return nil, errors.DivisionByZero(loc)
			}
			return &IntValue{Value: floorMod(l, r)}, nil
		}

	case ast.OpLt, ast.OpGt, ast.OpLte, ast.OpGte:
		l, r, err := intOperands(op, left, right, loc)
		if err != nil {
			return nil, err
		}
		switch op {
		case ast.OpLt:
			return &BoolValue{Value: l < r}, nil
		case ast.OpGt:
			return &BoolValue{Value: l > r}, nil
		case ast.OpLte:
			return &BoolValue{Value: l <= r}, nil
		default:
			return &BoolValue{Value: l >= r}, nil
		}

	case ast.OpEq, ast.OpNeq:
		equal, err := valuesEqual(op, left, right, loc)
		if err != nil {
			return nil, err
		}
		if op == ast.OpNeq {
			equal = !equal
		}
		return &BoolValue{Value: equal}, nil

	case ast.OpAnd, ast.OpOr:
		l, lok := left.(*BoolValue)
		r, rok := right.(*BoolValue)
		if !lok || !rok {
			return nil, errors.TypeMismatch(loc, "invalid operator %s for operands of type %s and %s",
				op.Symbol(), left.Type(), right.Type())
		}
		if op == ast.OpAnd {
			return &BoolValue{Value: l.Value && r.Value}, nil
		}
		return &BoolValue{Value: l.Value || r.Value}, nil

	default:
		return nil, errors.TypeMismatch(loc, "unknown operator %s", string(op))
	}
}

// addValues implements the Add overload. Booleans, tuples and
// closures are rejected on either side.
func addValues(left, right Value, loc ast.Location) (Value, error) {
	if !addable(left) || !addable(right) {
		return nil, errors.TypeMismatch(loc, "invalid operator + for operands of type %s and %s",
			left.Type(), right.Type())
	}

	if l, ok := left.(*IntValue); ok {
		if r, ok := right.(*IntValue); ok {
			return &IntValue{Value: l.Value + r.Value}, nil
		}
	}

	// At least one side is a string: render the other as a scalar and
	// concatenate in source order.
	return &StringValue{Value: left.String() + right.String()}, nil
}

func addable(v Value) bool {
	switch v.(type) {
	case *IntValue, *StringValue:
		return true
	default:
		return false
	}
}

func intOperands(op ast.BinaryOp, left, right Value, loc ast.Location) (int64, int64, error) {
	l, lok := left.(*IntValue)
	r, rok := right.(*IntValue)
	if !lok || !rok {
		return 0, 0, errors.TypeMismatch(loc, "invalid operator %s for operands of type %s and %s",
			op.Symbol(), left.Type(), right.Type())
	}
	return l.Value, r.Value, nil
}

// valuesEqual compares two same-tagged values structurally. Only int
// and string support equality.
func valuesEqual(op ast.BinaryOp, left, right Value, loc ast.Location) (bool, error) {
	switch l := left.(type) {
	case *IntValue:
		return l.Value == right.(*IntValue).Value, nil
	case *StringValue:
		return l.Value == right.(*StringValue).Value, nil
	default:
		return false, errors.TypeMismatch(loc, "invalid operator %s for operands of type %s and %s",
			op.Symbol(), left.Type(), right.Type())
	}
}

// floorDiv rounds the quotient toward negative infinity, matching the
// reference semantics
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod returns the remainder paired with floorDiv: the result's
// sign follows the divisor
func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

package eval

import (
	"testing"

	"github.com/sunholo/rinha/internal/ast"
	"github.com/sunholo/rinha/internal/errors"
)

func TestApplyBinary(t *testing.T) {
	intv := func(v int64) Value { return &IntValue{Value: v} }
	strv := func(v string) Value { return &StringValue{Value: v} }
	boolv := func(v bool) Value { return &BoolValue{Value: v} }

	tests := []struct {
		name     string
		op       ast.BinaryOp
		left     Value
		right    Value
		want     string // rendered result
		wantCode string // expected error code, empty = success
	}{
		// Add overload
		{"add ints", ast.OpAdd, intv(10), intv(20), "30", ""},
		{"add strings", ast.OpAdd, strv("foo"), strv("bar"), "foobar", ""},
		{"add int then string", ast.OpAdd, intv(7), strv("!"), "7!", ""},
		{"add string then int", ast.OpAdd, strv("count="), intv(7), "count=7", ""},
		{"add negative int to string", ast.OpAdd, intv(-3), strv("x"), "-3x", ""},
		{"add bool left", ast.OpAdd, boolv(true), intv(1), "", errors.RT002},
		{"add bool right", ast.OpAdd, intv(1), boolv(true), "", errors.RT002},
		{"add tuple", ast.OpAdd, &TupleValue{First: intv(1), Second: intv(2)}, intv(1), "", errors.RT002},
		{"add closure", ast.OpAdd, strv("s"), &ClosureValue{}, "", errors.RT002},

		// Arithmetic
		{"sub", ast.OpSub, intv(10), intv(3), "7", ""},
		{"mul", ast.OpMul, intv(6), intv(7), "42", ""},
		{"div truncates", ast.OpDiv, intv(7), intv(2), "3", ""},
		{"div exact", ast.OpDiv, intv(90), intv(2), "45", ""},
		{"div floors toward negative infinity", ast.OpDiv, intv(-7), intv(2), "-4", ""},
		{"rem", ast.OpRem, intv(7), intv(2), "1", ""},
		{"rem sign follows divisor", ast.OpRem, intv(-7), intv(2), "1", ""},
		{"rem negative divisor", ast.OpRem, intv(7), intv(-2), "-1", ""},
		{"div by zero", ast.OpDiv, intv(10), intv(0), "", errors.RT004},
		{"rem by zero", ast.OpRem, intv(10), intv(0), "", errors.RT004},
		{"sub on strings", ast.OpSub, strv("a"), strv("b"), "", errors.RT002},
		{"mul on bools", ast.OpMul, boolv(true), boolv(true), "", errors.RT002},

		// Ordering
		{"lt true", ast.OpLt, intv(1), intv(2), "true", ""},
		{"lt false", ast.OpLt, intv(2), intv(2), "false", ""},
		{"gt", ast.OpGt, intv(3), intv(2), "true", ""},
		{"lte equal", ast.OpLte, intv(2), intv(2), "true", ""},
		{"gte", ast.OpGte, intv(1), intv(2), "false", ""},
		{"lt on strings", ast.OpLt, strv("a"), strv("b"), "", errors.RT002},

		// Equality
		{"eq ints", ast.OpEq, intv(1), intv(1), "true", ""},
		{"eq ints false", ast.OpEq, intv(1), intv(2), "false", ""},
		{"eq strings", ast.OpEq, strv("a"), strv("a"), "true", ""},
		{"neq strings", ast.OpNeq, strv("a"), strv("b"), "true", ""},
		{"neq ints false", ast.OpNeq, intv(1), intv(1), "false", ""},
		{"eq bools rejected", ast.OpEq, boolv(true), boolv(true), "", errors.RT002},
		{"eq tuples rejected", ast.OpEq,
			&TupleValue{First: intv(1), Second: intv(2)},
			&TupleValue{First: intv(1), Second: intv(2)}, "", errors.RT002},

		// Logical, strict
		{"and", ast.OpAnd, boolv(true), boolv(false), "false", ""},
		{"or", ast.OpOr, boolv(false), boolv(true), "true", ""},
		{"and on ints", ast.OpAnd, intv(1), intv(1), "", errors.RT002},

		// Tag-mismatch rule for everything but Add
		{"sub mixed tags", ast.OpSub, intv(1), strv("1"), "", errors.RT002},
		{"eq mixed tags", ast.OpEq, intv(1), strv("1"), "", errors.RT002},
		{"or mixed tags", ast.OpOr, boolv(true), intv(1), "", errors.RT002},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := applyBinary(tt.op, tt.left, tt.right, ast.Location{})
			if tt.wantCode != "" {
				re, ok := errors.AsRuntime(err)
				if !ok {
					t.Fatalf("expected %s error, got %v", tt.wantCode, err)
				}
				if re.Code != tt.wantCode {
					t.Errorf("error code = %s, want %s", re.Code, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("result = %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestAddCommutativity(t *testing.T) {
	a := &IntValue{Value: 3}
	b := &IntValue{Value: 4}

	ab, _ := applyBinary(ast.OpAdd, a, b, ast.Location{})
	ba, _ := applyBinary(ast.OpAdd, b, a, ast.Location{})
	if ab.(*IntValue).Value != ba.(*IntValue).Value {
		t.Error("int addition must be commutative")
	}

	// Mixed int/string concatenates in source order, so it is not
	s := &StringValue{Value: "x"}
	sa, _ := applyBinary(ast.OpAdd, s, a, ast.Location{})
	as, _ := applyBinary(ast.OpAdd, a, s, ast.Location{})
	if sa.String() != "x3" || as.String() != "3x" {
		t.Errorf("mixed add order wrong: %q / %q", sa.String(), as.String())
	}
}

func TestFloorDivMod(t *testing.T) {
	tests := []struct {
		a, b, q, r int64
	}{
		{7, 2, 3, 1},
		{-7, 2, -4, 1},
		{7, -2, -4, -1},
		{-7, -2, 3, -1},
		{6, 3, 2, 0},
		{-6, 3, -2, 0},
	}
	for _, tt := range tests {
		if q := floorDiv(tt.a, tt.b); q != tt.q {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, q, tt.q)
		}
		if r := floorMod(tt.a, tt.b); r != tt.r {
			t.Errorf("floorMod(%d, %d) = %d, want %d", tt.a, tt.b, r, tt.r)
		}
	}
}

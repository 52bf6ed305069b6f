// Package eval implements the Rinha term reducer: a direct-style
// recursive evaluator over the decoded AST, with lexically scoped
// closures and a typed binary-operator dispatcher.
package eval

import (
	"fmt"
	"io"

	"github.com/sunholo/rinha/internal/ast"
	"github.com/sunholo/rinha/internal/errors"
)

// Evaluator reduces terms to values. The only side effect it performs
// is writing print output to out.
type Evaluator struct {
	out io.Writer
}

// New creates an evaluator writing print output to out
func New(out io.Writer) *Evaluator {
	return &Evaluator{out: out}
}

// EvalFile evaluates a file's top-level expression in an empty
// environment
func (e *Evaluator) EvalFile(file *ast.File) (Value, error) {
	return e.Eval(file.Expression, NewEnvironment())
}

// Eval reduces a term to a value under env. It never mutates env;
// Let and Call extend it with child scopes.
func (e *Evaluator) Eval(term ast.Term, env *Environment) (Value, error) {
	switch t := term.(type) {
	case *ast.Int:
		return &IntValue{Value: t.Value}, nil

	case *ast.Str:
		return &StringValue{Value: t.Value}, nil

	case *ast.Bool:
		return &BoolValue{Value: t.Value}, nil

	case *ast.Var:
		value, ok := env.Get(t.Text)
		if !ok {
			return nil, errors.UndefinedVariable(t.Text, t.Loc)
		}
		return value, nil

	case *ast.Tuple:
		first, err := e.Eval(t.First, env)
		if err != nil {
			return nil, err
		}
		second, err := e.Eval(t.Second, env)
		if err != nil {
			return nil, err
		}
		return &TupleValue{First: first, Second: second}, nil

	case *ast.First:
		return e.evalProjection(t.Value, env, t.Loc, "first", func(tup *TupleValue) Value {
			return tup.First
		})

	case *ast.Second:
		return e.evalProjection(t.Value, env, t.Loc, "second", func(tup *TupleValue) Value {
			return tup.Second
		})

	case *ast.If:
		condition, err := e.Eval(t.Condition, env)
		if err != nil {
			return nil, err
		}
		boolVal, ok := condition.(*BoolValue)
		if !ok {
			return nil, errors.TypeMismatch(t.Loc, "if condition must be boolean, got %s", condition.Type())
		}
		if boolVal.Value {
			return e.Eval(t.Then, env)
		}
		return e.Eval(t.Otherwise, env)

	case *ast.Let:
		// The value is evaluated inside the fresh scope so a closure
		// it produces captures the scope that is about to receive its
		// own name. That is what makes let-bound recursion resolve.
		scope := env.NewChildEnvironment()
		value, err := e.Eval(t.Value, scope)
		if err != nil {
			return nil, err
		}
		scope.Set(t.Name.Text, value)
		return e.Eval(t.Next, scope)

	case *ast.Function:
		params := make([]string, len(t.Parameters))
		for i, p := range t.Parameters {
			params[i] = p.Text
		}
		return &ClosureValue{Params: params, Body: t.Value, Env: env}, nil

	case *ast.Call:
		return e.evalCall(t, env)

	case *ast.Binary:
		left, err := e.Eval(t.Lhs, env)
		if err != nil {
			return nil, err
		}
		right, err := e.Eval(t.Rhs, env)
		if err != nil {
			return nil, err
		}
		return applyBinary(t.Op, left, right, t.Loc)

	case *ast.Print:
		value, err := e.Eval(t.Value, env)
		if err != nil {
			return nil, err
		}
		if _, err := fmt.Fprintln(e.out, value.String()); err != nil {
			return nil, errors.HostIO(err, t.Loc)
		}
		return value, nil

	default:
		return nil, errors.TypeMismatch(term.Position(), "cannot evaluate term %T", term)
	}
}

// evalProjection evaluates a First/Second operand and projects one
// component out of the resulting tuple
func (e *Evaluator) evalProjection(operand ast.Term, env *Environment, loc ast.Location, name string, project func(*TupleValue) Value) (Value, error) {
	value, err := e.Eval(operand, env)
	if err != nil {
		return nil, err
	}
	tup, ok := value.(*TupleValue)
	if !ok {
		return nil, errors.TypeMismatch(loc, "%s expects a tuple, got %s", name, value.Type())
	}
	return project(tup), nil
}

// evalCall applies a closure: callee and arguments are evaluated in
// the caller's environment, then the body runs in a child scope of
// the closure's captured environment with the parameters bound.
// Caller bindings never leak into the call environment.
func (e *Evaluator) evalCall(call *ast.Call, env *Environment) (Value, error) {
	callee, err := e.Eval(call.Callee, env)
	if err != nil {
		return nil, err
	}

	closure, ok := callee.(*ClosureValue)
	if !ok {
		return nil, errors.TypeMismatch(call.Loc, "cannot call non-closure value of type %s", callee.Type())
	}

	if len(closure.Params) != len(call.Arguments) {
		return nil, errors.ArityMismatch(len(closure.Params), len(call.Arguments), call.Loc)
	}

	args := make([]Value, len(call.Arguments))
	for i, arg := range call.Arguments {
		value, err := e.Eval(arg, env)
		if err != nil {
			return nil, err
		}
		args[i] = value
	}

	callEnv := closure.Env.NewChildEnvironment()
	for i, param := range closure.Params {
		callEnv.Set(param, args[i])
	}

	return e.Eval(closure.Body, callEnv)
}

// Package parser decodes the JSON-encoded Rinha AST into ast terms.
// Rinha programs arrive pre-parsed, so this is the whole front end:
// a two-phase json.RawMessage decode dispatched on the "kind"
// discriminator, validating the closed set of term kinds and their
// required fields.
package parser

import (
	"encoding/json"

	"github.com/sunholo/rinha/internal/ast"
	"github.com/sunholo/rinha/internal/errors"
)

// DecodeFile decodes a complete AST file: {name, expression, location}
func DecodeFile(data []byte) (*ast.File, error) {
	var raw struct {
		Name       string          `json:"name"`
		Expression json.RawMessage `json:"expression"`
		Location   ast.Location    `json:"location"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.InvalidInput(err)
	}
	if raw.Expression == nil {
		return nil, errors.MissingField("File", "expression", raw.Location)
	}

	expr, err := DecodeTerm(raw.Expression)
	if err != nil {
		return nil, err
	}
	return &ast.File{Name: raw.Name, Expression: expr, Loc: raw.Location}, nil
}

// DecodeTerm decodes a single term, dispatching on its kind
func DecodeTerm(data []byte) (ast.Term, error) {
	var head struct {
		Kind     string       `json:"kind"`
		Location ast.Location `json:"location"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, errors.InvalidInput(err)
	}
	if head.Kind == "" {
		return nil, errors.MissingField("Term", "kind", head.Location)
	}

	loc := head.Location

	switch head.Kind {
	case "Int":
		var raw struct {
			Value *int64 `json:"value"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.InvalidInput(err)
		}
		if raw.Value == nil {
			return nil, errors.MissingField(head.Kind, "value", loc)
		}
		return &ast.Int{Value: *raw.Value, Loc: loc}, nil

	case "Str":
		var raw struct {
			Value *string `json:"value"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.InvalidInput(err)
		}
		if raw.Value == nil {
			return nil, errors.MissingField(head.Kind, "value", loc)
		}
		return &ast.Str{Value: *raw.Value, Loc: loc}, nil

	case "Bool":
		var raw struct {
			Value *bool `json:"value"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.InvalidInput(err)
		}
		if raw.Value == nil {
			return nil, errors.MissingField(head.Kind, "value", loc)
		}
		return &ast.Bool{Value: *raw.Value, Loc: loc}, nil

	case "Var":
		var raw struct {
			Text *string `json:"text"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.InvalidInput(err)
		}
		if raw.Text == nil {
			return nil, errors.MissingField(head.Kind, "text", loc)
		}
		return &ast.Var{Text: *raw.Text, Loc: loc}, nil

	case "Tuple":
		var raw struct {
			First  json.RawMessage `json:"first"`
			Second json.RawMessage `json:"second"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.InvalidInput(err)
		}
		first, err := decodeChild(head.Kind, "first", raw.First, loc)
		if err != nil {
			return nil, err
		}
		second, err := decodeChild(head.Kind, "second", raw.Second, loc)
		if err != nil {
			return nil, err
		}
		return &ast.Tuple{First: first, Second: second, Loc: loc}, nil

	case "First":
		value, err := decodeValueField(head.Kind, data, loc)
		if err != nil {
			return nil, err
		}
		return &ast.First{Value: value, Loc: loc}, nil

	case "Second":
		value, err := decodeValueField(head.Kind, data, loc)
		if err != nil {
			return nil, err
		}
		return &ast.Second{Value: value, Loc: loc}, nil

	case "Print":
		value, err := decodeValueField(head.Kind, data, loc)
		if err != nil {
			return nil, err
		}
		return &ast.Print{Value: value, Loc: loc}, nil

	case "If":
		var raw struct {
			Condition json.RawMessage `json:"condition"`
			Then      json.RawMessage `json:"then"`
			Otherwise json.RawMessage `json:"otherwise"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.InvalidInput(err)
		}
		condition, err := decodeChild(head.Kind, "condition", raw.Condition, loc)
		if err != nil {
			return nil, err
		}
		then, err := decodeChild(head.Kind, "then", raw.Then, loc)
		if err != nil {
			return nil, err
		}
		otherwise, err := decodeChild(head.Kind, "otherwise", raw.Otherwise, loc)
		if err != nil {
			return nil, err
		}
		return &ast.If{Condition: condition, Then: then, Otherwise: otherwise, Loc: loc}, nil

	case "Let":
		var raw struct {
			Name  *ast.Parameter  `json:"name"`
			Value json.RawMessage `json:"value"`
			Next  json.RawMessage `json:"next"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.InvalidInput(err)
		}
		if raw.Name == nil {
			return nil, errors.MissingField(head.Kind, "name", loc)
		}
		value, err := decodeChild(head.Kind, "value", raw.Value, loc)
		if err != nil {
			return nil, err
		}
		next, err := decodeChild(head.Kind, "next", raw.Next, loc)
		if err != nil {
			return nil, err
		}
		return &ast.Let{Name: *raw.Name, Value: value, Next: next, Loc: loc}, nil

	case "Function":
		var raw struct {
			Parameters []ast.Parameter `json:"parameters"`
			Value      json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.InvalidInput(err)
		}
		if raw.Parameters == nil {
			return nil, errors.MissingField(head.Kind, "parameters", loc)
		}
		body, err := decodeChild(head.Kind, "value", raw.Value, loc)
		if err != nil {
			return nil, err
		}
		return &ast.Function{Parameters: raw.Parameters, Value: body, Loc: loc}, nil

	case "Call":
		var raw struct {
			Callee    json.RawMessage   `json:"callee"`
			Arguments []json.RawMessage `json:"arguments"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.InvalidInput(err)
		}
		if raw.Arguments == nil {
			return nil, errors.MissingField(head.Kind, "arguments", loc)
		}
		callee, err := decodeChild(head.Kind, "callee", raw.Callee, loc)
		if err != nil {
			return nil, err
		}
		args := make([]ast.Term, len(raw.Arguments))
		for i, a := range raw.Arguments {
			arg, err := decodeChild(head.Kind, "arguments", a, loc)
			if err != nil {
				return nil, err
			}
			args[i] = arg
		}
		return &ast.Call{Callee: callee, Arguments: args, Loc: loc}, nil

	case "Binary":
		var raw struct {
			Lhs json.RawMessage `json:"lhs"`
			Op  string          `json:"op"`
			Rhs json.RawMessage `json:"rhs"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.InvalidInput(err)
		}
		op := ast.BinaryOp(raw.Op)
		if !op.Valid() {
			return nil, errors.MissingField(head.Kind, "op", loc)
		}
		lhs, err := decodeChild(head.Kind, "lhs", raw.Lhs, loc)
		if err != nil {
			return nil, err
		}
		rhs, err := decodeChild(head.Kind, "rhs", raw.Rhs, loc)
		if err != nil {
			return nil, err
		}
		return &ast.Binary{Lhs: lhs, Op: op, Rhs: rhs, Loc: loc}, nil

	default:
		return nil, errors.UnknownKind(head.Kind, loc)
	}
}

// decodeValueField handles the single-operand kinds (First, Second,
// Print), which all carry their operand under "value"
func decodeValueField(kind string, data []byte, loc ast.Location) (ast.Term, error) {
	var raw struct {
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.InvalidInput(err)
	}
	return decodeChild(kind, "value", raw.Value, loc)
}

func decodeChild(kind, field string, data json.RawMessage, loc ast.Location) (ast.Term, error) {
	if data == nil {
		return nil, errors.MissingField(kind, field, loc)
	}
	return DecodeTerm(data)
}

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders terms back as readable Rinha-like source. The output
// is for diagnostics and the REPL echo, not for re-parsing.

func (i *Int) String() string { return strconv.FormatInt(i.Value, 10) }

func (s *Str) String() string { return strconv.Quote(s.Value) }

func (b *Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

func (v *Var) String() string { return v.Text }

func (t *Tuple) String() string {
	return fmt.Sprintf("(%s, %s)", t.First.String(), t.Second.String())
}

func (f *First) String() string { return fmt.Sprintf("first(%s)", f.Value.String()) }

func (s *Second) String() string { return fmt.Sprintf("second(%s)", s.Value.String()) }

func (p *Print) String() string { return fmt.Sprintf("print(%s)", p.Value.String()) }

func (i *If) String() string {
	return fmt.Sprintf("if (%s) { %s } else { %s }",
		i.Condition.String(), i.Then.String(), i.Otherwise.String())
}

func (l *Let) String() string {
	return fmt.Sprintf("let %s = %s; %s", l.Name.Text, l.Value.String(), l.Next.String())
}

func (f *Function) String() string {
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.Text
	}
	return fmt.Sprintf("fn (%s) => %s", strings.Join(params, ", "), f.Value.String())
}

func (c *Call) String() string {
	args := make([]string, len(c.Arguments))
	for i, a := range c.Arguments {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Callee.String(), strings.Join(args, ", "))
}

func (b *Binary) String() string {
	return fmt.Sprintf("%s %s %s", b.Lhs.String(), b.Op.Symbol(), b.Rhs.String())
}

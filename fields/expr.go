package fields

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/seriate/go-seriate/ir"
)

// ExprField computes its value by evaluating an expression against the
// whole object, bound as "obj" in the expression environment:
//
//	f, err := fields.NewExprField(`obj.First + " " + obj.Last`)
//
// The source defaults to WholeObject since no single attribute backs
// the value. The result is flattened like any other value.
type ExprField struct {
	ValueField
	src  string
	prog *vm.Program
}

func NewExprField(src string, opts ...Option) (*ExprField, error) {
	prog, err := expr.Compile(src)
	if err != nil {
		return nil, err
	}
	f := &ExprField{src: src, prog: prog}
	f.meta.Source = WholeObject
	for _, opt := range opts {
		opt(&f.meta)
	}
	return f, nil
}

func (f *ExprField) Convert(cx *Context, v any) (*ir.Node, error) {
	env := map[string]any{"obj": v}
	res, err := expr.Run(f.prog, env)
	if err != nil {
		return nil, err
	}
	if f.meta.Convert != nil {
		return f.meta.Convert(cx, res)
	}
	return Flatten(cx, res)
}

func (f *ExprField) ConvertField(cx *Context) (*ir.Node, error) {
	return f.Convert(cx, cx.Obj)
}

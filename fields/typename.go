package fields

import (
	"github.com/seriate/go-seriate/ir"
)

// TypeNameField emits the object's canonical type identifier as a
// string scalar, ignoring the attribute value entirely. It tags output
// with provenance without consuming a real attribute.
type TypeNameField struct {
	ValueField
}

func NewTypeNameField(opts ...Option) *TypeNameField {
	f := &TypeNameField{}
	for _, opt := range opts {
		opt(&f.meta)
	}
	return f
}

func (f *TypeNameField) ConvertField(cx *Context) (*ir.Node, error) {
	return ir.FromString(cx.Provider.TypeName(cx.Obj)), nil
}

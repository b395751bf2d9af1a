package fields

import (
	"github.com/seriate/go-seriate/ir"
)

// AttributeField converts a typed model attribute. The raw storage
// value is read through the provider, bypassing any descriptor-style
// attribute re-lookup so backing stores are not hit twice. Protected
// values pass through; everything else takes the provider's canonical
// string form.
type AttributeField struct {
	ValueField
}

func NewAttributeField(opts ...Option) *AttributeField {
	f := &AttributeField{}
	for _, opt := range opts {
		opt(&f.meta)
	}
	return f
}

func (f *AttributeField) ConvertField(cx *Context) (*ir.Node, error) {
	v, err := cx.Provider.Value(cx.Obj, cx.FieldName)
	if err != nil {
		// FieldNotFound propagates: an unknown attribute name is a
		// field declaration error, not a data condition.
		return nil, err
	}
	if f.meta.Convert != nil {
		return f.meta.Convert(cx, v)
	}
	if n, ok := Scalar(v); ok {
		return n, nil
	}
	return ir.FromString(cx.Provider.CanonicalString(v)), nil
}

func (f *AttributeField) Attributes(cx *Context) (map[string]string, error) {
	t, err := cx.Provider.FieldType(cx.Obj, cx.FieldName)
	if err != nil {
		return nil, err
	}
	return map[string]string{"type": t}, nil
}

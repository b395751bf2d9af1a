package serializer

import (
	"errors"

	"github.com/seriate/go-seriate/fields"
	"github.com/seriate/go-seriate/ir"
	"github.com/seriate/go-seriate/model"
)

// Field adapts the serializer into a field descriptor, so it can be
// registered on another serializer and convert related objects with
// its own field set.
func (s *Serializer) Field(opts ...fields.Option) fields.Field {
	f := &serializerField{s: s}
	for _, opt := range opts {
		opt(&f.meta)
	}
	return f
}

type serializerField struct {
	meta fields.Meta
	s    *Serializer
}

func (f *serializerField) Meta() *fields.Meta { return &f.meta }

func (f *serializerField) Convert(cx *fields.Context, v any) (*ir.Node, error) {
	if f.meta.Convert != nil {
		return f.meta.Convert(cx, v)
	}
	return f.s.convertValue(cx, v)
}

// ConvertField resolves the named relation when there is one, so multi
// valued relations nest as arrays of objects; plain attributes fall
// back to a generic read.
func (f *serializerField) ConvertField(cx *fields.Context) (*ir.Node, error) {
	rel, err := cx.Provider.Relation(cx.Obj, cx.FieldName)
	if err != nil {
		if !errors.Is(err, model.ErrNotRelation) {
			return nil, err
		}
		v, err := cx.Provider.Value(cx.Obj, cx.FieldName)
		if err != nil {
			return nil, err
		}
		return f.Convert(cx, v)
	}
	switch rel.Cardinality {
	case model.Multi:
		values := make([]*ir.Node, 0, len(rel.Members))
		for _, m := range rel.Members {
			n, err := f.Convert(cx, m)
			if err != nil {
				return nil, err
			}
			values = append(values, n)
		}
		return ir.FromSlice(values), nil
	default:
		return f.Convert(cx, rel.Object)
	}
}

func (f *serializerField) Attributes(cx *fields.Context) (map[string]string, error) {
	return nil, nil
}

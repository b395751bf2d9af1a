package fields

import (
	"errors"

	"github.com/seriate/go-seriate/ir"
	"github.com/seriate/go-seriate/model"
)

// RelationField converts single and multi valued relations. Multi
// relations convert each resolved member independently into an array;
// single relations convert the related object directly.
type RelationField struct {
	ValueField
}

func NewRelationField(opts ...Option) *RelationField {
	f := &RelationField{}
	for _, opt := range opts {
		opt(&f.meta)
	}
	return f
}

func (f *RelationField) ConvertField(cx *Context) (*ir.Node, error) {
	return convertRelation(cx, f)
}

func (f *RelationField) Attributes(cx *Context) (map[string]string, error) {
	return relationAttributes(cx)
}

func convertRelation(cx *Context, f Field) (*ir.Node, error) {
	rel, err := cx.Provider.Relation(cx.Obj, cx.FieldName)
	if err != nil {
		return nil, err
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

func relationAttributes(cx *Context) (map[string]string, error) {
	rel, err := cx.Provider.Relation(cx.Obj, cx.FieldName)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"rel": rel.Cardinality.String(),
		"to":  rel.TargetType,
	}, nil
}

// PrimaryKeyRelationField projects a relation to its primary key. Its
// value conversion is the identity on the key, overridable via
// WithConvert to project keys further, e.g. into URLs.
type PrimaryKeyRelationField struct {
	RelationField
}

func NewPrimaryKeyRelationField(opts ...Option) *PrimaryKeyRelationField {
	f := &PrimaryKeyRelationField{}
	for _, opt := range opts {
		opt(&f.meta)
	}
	return f
}

// ConvertField prefers the provider's precomputed serializable scalar,
// avoiding a fetch of the related object. Only a FieldNotFound from the
// fast path falls through to manual relation resolution; a lookup
// failure on the fallback path is re-raised unchanged.
func (f *PrimaryKeyRelationField) ConvertField(cx *Context) (*ir.Node, error) {
	v, err := cx.Provider.SerializableValue(cx.Obj, cx.FieldName)
	if err == nil {
		return f.Convert(cx, v)
	}
	if !errors.Is(err, model.ErrFieldNotFound) {
		return nil, err
	}

	rel, err := cx.Provider.Relation(cx.Obj, cx.FieldName)
	if err != nil {
		return nil, err
	}
	switch rel.Cardinality {
	case model.Multi:
		values := make([]*ir.Node, 0, len(rel.Members))
		for _, m := range rel.Members {
			pk, err := cx.Provider.PrimaryKey(m)
			if err != nil {
				return nil, err
			}
			n, err := f.Convert(cx, pk)
			if err != nil {
				return nil, err
			}
			values = append(values, n)
		}
		return ir.FromSlice(values), nil
	default:
		if rel.Object == nil {
			return ir.Null(), nil
		}
		pk, err := cx.Provider.PrimaryKey(rel.Object)
		if err != nil {
			return nil, err
		}
		return f.Convert(cx, pk)
	}
}

// NaturalKeyRelationField projects a related object to its natural key
// when it exposes one, else passes the object through generic
// flattening, which degrades to the universal string form.
type NaturalKeyRelationField struct {
	RelationField
}

func NewNaturalKeyRelationField(opts ...Option) *NaturalKeyRelationField {
	f := &NaturalKeyRelationField{}
	for _, opt := range opts {
		opt(&f.meta)
	}
	return f
}

func (f *NaturalKeyRelationField) Convert(cx *Context, v any) (*ir.Node, error) {
	if f.meta.Convert != nil {
		return f.meta.Convert(cx, v)
	}
	if key, ok := cx.Provider.NaturalKey(v); ok {
		return Flatten(cx, key)
	}
	return Flatten(cx, v)
}

func (f *NaturalKeyRelationField) ConvertField(cx *Context) (*ir.Node, error) {
	return convertRelation(cx, f)
}

// PrimaryKeyOrNaturalKeyField serializes a relation to its natural key
// when the pass asks for natural keys and the related type exposes
// them, and to its primary key otherwise.
type PrimaryKeyOrNaturalKeyField struct {
	RelationField
	pk PrimaryKeyRelationField
	nk NaturalKeyRelationField
}

func NewPrimaryKeyOrNaturalKeyField(opts ...Option) *PrimaryKeyOrNaturalKeyField {
	f := &PrimaryKeyOrNaturalKeyField{}
	for _, opt := range opts {
		opt(&f.meta)
	}
	// both delegates share the composite's declaration, so overrides
	// like WithConvert apply on either path
	f.pk.meta = f.meta
	f.nk.meta = f.meta
	return f
}

func (f *PrimaryKeyOrNaturalKeyField) ConvertField(cx *Context) (*ir.Node, error) {
	if cx.NaturalKeys {
		return f.nk.ConvertField(cx)
	}
	return f.pk.ConvertField(cx)
}

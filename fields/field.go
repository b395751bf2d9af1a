package fields

import (
	"github.com/seriate/go-seriate/ir"
)

// WholeObject is the source sentinel meaning "pass the whole object,
// not an attribute".
const WholeObject = "*"

// ConvertFunc replaces a field's default value conversion strategy.
type ConvertFunc func(cx *Context, v any) (*ir.Node, error)

// Meta holds the declaration-time attributes shared by all fields.
type Meta struct {
	// Source optionally names which attribute of the object to read
	// instead of the declared field name. WholeObject bypasses
	// attribute lookup entirely.
	Source string

	// Label is an optional display name used as the output key. It does
	// not affect conversion.
	Label string

	// Convert optionally overrides the field's value conversion.
	Convert ConvertFunc
}

// Field converts one named aspect of a source object into an ir.Node.
// Implementations must be stateless across calls: everything per-call
// comes in through the Context.
type Field interface {
	// Meta returns the field's declaration-time attributes.
	Meta() *Meta

	// Convert flattens a single value.
	Convert(cx *Context, v any) (*ir.Node, error)

	// ConvertField reads cx.FieldName off cx.Obj and converts it.
	ConvertField(cx *Context) (*ir.Node, error)

	// Attributes returns descriptive field metadata for annotated
	// output. It is a side channel: never part of the value tree.
	Attributes(cx *Context) (map[string]string, error)
}

// ConvertFieldEntry is the conversion entry point used by serializers.
// cx.FieldName holds the declared field name; the effective name is the
// field's Source when set. A WholeObject source converts cx.Obj itself,
// which is how computed fields avoid consuming a real attribute.
func ConvertFieldEntry(f Field, cx *Context) (*ir.Node, error) {
	m := f.Meta()
	if m.Source == WholeObject {
		return f.Convert(cx, cx.Obj)
	}
	if m.Source != "" {
		cx = cx.WithFieldName(m.Source)
	}
	return f.ConvertField(cx)
}

// Option configures a field's Meta at construction time.
type Option func(*Meta)

func WithSource(source string) Option {
	return func(m *Meta) { m.Source = source }
}

func WithLabel(label string) Option {
	return func(m *Meta) { m.Label = label }
}

func WithConvert(fn ConvertFunc) Option {
	return func(m *Meta) { m.Convert = fn }
}

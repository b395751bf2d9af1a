// Package serializer assembles named fields into value trees and hands
// them to renderers.
//
// A Serializer holds an ordered set of named field descriptors. Each
// conversion pass walks the fields in registration order, invokes their
// conversion entry points against the source object, and assembles the
// fragments into a single object node keyed by field name (or label).
// The assembled tree goes to a render.Registry for output.
//
//	s := serializer.New()
//	s.MustRegister("pk", fields.NewValueField())
//	s.MustRegister("model", fields.NewTypeNameField())
//	s.MustRegister("fields", detail.Field())
//	err := s.Serialize(w, provider, obj, "json")
//
// Serializers nest: Field() adapts a Serializer into a field descriptor
// usable on another Serializer, converting related objects with their
// own field sets.
package serializer

import (
	"fmt"
	"io"

	"github.com/seriate/go-seriate/debug"
	"github.com/seriate/go-seriate/fields"
	"github.com/seriate/go-seriate/ir"
	"github.com/seriate/go-seriate/model"
	"github.com/seriate/go-seriate/render"
)

// Serializer is an ordered collection of named field descriptors.
type Serializer struct {
	named    []*namedField
	byName   map[string]int
	registry *render.Registry
}

// namedField pairs a registered field with its name and sequence
// number. Sequence numbers are scoped to the owning serializer and
// assigned at registration time, which is what preserves declaration
// order regardless of how fields are stored.
type namedField struct {
	name  string
	field fields.Field
	seq   int
}

type Option func(*Serializer)

// WithRegistry sets the renderer registry used by Serialize. Defaults
// to render.DefaultRegistry().
func WithRegistry(r *render.Registry) Option {
	return func(s *Serializer) { s.registry = r }
}

func New(opts ...Option) *Serializer {
	s := &Serializer{
		byName: map[string]int{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = render.DefaultRegistry()
	}
	return s
}

// Register adds a field under the given name. Registration order is
// conversion order. Duplicate names return an error.
func (s *Serializer) Register(name string, f fields.Field) error {
	if name == "" {
		return fmt.Errorf("serializer: field name is required")
	}
	if f == nil {
		return fmt.Errorf("serializer: field is required")
	}
	if _, exists := s.byName[name]; exists {
		return fmt.Errorf("serializer: field %q already registered", name)
	}
	s.byName[name] = len(s.named)
	s.named = append(s.named, &namedField{
		name:  name,
		field: f,
		seq:   len(s.named),
	})
	return nil
}

// MustRegister panics on registration failure. Useful for wiring at
// definition time.
func (s *Serializer) MustRegister(name string, f fields.Field) {
	if err := s.Register(name, f); err != nil {
		panic(err)
	}
}

// FieldNames returns the registered names in registration order.
func (s *Serializer) FieldNames() []string {
	names := make([]string, len(s.named))
	for i, nf := range s.named {
		names[i] = nf.name
	}
	return names
}

// RunOption configures one conversion pass.
type RunOption func(*fields.Context)

// UseNaturalKeys makes relation fields that support it serialize
// natural keys instead of primary keys.
func UseNaturalKeys() RunOption {
	return func(cx *fields.Context) { cx.NaturalKeys = true }
}

// Convert produces the value tree for obj. The first field conversion
// error aborts the whole object: no partial output.
func (s *Serializer) Convert(p model.Provider, obj any, opts ...RunOption) (*ir.Node, error) {
	cx := fields.NewContext(p, obj)
	cx.Parent = s
	cx.Root = s
	for _, opt := range opts {
		opt(cx)
	}
	return s.convertObject(cx, obj)
}

func (s *Serializer) convertObject(cx *fields.Context, obj any) (*ir.Node, error) {
	if debug.Convert() {
		debug.Logf("serializer: converting %s\n", cx.Provider.TypeName(obj))
	}
	cx = cx.Push(obj)
	kvs := make([]ir.KeyVal, 0, len(s.named))
	for _, nf := range s.named {
		key := nf.name
		if label := nf.field.Meta().Label; label != "" {
			key = label
		}
		node, err := fields.ConvertFieldEntry(nf.field, cx.WithField(obj, nf.name))
		if err != nil {
			return nil, fmt.Errorf("serializer: field %q: %w", nf.name, err)
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(key), Val: node})
	}
	return ir.FromKeyVals(kvs), nil
}

// convertValue applies generic flattening with this serializer's field
// set descending into objects. An object already on the conversion
// stack degrades to its canonical string form instead of recursing,
// which is what bounds bidirectional relations under nesting.
func (s *Serializer) convertValue(cx *fields.Context, v any) (*ir.Node, error) {
	return fields.FlattenWith(cx, v, func(cx *fields.Context, v any) (*ir.Node, error) {
		if cx.OnStack(v) {
			return ir.FromString(cx.Provider.CanonicalString(v)), nil
		}
		return s.convertObject(cx, v)
	})
}

// Render renders an already-converted tree to the named format.
func (s *Serializer) Render(w io.Writer, node *ir.Node, format string, opts ...render.Option) error {
	r, err := s.registry.Get(format)
	if err != nil {
		return err
	}
	if debug.Render() {
		debug.Logf("serializer: rendering %s\n", format)
	}
	return r.Render(node, w, opts...)
}

// Serialize converts obj and renders it to the named format. A
// conversion error aborts output entirely; a rendering error aborts
// output for this format only.
func (s *Serializer) Serialize(w io.Writer, p model.Provider, obj any, format string, opts ...render.Option) error {
	node, err := s.Convert(p, obj)
	if err != nil {
		return err
	}
	return s.Render(w, node, format, opts...)
}

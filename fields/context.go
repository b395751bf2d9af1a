package fields

import (
	"reflect"
	"slices"

	"github.com/seriate/go-seriate/model"
)

// Context carries the per-call state of one conversion pass. Contexts
// are values derived per call, never stored on field descriptors, so
// concurrent conversions with a shared descriptor cannot interfere.
type Context struct {
	// Provider supplies object introspection for this pass.
	Provider model.Provider

	// Obj is the object currently being converted.
	Obj any

	// FieldName is the effective field name, after source resolution.
	FieldName string

	// Parent is the serializer invoking the field, if any.
	Parent any

	// Root is the topmost serializer in a nested chain, or Parent when
	// already top-level.
	Root any

	// NaturalKeys asks relation fields that support it to prefer
	// natural keys for this pass.
	NaturalKeys bool

	// Stack holds the objects currently being converted, outermost
	// first, used by nested serializers to stop descending into an
	// object already in progress.
	Stack []any
}

// NewContext builds a top-level context.
func NewContext(p model.Provider, obj any) *Context {
	return &Context{Provider: p, Obj: obj}
}

// WithField derives a context for converting one named field of obj.
func (cx *Context) WithField(obj any, name string) *Context {
	d := *cx
	d.Obj = obj
	d.FieldName = name
	return &d
}

// WithFieldName derives a context with the field name replaced, as when
// a source override renames the attribute to read.
func (cx *Context) WithFieldName(name string) *Context {
	d := *cx
	d.FieldName = name
	return &d
}

// Push derives a context with obj appended to the conversion stack.
func (cx *Context) Push(obj any) *Context {
	d := *cx
	d.Stack = append(slices.Clip(cx.Stack), obj)
	return &d
}

// OnStack reports whether obj is already being converted in this pass.
// Uncomparable values are never considered on the stack.
func (cx *Context) OnStack(obj any) bool {
	if obj == nil || !reflect.TypeOf(obj).Comparable() {
		return false
	}
	for _, o := range cx.Stack {
		if o == obj {
			return true
		}
	}
	return false
}

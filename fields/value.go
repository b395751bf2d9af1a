package fields

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"time"

	"github.com/seriate/go-seriate/ir"
)

// ValueField is the base conversion unit: it reads the named attribute
// and recursively flattens whatever it finds.
type ValueField struct {
	meta Meta
}

func NewValueField(opts ...Option) *ValueField {
	f := &ValueField{}
	for _, opt := range opts {
		opt(&f.meta)
	}
	return f
}

func (f *ValueField) Meta() *Meta { return &f.meta }

func (f *ValueField) Convert(cx *Context, v any) (*ir.Node, error) {
	if f.meta.Convert != nil {
		return f.meta.Convert(cx, v)
	}
	return Flatten(cx, v)
}

func (f *ValueField) ConvertField(cx *Context) (*ir.Node, error) {
	v, err := cx.Provider.Value(cx.Obj, cx.FieldName)
	if err != nil {
		return nil, err
	}
	return f.Convert(cx, v)
}

func (f *ValueField) Attributes(cx *Context) (map[string]string, error) {
	return nil, nil
}

// Scalar converts a protected/primitive value to its node, reporting
// whether the value was protected. Protected values pass through
// conversion unchanged.
func Scalar(v any) (*ir.Node, bool) {
	switch vv := v.(type) {
	case nil:
		return ir.Null(), true
	case bool:
		return ir.FromBool(vv), true
	case string:
		return ir.FromString(vv), true
	case int:
		return ir.FromInt(int64(vv)), true
	case int8:
		return ir.FromInt(int64(vv)), true
	case int16:
		return ir.FromInt(int64(vv)), true
	case int32:
		return ir.FromInt(int64(vv)), true
	case int64:
		return ir.FromInt(vv), true
	case uint:
		return ir.FromInt(int64(vv)), true
	case uint8:
		return ir.FromInt(int64(vv)), true
	case uint16:
		return ir.FromInt(int64(vv)), true
	case uint32:
		return ir.FromInt(int64(vv)), true
	case uint64:
		return ir.FromInt(int64(vv)), true
	case float32:
		return ir.FromFloat(float64(vv)), true
	case float64:
		return ir.FromFloat(vv), true
	case time.Time:
		return ir.FromTime(vv), true
	case json.Number:
		return ir.FromDecimal(string(vv)), true
	case *ir.Node:
		return vv, true
	}
	return nil, false
}

// Flatten recursively converts any value to a node:
//
//  1. protected/primitive values pass through as scalars
//  2. maps convert to objects, keys preserved
//  3. slices and arrays convert to arrays, order preserved
//  4. anything else degrades to its string form
//
// Step 4 makes flattening total over all input values: unknown types
// never fail, they only lose structure. Mapping keys must remain
// distinct after string conversion; colliding key forms fail rather
// than silently dropping an entry. Self-referential containers
// reachable through steps 2 and 3 alone are not guarded.
func Flatten(cx *Context, v any) (*ir.Node, error) {
	return FlattenWith(cx, v, nil)
}

// FlattenWith flattens like Flatten but hands values not covered by
// steps 1-3 to objFn instead of the string fallback. Nested serializers
// use this to descend into objects with their own field sets. objFn
// receives the value as it arrived, before pointer dereferencing, so
// pointer identity survives into cycle checks.
func FlattenWith(cx *Context, v any, objFn ConvertFunc) (*ir.Node, error) {
	if objFn == nil {
		objFn = func(cx *Context, v any) (*ir.Node, error) {
			return ir.FromString(stringForm(v)), nil
		}
	}
	if n, ok := Scalar(v); ok {
		return n, nil
	}

	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Ptr || val.Kind() == reflect.Interface {
		if val.IsNil() {
			return ir.Null(), nil
		}
		if n, ok := Scalar(val.Interface()); ok {
			return n, nil
		}
		val = val.Elem()
	}
	if n, ok := Scalar(val.Interface()); ok {
		return n, nil
	}

	switch val.Kind() {
	case reflect.Map:
		kvs := make([]ir.KeyVal, 0, val.Len())
		keys := val.MapKeys()
		keyStrs := make(map[string]reflect.Value, len(keys))
		ordered := make([]string, 0, len(keys))
		for _, k := range keys {
			ks := fmt.Sprint(k.Interface())
			if _, dup := keyStrs[ks]; dup {
				return nil, fmt.Errorf("mapping keys collide on %q after string conversion", ks)
			}
			keyStrs[ks] = k
			ordered = append(ordered, ks)
		}
		slices.Sort(ordered)
		for _, ks := range ordered {
			n, err := FlattenWith(cx, val.MapIndex(keyStrs[ks]).Interface(), objFn)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: ir.FromString(ks), Val: n})
		}
		return ir.FromKeyVals(kvs), nil

	case reflect.Slice, reflect.Array:
		values := make([]*ir.Node, val.Len())
		for i := 0; i < val.Len(); i++ {
			n, err := FlattenWith(cx, val.Index(i).Interface(), objFn)
			if err != nil {
				return nil, err
			}
			values[i] = n
		}
		return ir.FromSlice(values), nil
	}

	return objFn(cx, v)
}

// stringForm is the universal fallback representation.
func stringForm(v any) string {
	if tm, ok := v.(encoding.TextMarshaler); ok {
		if text, err := tm.MarshalText(); err == nil {
			return string(text)
		}
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}

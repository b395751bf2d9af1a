// Package ir provides the value tree produced by field conversion and
// consumed by renderers.
//
// # Overview
//
// The ir package defines the primitive-only representation of converted
// objects. Whatever the shape of the source object model, conversion
// produces an ir.Node tree holding nothing but scalars, ordered arrays
// and ordered key-value objects. Renderers serialize Node trees without
// any knowledge of the original objects.
//
// The IR works as a recursive tagged union structure, where values are
// placed in fields depending on the node type.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64, float64, or decimal string)
//   - StringType: string value
//   - TimeType: date/time value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// FromMap sorts keys; FromKeyVals preserves insertion order, which is
// what a serializer uses to keep field declaration order.
//
// # IR Structure Constraints
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i],
// so there will always be the same number of fields as values. Keys are
// string typed and unique within an object.
//
// Number values are placed under:
//   - Int64: if it is an integer (64-bit signed)
//   - Float64: if it is a floating point number (64-bit IEEE float)
//   - Number: as a string for fixed-point decimals representable by neither
//
// # Detachment
//
// A Node tree never references the object it was converted from. Once
// produced it is fully self-contained, so it can be rendered, compared,
// cloned, or shipped elsewhere independently of the source object model.
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes from
// multiple goroutines, you must synchronize access yourself or clone
// nodes for each goroutine.
//
// # Related Packages
//
//   - github.com/seriate/go-seriate/fields - Converts objects to IR nodes
//   - github.com/seriate/go-seriate/render - Renders IR nodes to JSON/YAML/XML
package ir

// Package fields implements the field-descriptor conversion engine.
//
// # Overview
//
// A Field converts one named aspect of a source object into an ir.Node
// fragment. Fields are descriptors: constructed once, typically when a
// serializer is defined, and reused across many conversion calls against
// many different objects. All per-call state lives in an explicit
// Context threaded through every call, so one Field instance can convert
// distinct objects from multiple goroutines concurrently.
//
// # Field Kinds
//
//   - ValueField: generic recursive flattening of any attribute value
//   - AttributeField: typed model attributes, with type metadata
//   - RelationField: single and multi valued relations
//   - PrimaryKeyRelationField: relations projected to their primary key
//   - NaturalKeyRelationField: relations projected to their natural key
//   - PrimaryKeyOrNaturalKeyField: per-run choice between the two
//   - TypeNameField: the object's canonical type identifier
//   - ExprField: a value computed by an expression over the object
//
// # Conversion Entry
//
// Serializers invoke fields through ConvertFieldEntry, which resolves
// the effective field name from the descriptor's Source (with "*"
// meaning "convert the whole object") and dispatches to the field.
//
// Flattening is total: values the engine does not recognize degrade to
// their string form rather than failing. The one error conversion does
// surface is a FieldNotFound from the model provider, which indicates a
// misconfigured field declaration and propagates to the caller.
//
// Relation fields are cycle-safe by construction since they convert to
// primitive keys, not the full related object graph. Plain value
// flattening of a self-referential container is not guarded.
package fields

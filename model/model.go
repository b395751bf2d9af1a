// Package model defines the contract between field conversion and the
// object layer it reads from.
//
// A Provider supplies attribute and relation introspection over source
// objects: generic attribute reads, declared type names, relation
// cardinality and members, primary and natural key resolution, and a
// canonical type identifier per object. The fields package is written
// entirely against this interface, so any object layer (reflection over
// structs, an ORM, a remote store) can back it.
package model

// Cardinality classifies a relation as single or multi valued.
type Cardinality int

const (
	Single Cardinality = iota
	Multi
)

func (c Cardinality) String() string {
	switch c {
	case Single:
		return "single"
	case Multi:
		return "multi"
	}
	return "<unknown cardinality>"
}

// Relation is a resolved relation handle for one field of one object.
type Relation struct {
	// Cardinality distinguishes single from multi valued relations.
	// Consumers must branch on this, never on the handle's runtime
	// type name.
	Cardinality Cardinality

	// TargetType is the canonical type identifier of the related type.
	TargetType string

	// Object is the related object for Single relations. May be nil.
	Object any

	// Members holds the resolved related objects for Multi relations.
	Members []any
}

// Provider supplies object introspection to field conversion.
//
// All name-based lookups fail with a FieldNotFoundError (wrapping
// ErrFieldNotFound) when the named field does not exist on the object's
// type. That condition propagates uncaught through field conversion: it
// indicates a misconfigured field declaration, not a data condition.
type Provider interface {
	// Value reads the named attribute off the object.
	Value(obj any, name string) (any, error)

	// FieldType reports the declared/internal type name for a field.
	FieldType(obj any, name string) (string, error)

	// Relation resolves the named relation. A name that exists but
	// does not denote a relation fails with ErrNotRelation.
	Relation(obj any, name string) (*Relation, error)

	// SerializableValue is a fast path returning an already-serializable
	// scalar for the named field, typically a stored foreign key, so a
	// primary-key field need not fetch the related object.
	SerializableValue(obj any, name string) (any, error)

	// PrimaryKey returns the primary key value of an object.
	PrimaryKey(obj any) (any, error)

	// NaturalKey returns an object's natural key projection if it
	// exposes one.
	NaturalKey(obj any) ([]any, bool)

	// TypeName returns the canonical type identifier for an object
	// instance, e.g. "auth.user".
	TypeName(obj any) string

	// CanonicalString converts a value to its canonical string form.
	CanonicalString(v any) string
}

package model

import (
	"errors"
	"fmt"
)

var (
	// ErrFieldNotFound reports a field name the provider does not
	// recognize on the object's type.
	ErrFieldNotFound = errors.New("field not found")

	// ErrNotRelation reports a field that exists but is not a relation.
	ErrNotRelation = errors.New("not a relation")
)

// FieldNotFoundError carries the object type and field name of a failed
// lookup.
type FieldNotFoundError struct {
	TypeName string
	Field    string
}

func (e *FieldNotFoundError) Error() string {
	if e.TypeName != "" {
		return fmt.Sprintf("field %q not found on %s", e.Field, e.TypeName)
	}
	return fmt.Sprintf("field %q not found", e.Field)
}

func (e *FieldNotFoundError) Unwrap() error {
	return ErrFieldNotFound
}

package schema

import "fmt"

// DuplicatePrimaryKeyError is raised when a second field in the same entity
// carries @pk.
type DuplicatePrimaryKeyError struct {
	Entity   string
	Field    string // the offending second @pk field
	Existing string // the field already holding the primary key
}

func (e *DuplicatePrimaryKeyError) Error() string {
	return fmt.Sprintf("duplicate primary key in entity %s: field %s (already declared on %s)",
		e.Entity, e.Field, e.Existing)
}

// MissingPrimaryKeyError is raised when no field in an entity carries @pk.
type MissingPrimaryKeyError struct {
	Entity string
}

func (e *MissingPrimaryKeyError) Error() string {
	return fmt.Sprintf("entity %s has no primary key field", e.Entity)
}

// UnresolvedReferenceError is raised when a @ref target does not exist in the
// schema set, or exists but is not addressable (neither primary key nor unique).
type UnresolvedReferenceError struct {
	Entity       string
	Field        string
	TargetEntity string
	TargetField  string
	Reason       string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("unresolved reference %s.%s -> %s.%s: %s",
		e.Entity, e.Field, e.TargetEntity, e.TargetField, e.Reason)
}

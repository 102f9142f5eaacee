// Package annotation scans source text for class-like declarations whose
// fields carry structured comment markers (@pk, @unique, @notNull, @default,
// @ref) and turns them into typed constraint facts. Python dataclasses and
// Java classes are supported front ends.
package annotation

import "fmt"

// Class is one parsed declaration block: an ordered list of annotated fields.
type Class struct {
	Name   string
	File   string
	Fields []Field
}

// Field is a single parsed field declaration with its annotation facts.
type Field struct {
	Name     string
	Type     string // canonical type (int, varchar, datetime, ...)
	Declared string // type exactly as written in the source
	Line     int
	Optional bool    // nullability hinted by the declaration itself (Optional[T], T | None)
	Default  *string // default taken from the declaration assignment, if any
	Anno     Annotations
}

// Annotations is the resolved closed tag set for one field.
type Annotations struct {
	PK      bool
	Unique  bool
	NotNull bool
	Default *string
	Ref     *Ref
}

// Ref is the parsed argument of a @ref tag: target and cardinality.
type Ref struct {
	Entity      string
	Field       string
	Cardinality string // many-to-one, one-to-one, many-to-many
}

// MalformedAnnotationError is raised for unrecognized tags, missing or bad
// tag arguments, and contradictory annotations on one field.
type MalformedAnnotationError struct {
	File   string
	Line   int
	Class  string
	Field  string
	Tag    string
	Reason string
}

func (e *MalformedAnnotationError) Error() string {
	loc := e.Class
	if e.Field != "" {
		loc += "." + e.Field
	}
	return fmt.Sprintf("%s:%d: malformed annotation @%s on %s: %s",
		e.File, e.Line, e.Tag, loc, e.Reason)
}

package schema

// Cardinality classifies the multiplicity of a reference edge.
type Cardinality string

const (
	ManyToOne  Cardinality = "many-to-one"
	OneToOne   Cardinality = "one-to-one"
	ManyToMany Cardinality = "many-to-many"
)

// Valid reports whether c is one of the recognized cardinalities.
func (c Cardinality) Valid() bool {
	switch c {
	case ManyToOne, OneToOne, ManyToMany:
		return true
	}
	return false
}

// Schema is one immutable extraction snapshot. Entities are held in
// foreign-key dependency order after resolution.
type Schema struct {
	Entities   []*Entity
	References []*Reference
}

type Entity struct {
	Name   string
	Source string // file the declaration came from
	Fields []*Field

	Dependencies []string // entity names this one references (filled by Resolve)
}

type Field struct {
	Name       string
	Type       string // canonical type: int, bigint, varchar, text, bool, float, decimal, date, datetime
	Declared   string // type as written in the source declaration
	PrimaryKey bool
	Unique     bool
	Nullable   bool
	Default    *string
	Ref        *Reference
}

// Reference is a directed edge Entity.Field -> TargetEntity.TargetField.
type Reference struct {
	Entity       string
	Field        string
	TargetEntity string
	TargetField  string
	Cardinality  Cardinality
}

// PrimaryKey returns the primary key field. Build guarantees exactly one
// exists on every entity it emits.
func (e *Entity) PrimaryKey() *Field {
	for _, f := range e.Fields {
		if f.PrimaryKey {
			return f
		}
	}
	return nil
}

// Field returns the named field, or nil.
func (e *Entity) Field(name string) *Field {
	for _, f := range e.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Entity returns the named entity, or nil.
func (s *Schema) Entity(name string) *Entity {
	for _, e := range s.Entities {
		if e.Name == name {
			return e
		}
	}
	return nil
}

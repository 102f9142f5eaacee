package schema

import (
	"fmt"

	"anno-schema/internal/annotation"
)

// Build aggregates parsed classes into entity records and enforces the
// per-entity invariants: exactly one primary key, unique field names.
// No partial schema: any violation aborts with a nil result.
func Build(classes []*annotation.Class) (*Schema, error) {
	s := &Schema{}

	for _, c := range classes {
		e := &Entity{Name: c.Name, Source: c.File}
		var pkField string
		fieldNames := make(map[string]bool)

		for _, cf := range c.Fields {
			if fieldNames[cf.Name] {
				return nil, fmt.Errorf("duplicate field %s in entity %s", cf.Name, c.Name)
			}
			fieldNames[cf.Name] = true

			f := &Field{
				Name:     cf.Name,
				Type:     cf.Type,
				Declared: cf.Declared,
				Unique:   cf.Anno.Unique,
				Default:  fieldDefault(cf),
			}

			if cf.Anno.PK {
				if pkField != "" {
					return nil, &DuplicatePrimaryKeyError{Entity: c.Name, Field: cf.Name, Existing: pkField}
				}
				pkField = cf.Name
				f.PrimaryKey = true
			}

			// @notNull and @pk force NOT NULL; otherwise the declaration decides
			f.Nullable = !cf.Anno.NotNull && !cf.Anno.PK

			if cf.Anno.Ref != nil {
				f.Ref = &Reference{
					Entity:       c.Name,
					Field:        cf.Name,
					TargetEntity: cf.Anno.Ref.Entity,
					TargetField:  cf.Anno.Ref.Field,
					Cardinality:  Cardinality(cf.Anno.Ref.Cardinality),
				}
			}

			e.Fields = append(e.Fields, f)
		}

		if pkField == "" {
			return nil, &MissingPrimaryKeyError{Entity: c.Name}
		}
		s.Entities = append(s.Entities, e)
	}

	return s, nil
}

// fieldDefault prefers the @default tag over the declaration assignment.
func fieldDefault(cf annotation.Field) *string {
	if cf.Anno.Default != nil {
		return cf.Anno.Default
	}
	return cf.Default
}

// Extract is the full single-pass pipeline: build entities from parsed
// classes, then resolve references and order by dependencies.
func Extract(classes []*annotation.Class) (*Schema, error) {
	s, err := Build(classes)
	if err != nil {
		return nil, err
	}
	if err := Resolve(s); err != nil {
		return nil, err
	}
	return s, nil
}

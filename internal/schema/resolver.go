package schema

// Resolve validates every reference edge against the full entity set,
// records the resolved edges on the schema and the dependency list on each
// entity, then puts the entities into foreign-key dependency order.
// After Resolve returns nil the schema is considered immutable.
func Resolve(s *Schema) error {
	for _, e := range s.Entities {
		for _, f := range e.Fields {
			if f.Ref == nil {
				continue
			}
			target := s.Entity(f.Ref.TargetEntity)
			if target == nil {
				return &UnresolvedReferenceError{
					Entity: e.Name, Field: f.Name,
					TargetEntity: f.Ref.TargetEntity, TargetField: f.Ref.TargetField,
					Reason: "target entity does not exist",
				}
			}
			tf := target.Field(f.Ref.TargetField)
			if tf == nil {
				return &UnresolvedReferenceError{
					Entity: e.Name, Field: f.Name,
					TargetEntity: f.Ref.TargetEntity, TargetField: f.Ref.TargetField,
					Reason: "target field does not exist",
				}
			}
			// a reference must land on an addressable key
			if !tf.PrimaryKey && !tf.Unique {
				return &UnresolvedReferenceError{
					Entity: e.Name, Field: f.Name,
					TargetEntity: f.Ref.TargetEntity, TargetField: f.Ref.TargetField,
					Reason: "target field is neither primary key nor unique",
				}
			}

			s.References = append(s.References, f.Ref)
			if target.Name != e.Name {
				e.Dependencies = append(e.Dependencies, target.Name)
			}
		}
	}

	s.Entities = SortByDependencies(s.Entities)
	return nil
}

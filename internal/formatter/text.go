package formatter

import (
	"fmt"
	"io"
	"strings"

	"anno-schema/internal/schema"
)

// TextFormatter writes a schema as a compact text report.
type TextFormatter struct {
	writer io.Writer
}

func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{writer: w}
}

func (f *TextFormatter) Format(s *schema.Schema) error {
	for i, e := range s.Entities {
		if i > 0 {
			_, _ = fmt.Fprintln(f.writer)
		}
		if err := f.formatEntity(e); err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) formatEntity(e *schema.Entity) error {
	pkStr := ""
	if pk := e.PrimaryKey(); pk != nil {
		pkStr = fmt.Sprintf(" (PK: %s)", pk.Name)
	}
	_, _ = fmt.Fprintf(f.writer, "ENTITY %s%s\n", e.Name, pkStr)

	for _, field := range e.Fields {
		_, _ = fmt.Fprintf(f.writer, "  %s\n", formatField(field))
	}

	var refs []*schema.Reference
	for _, field := range e.Fields {
		if field.Ref != nil {
			refs = append(refs, field.Ref)
		}
	}
	if len(refs) > 0 {
		_, _ = fmt.Fprintln(f.writer)
		_, _ = fmt.Fprintln(f.writer, "  RELATIONS:")
		for _, r := range refs {
			_, _ = fmt.Fprintf(f.writer, "    %s -> %s.%s (%s)\n", r.Field, r.TargetEntity, r.TargetField, r.Cardinality)
		}
	}

	return nil
}

func formatField(field *schema.Field) string {
	parts := []string{field.Name + ":", field.Type}

	if field.Unique {
		parts = append(parts, "UNIQUE")
	}
	if !field.Nullable {
		parts = append(parts, "NOT NULL")
	}
	if field.Default != nil {
		parts = append(parts, fmt.Sprintf("DEFAULT %s", *field.Default))
	}

	return strings.Join(parts, " ")
}

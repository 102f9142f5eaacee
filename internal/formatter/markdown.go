package formatter

import (
	"fmt"
	"io"
	"strings"

	"anno-schema/internal/schema"
)

// MarkdownFormatter writes a schema as a markdown document.
type MarkdownFormatter struct {
	writer io.Writer
}

func NewMarkdownFormatter(w io.Writer) *MarkdownFormatter {
	return &MarkdownFormatter{writer: w}
}

func (f *MarkdownFormatter) Format(s *schema.Schema) error {
	_, _ = fmt.Fprintln(f.writer, "# Extracted Schema")
	_, _ = fmt.Fprintln(f.writer)

	for _, e := range s.Entities {
		if err := f.formatEntity(e); err != nil {
			return err
		}
	}
	return nil
}

func (f *MarkdownFormatter) formatEntity(e *schema.Entity) error {
	_, _ = fmt.Fprintf(f.writer, "## %s\n\n", e.Name)

	_, _ = fmt.Fprintln(f.writer, "### Fields")
	_, _ = fmt.Fprintln(f.writer)
	for _, field := range e.Fields {
		constraints := formatConstraints(field)
		if constraints != "" {
			_, _ = fmt.Fprintf(f.writer, "- **%s:** %s, %s\n", field.Name, field.Type, constraints)
		} else {
			_, _ = fmt.Fprintf(f.writer, "- **%s:** %s\n", field.Name, field.Type)
		}
	}
	_, _ = fmt.Fprintln(f.writer)

	var refs []*schema.Reference
	for _, field := range e.Fields {
		if field.Ref != nil {
			refs = append(refs, field.Ref)
		}
	}
	if len(refs) > 0 {
		_, _ = fmt.Fprintln(f.writer, "### References")
		_, _ = fmt.Fprintln(f.writer)
		for _, r := range refs {
			_, _ = fmt.Fprintf(f.writer, "- %s → %s.%s (%s)\n", r.Field, r.TargetEntity, r.TargetField, r.Cardinality)
		}
		_, _ = fmt.Fprintln(f.writer)
	}

	return nil
}

func formatConstraints(field *schema.Field) string {
	var constraints []string

	if field.PrimaryKey {
		constraints = append(constraints, "PK")
	}
	if field.Unique {
		constraints = append(constraints, "UNIQUE")
	}
	if !field.Nullable {
		constraints = append(constraints, "NOT NULL")
	}
	if field.Default != nil {
		constraints = append(constraints, fmt.Sprintf("DEFAULT %s", *field.Default))
	}

	return strings.Join(constraints, ", ")
}

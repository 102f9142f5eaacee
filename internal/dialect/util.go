package dialect

import (
	"fmt"
	"strings"
	"time"

	"anno-schema/internal/schema"
)

// GeneratePlaceholders returns a comma-separated list of count placeholders
// produced by placeholderFunc.
func GeneratePlaceholders(count int, placeholderFunc func(int) string) string {
	placeholders := make([]string, count)
	for i := 0; i < count; i++ {
		placeholders[i] = placeholderFunc(i)
	}
	return strings.Join(placeholders, ", ")
}

// BuildCreateTable renders a CREATE TABLE statement for an entity using the
// dialect's quoting and type mapping. Column order follows field order;
// foreign keys go into trailing table constraints.
func BuildCreateTable(d Dialect, e *schema.Entity) string {
	var b strings.Builder
	table := TableName(e.Name)

	fmt.Fprintf(&b, "CREATE TABLE %s (\n", d.Quote(table))

	var lines []string
	for _, f := range e.Fields {
		col := fmt.Sprintf("    %s %s", d.Quote(f.Name), d.ColumnType(f))
		if f.PrimaryKey {
			col += " PRIMARY KEY"
		} else {
			if !f.Nullable {
				col += " NOT NULL"
			}
			if f.Unique {
				col += " UNIQUE"
			}
		}
		if f.Default != nil {
			col += " DEFAULT " + DefaultLiteral(d, f)
		}
		lines = append(lines, col)
	}
	for _, f := range e.Fields {
		if f.Ref == nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("    FOREIGN KEY (%s) REFERENCES %s (%s)",
			d.Quote(f.Name), d.Quote(TableName(f.Ref.TargetEntity)), d.Quote(f.Ref.TargetField)))
	}

	b.WriteString(strings.Join(lines, ",\n"))
	b.WriteString("\n)")
	return b.String()
}

// DefaultLiteral renders a field's declared default as a SQL literal,
// respecting the field's canonical type.
func DefaultLiteral(d Dialect, f *schema.Field) string {
	v := *f.Default
	switch f.Type {
	case "int", "bigint", "float", "decimal":
		return v
	case "bool":
		return d.Literal(strings.EqualFold(v, "true"))
	default:
		return d.Literal(v)
	}
}

func joinCols(cols []string) string {
	return strings.Join(cols, ", ")
}

// quoteString renders a standard single-quoted SQL string literal.
func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// defaultLiteralValue is the shared Literal implementation; dialects with
// non-standard booleans layer on top of it.
func defaultLiteralValue(v interface{}, boolTrue, boolFalse string) string {
	switch t := v.(type) {
	case nil:
		return "NULL"
	case bool:
		if t {
			return boolTrue
		}
		return boolFalse
	case string:
		return quoteString(t)
	case time.Time:
		return quoteString(t.Format("2006-01-02 15:04:05"))
	case int, int32, int64, float32, float64:
		return fmt.Sprintf("%v", t)
	default:
		return quoteString(fmt.Sprintf("%v", t))
	}
}

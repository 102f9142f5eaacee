package dialect

import (
	"database/sql"

	"anno-schema/internal/schema"
)

// Dialect abstracts database-specific SQL generation for an extracted schema.
type Dialect interface {
	Name() string

	// Identifier / value rendering
	Quote(ident string) string
	Literal(v interface{}) string // SQL literal for script output; nil -> NULL

	// DDL
	ColumnType(f *schema.Field) string
	CreateTable(e *schema.Entity) string
	DropTable(table string) string
	TruncateQuery(table string) string

	// DML
	InsertQuery(table string, cols []string) string
	Placeholder(index int) string // ?, $1, @p1, :1

	// Execution hooks around a seed/clean transaction (FK checks etc.)
	BeforeSeed(tx *sql.Tx) error
	AfterSeed(tx *sql.Tx) error
}

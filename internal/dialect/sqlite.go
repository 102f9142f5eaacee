package dialect

import (
	"database/sql"
	"fmt"

	"anno-schema/internal/schema"
)

type SQLiteDialect struct{}

func (d *SQLiteDialect) Name() string { return "sqlite3" }

func (d *SQLiteDialect) Quote(ident string) string {
	return `"` + ident + `"`
}

func (d *SQLiteDialect) Literal(v interface{}) string {
	return defaultLiteralValue(v, "1", "0")
}

func (d *SQLiteDialect) ColumnType(f *schema.Field) string {
	switch f.Type {
	case "int", "bigint", "bool":
		return "INTEGER"
	case "float", "decimal":
		return "REAL"
	case "blob":
		return "BLOB"
	default:
		// varchar, text, date, datetime: SQLite stores them all as TEXT
		return "TEXT"
	}
}

func (d *SQLiteDialect) CreateTable(e *schema.Entity) string {
	return BuildCreateTable(d, e)
}

func (d *SQLiteDialect) DropTable(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", d.Quote(table))
}

func (d *SQLiteDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("DELETE FROM %s", d.Quote(table))
}

func (d *SQLiteDialect) InsertQuery(table string, cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = d.Quote(c)
	}
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT OR IGNORE INTO %s (%s) VALUES (%s)",
		d.Quote(table), joinCols(quoted), vals)
}

func (d *SQLiteDialect) Placeholder(index int) string {
	return "?"
}

func (d *SQLiteDialect) BeforeSeed(tx *sql.Tx) error {
	// PRAGMA foreign_keys is a no-op inside a transaction; dependency order
	// carries the seeding anyway.
	return nil
}

func (d *SQLiteDialect) AfterSeed(tx *sql.Tx) error {
	return nil
}

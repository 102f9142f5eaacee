package dialect

import (
	"database/sql"
	"fmt"

	"anno-schema/internal/schema"
)

type PostgresDialect struct{}

func (d *PostgresDialect) Name() string { return "postgres" }

func (d *PostgresDialect) Quote(ident string) string {
	return `"` + ident + `"`
}

func (d *PostgresDialect) Literal(v interface{}) string {
	return defaultLiteralValue(v, "TRUE", "FALSE")
}

func (d *PostgresDialect) ColumnType(f *schema.Field) string {
	switch f.Type {
	case "int":
		return "INTEGER"
	case "bigint":
		return "BIGINT"
	case "varchar":
		return "VARCHAR(255)"
	case "text":
		return "TEXT"
	case "bool":
		return "BOOLEAN"
	case "float":
		return "DOUBLE PRECISION"
	case "decimal":
		return "NUMERIC(12,2)"
	case "date":
		return "DATE"
	case "datetime":
		return "TIMESTAMP"
	case "blob":
		return "BYTEA"
	default:
		return "TEXT"
	}
}

func (d *PostgresDialect) CreateTable(e *schema.Entity) string {
	return BuildCreateTable(d, e)
}

func (d *PostgresDialect) DropTable(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", d.Quote(table))
}

func (d *PostgresDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s CASCADE", d.Quote(table))
}

func (d *PostgresDialect) InsertQuery(table string, cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = d.Quote(c)
	}
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT DO NOTHING",
		d.Quote(table), joinCols(quoted), vals)
}

func (d *PostgresDialect) Placeholder(index int) string {
	return fmt.Sprintf("$%d", index+1)
}

func (d *PostgresDialect) BeforeSeed(tx *sql.Tx) error {
	// Deferred constraints let child rows land before their parents commit.
	_, err := tx.Exec("SET CONSTRAINTS ALL DEFERRED")
	return err
}

func (d *PostgresDialect) AfterSeed(tx *sql.Tx) error {
	_, err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE")
	return err
}

package dialect

import (
	"database/sql"
	"fmt"

	"anno-schema/internal/schema"
)

type OracleDialect struct{}

func (d *OracleDialect) Name() string { return "oracle" }

func (d *OracleDialect) Quote(ident string) string {
	return `"` + ident + `"`
}

func (d *OracleDialect) Literal(v interface{}) string {
	return defaultLiteralValue(v, "1", "0")
}

func (d *OracleDialect) ColumnType(f *schema.Field) string {
	switch f.Type {
	case "int":
		return "NUMBER(10)"
	case "bigint":
		return "NUMBER(19)"
	case "varchar":
		return "VARCHAR2(255)"
	case "text":
		return "CLOB"
	case "bool":
		return "NUMBER(1)"
	case "float":
		return "BINARY_DOUBLE"
	case "decimal":
		return "NUMBER(12,2)"
	case "date":
		return "DATE"
	case "datetime":
		return "TIMESTAMP"
	case "blob":
		return "BLOB"
	default:
		return "CLOB"
	}
}

func (d *OracleDialect) CreateTable(e *schema.Entity) string {
	return BuildCreateTable(d, e)
}

func (d *OracleDialect) DropTable(table string) string {
	return fmt.Sprintf("DROP TABLE %s CASCADE CONSTRAINTS", d.Quote(table))
}

func (d *OracleDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s", d.Quote(table))
}

func (d *OracleDialect) InsertQuery(table string, cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = d.Quote(c)
	}
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		d.Quote(table), joinCols(quoted), vals)
}

func (d *OracleDialect) Placeholder(index int) string {
	return fmt.Sprintf(":%d", index+1)
}

func (d *OracleDialect) BeforeSeed(tx *sql.Tx) error {
	// Oracle has no session-level FK toggle; seeding relies on dependency order.
	return nil
}

func (d *OracleDialect) AfterSeed(tx *sql.Tx) error {
	return nil
}

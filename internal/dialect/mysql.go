package dialect

import (
	"database/sql"
	"fmt"

	"anno-schema/internal/schema"
)

type MysqlDialect struct{}

func (d *MysqlDialect) Name() string { return "mysql" }

func (d *MysqlDialect) Quote(ident string) string {
	return "`" + ident + "`"
}

func (d *MysqlDialect) Literal(v interface{}) string {
	return defaultLiteralValue(v, "1", "0")
}

func (d *MysqlDialect) ColumnType(f *schema.Field) string {
	switch f.Type {
	case "int":
		return "INT"
	case "bigint":
		return "BIGINT"
	case "varchar":
		return "VARCHAR(255)"
	case "text":
		return "TEXT"
	case "bool":
		return "TINYINT(1)"
	case "float":
		return "DOUBLE"
	case "decimal":
		return "DECIMAL(12,2)"
	case "date":
		return "DATE"
	case "datetime":
		return "DATETIME"
	case "blob":
		return "BLOB"
	default:
		return "TEXT"
	}
}

func (d *MysqlDialect) CreateTable(e *schema.Entity) string {
	return BuildCreateTable(d, e)
}

func (d *MysqlDialect) DropTable(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", d.Quote(table))
}

func (d *MysqlDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s", d.Quote(table))
}

func (d *MysqlDialect) InsertQuery(table string, cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = d.Quote(c)
	}
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT IGNORE INTO %s (%s) VALUES (%s)",
		d.Quote(table), joinCols(quoted), vals)
}

func (d *MysqlDialect) Placeholder(index int) string {
	return "?"
}

func (d *MysqlDialect) BeforeSeed(tx *sql.Tx) error {
	_, err := tx.Exec("SET FOREIGN_KEY_CHECKS = 0")
	return err
}

func (d *MysqlDialect) AfterSeed(tx *sql.Tx) error {
	_, err := tx.Exec("SET FOREIGN_KEY_CHECKS = 1")
	return err
}

package dialect

import (
	"database/sql"
	"fmt"

	"anno-schema/internal/schema"
)

type MSSQLDialect struct{}

func (d *MSSQLDialect) Name() string { return "sqlserver" }

func (d *MSSQLDialect) Quote(ident string) string {
	return "[" + ident + "]"
}

func (d *MSSQLDialect) Literal(v interface{}) string {
	return defaultLiteralValue(v, "1", "0")
}

func (d *MSSQLDialect) ColumnType(f *schema.Field) string {
	switch f.Type {
	case "int":
		return "INT"
	case "bigint":
		return "BIGINT"
	case "varchar":
		return "NVARCHAR(255)"
	case "text":
		return "NVARCHAR(MAX)"
	case "bool":
		return "BIT"
	case "float":
		return "FLOAT"
	case "decimal":
		return "DECIMAL(12,2)"
	case "date":
		return "DATE"
	case "datetime":
		return "DATETIME2"
	case "blob":
		return "VARBINARY(MAX)"
	default:
		return "NVARCHAR(MAX)"
	}
}

func (d *MSSQLDialect) CreateTable(e *schema.Entity) string {
	return BuildCreateTable(d, e)
}

func (d *MSSQLDialect) DropTable(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", d.Quote(table))
}

func (d *MSSQLDialect) TruncateQuery(table string) string {
	// DELETE instead of TRUNCATE: TRUNCATE fails on FK-referenced tables.
	return fmt.Sprintf("DELETE FROM %s", d.Quote(table))
}

func (d *MSSQLDialect) InsertQuery(table string, cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = d.Quote(c)
	}
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		d.Quote(table), joinCols(quoted), vals)
}

func (d *MSSQLDialect) Placeholder(index int) string {
	return fmt.Sprintf("@p%d", index+1)
}

func (d *MSSQLDialect) BeforeSeed(tx *sql.Tx) error {
	return d.toggleConstraints(tx, "NOCHECK")
}

func (d *MSSQLDialect) AfterSeed(tx *sql.Tx) error {
	return d.toggleConstraints(tx, "CHECK")
}

// toggleConstraints disables or re-enables FK constraints on every base
// table in the dbo schema.
func (d *MSSQLDialect) toggleConstraints(tx *sql.Tx, mode string) error {
	rows, err := tx.Query("SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_TYPE = 'BASE TABLE' AND TABLE_SCHEMA = 'dbo'")
	if err != nil {
		return err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return err
		}
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	rows.Close()

	for _, t := range tables {
		if _, err := tx.Exec(fmt.Sprintf("ALTER TABLE %s %s CONSTRAINT all", d.Quote(t), mode)); err != nil {
			return fmt.Errorf("failed to %s constraints on %s: %w", mode, t, err)
		}
	}
	return nil
}

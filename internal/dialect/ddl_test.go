package dialect_test

import (
	"strings"
	"testing"

	"anno-schema/internal/dialect"
	"anno-schema/internal/schema"
)

func strPtr(s string) *string { return &s }

func postEntity() *schema.Entity {
	return &schema.Entity{
		Name: "Post",
		Fields: []*schema.Field{
			{Name: "id", Type: "int", PrimaryKey: true},
			{Name: "title", Type: "varchar"},
			{Name: "body", Type: "text", Nullable: true},
			{Name: "status", Type: "varchar", Nullable: true, Default: strPtr("draft")},
			{Name: "views", Type: "int", Nullable: true, Default: strPtr("0")},
			{Name: "author_id", Type: "int", Ref: &schema.Reference{
				Entity: "Post", Field: "author_id",
				TargetEntity: "User", TargetField: "id",
				Cardinality: schema.ManyToOne,
			}},
		},
	}
}

func TestTableName(t *testing.T) {
	tests := []struct {
		entity string
		table  string
	}{
		{"User", "users"},
		{"Post", "posts"},
		{"Comment", "comments"},
		{"OrderItem", "order_items"},
		{"Category", "categories"},
	}
	for _, tt := range tests {
		if got := dialect.TableName(tt.entity); got != tt.table {
			t.Errorf("TableName(%s): expected %s, got %s", tt.entity, tt.table, got)
		}
	}
}

func TestPostgresCreateTable(t *testing.T) {
	d := dialect.GetDialect("postgres")
	ddl := d.CreateTable(postEntity())

	wantParts := []string{
		`CREATE TABLE "posts"`,
		`"id" INTEGER PRIMARY KEY`,
		`"title" VARCHAR(255) NOT NULL`,
		`"body" TEXT`,
		`"status" VARCHAR(255) DEFAULT 'draft'`,
		`"views" INTEGER DEFAULT 0`,
		`"author_id" INTEGER NOT NULL`,
		`FOREIGN KEY ("author_id") REFERENCES "users" ("id")`,
	}
	for _, part := range wantParts {
		if !strings.Contains(ddl, part) {
			t.Errorf("Postgres DDL missing %q:\n%s", part, ddl)
		}
	}
	if strings.Contains(ddl, `"body" TEXT NOT NULL`) {
		t.Error("Nullable column must not be NOT NULL")
	}
}

func TestMysqlCreateTable(t *testing.T) {
	d := dialect.GetDialect("mysql")
	ddl := d.CreateTable(postEntity())

	wantParts := []string{
		"CREATE TABLE `posts`",
		"`id` INT PRIMARY KEY",
		"`title` VARCHAR(255) NOT NULL",
		"`status` VARCHAR(255) DEFAULT 'draft'",
		"FOREIGN KEY (`author_id`) REFERENCES `users` (`id`)",
	}
	for _, part := range wantParts {
		if !strings.Contains(ddl, part) {
			t.Errorf("MySQL DDL missing %q:\n%s", part, ddl)
		}
	}
}

func TestUniqueColumn(t *testing.T) {
	e := &schema.Entity{
		Name: "User",
		Fields: []*schema.Field{
			{Name: "id", Type: "int", PrimaryKey: true},
			{Name: "email", Type: "varchar", Unique: true},
		},
	}
	ddl := dialect.GetDialect("postgres").CreateTable(e)
	if !strings.Contains(ddl, `"email" VARCHAR(255) NOT NULL UNIQUE`) {
		t.Errorf("Unique not-null column misrendered:\n%s", ddl)
	}
}

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		driver string
		want   string
	}{
		{"postgres", "$1, $2, $3"},
		{"mysql", "?, ?, ?"},
		{"sqlserver", "@p1, @p2, @p3"},
		{"oracle", ":1, :2, :3"},
		{"sqlite", "?, ?, ?"},
	}
	for _, tt := range tests {
		d := dialect.GetDialect(tt.driver)
		got := dialect.GeneratePlaceholders(3, d.Placeholder)
		if got != tt.want {
			t.Errorf("%s placeholders: expected %s, got %s", tt.driver, tt.want, got)
		}
	}
}

func TestInsertQuery(t *testing.T) {
	cols := []string{"id", "title"}

	pg := dialect.GetDialect("postgres").InsertQuery("posts", cols)
	if !strings.Contains(pg, "ON CONFLICT DO NOTHING") {
		t.Errorf("Postgres insert should tolerate conflicts: %s", pg)
	}
	my := dialect.GetDialect("mysql").InsertQuery("posts", cols)
	if !strings.HasPrefix(my, "INSERT IGNORE INTO") {
		t.Errorf("MySQL insert should use INSERT IGNORE: %s", my)
	}
	lite := dialect.GetDialect("sqlite").InsertQuery("posts", cols)
	if !strings.HasPrefix(lite, "INSERT OR IGNORE INTO") {
		t.Errorf("SQLite insert should use INSERT OR IGNORE: %s", lite)
	}
}

func TestLiterals(t *testing.T) {
	pg := dialect.GetDialect("postgres")
	if got := pg.Literal("O'Brien"); got != "'O''Brien'" {
		t.Errorf("String literal quoting: got %s", got)
	}
	if got := pg.Literal(nil); got != "NULL" {
		t.Errorf("nil literal: got %s", got)
	}
	if got := pg.Literal(true); got != "TRUE" {
		t.Errorf("Postgres bool literal: got %s", got)
	}
	if got := dialect.GetDialect("mysql").Literal(true); got != "1" {
		t.Errorf("MySQL bool literal: got %s", got)
	}
}

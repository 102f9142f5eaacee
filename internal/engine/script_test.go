package engine_test

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"anno-schema/internal/dialect"
	"anno-schema/internal/engine"
	"anno-schema/internal/schema"
)

func blogEntities() []*schema.Entity {
	return []*schema.Entity{
		{
			Name: "User",
			Fields: []*schema.Field{
				{Name: "id", Type: "int", PrimaryKey: true},
				{Name: "username", Type: "varchar", Unique: true},
			},
		},
		{
			Name:         "Post",
			Dependencies: []string{"User"},
			Fields: []*schema.Field{
				{Name: "id", Type: "int", PrimaryKey: true},
				{Name: "author_id", Type: "int", Ref: &schema.Reference{
					Entity: "Post", Field: "author_id",
					TargetEntity: "User", TargetField: "id",
					Cardinality: schema.ManyToOne,
				}},
			},
		},
	}
}

func TestWriteScript_RowCountsAndOrder(t *testing.T) {
	var buf bytes.Buffer
	d := dialect.GetDialect("sqlite")

	if err := engine.WriteScript(&buf, d, blogEntities(), 5); err != nil {
		t.Fatalf("WriteScript failed: %v", err)
	}
	out := buf.String()

	if strings.Count(out, "INSERT INTO") != 10 {
		t.Errorf("Expected 10 INSERT statements, got %d:\n%s",
			strings.Count(out, "INSERT INTO"), out)
	}
	usersAt := strings.Index(out, "-- users")
	postsAt := strings.Index(out, "-- posts")
	if usersAt < 0 || postsAt < 0 || usersAt > postsAt {
		t.Error("Parent table section must precede the child's")
	}
}

func TestWriteScript_FKValuesComeFromPool(t *testing.T) {
	var buf bytes.Buffer
	d := dialect.GetDialect("sqlite")

	if err := engine.WriteScript(&buf, d, blogEntities(), 5); err != nil {
		t.Fatalf("WriteScript failed: %v", err)
	}

	// posts carry (id, author_id); author_id must be a seeded user key
	postRow := regexp.MustCompile(`INSERT INTO "posts" \("id", "author_id"\) VALUES \(\d+, (\d+)\);`)
	matches := postRow.FindAllStringSubmatch(buf.String(), -1)
	if len(matches) != 5 {
		t.Fatalf("Expected 5 post rows, got %d:\n%s", len(matches), buf.String())
	}
	for _, m := range matches {
		if m[1] < "1" || m[1] > "5" {
			t.Errorf("author_id %s is not a seeded user key", m[1])
		}
	}
}

func TestWriteScript_LiteralsQuoted(t *testing.T) {
	var buf bytes.Buffer
	d := dialect.GetDialect("sqlite")
	entities := []*schema.Entity{{
		Name: "Tag",
		Fields: []*schema.Field{
			{Name: "id", Type: "int", PrimaryKey: true},
			{Name: "label", Type: "varchar"},
		},
	}}

	if err := engine.WriteScript(&buf, d, entities, 3); err != nil {
		t.Fatalf("WriteScript failed: %v", err)
	}

	row := regexp.MustCompile(`INSERT INTO "tags" \("id", "label"\) VALUES \(\d+, '[^;]*'\);`)
	if got := len(row.FindAllString(buf.String(), -1)); got != 3 {
		t.Errorf("Expected 3 quoted tag rows, got %d:\n%s", got, buf.String())
	}
}

package annotation_test

import (
	"errors"
	"strings"
	"testing"

	"anno-schema/internal/annotation"
)

const samplePython = `"""
Sample annotated entities.
"""

from dataclasses import dataclass
from datetime import datetime
from typing import Optional

@dataclass
class User:
    id: int  # @pk
    username: str  # @unique @notNull
    email: str  # @unique @notNull
    password_hash: str  # @notNull
    created_at: datetime
    updated_at: Optional[datetime] = None

@dataclass
class Post:
    id: int  # @pk
    title: str  # @notNull
    body: Optional[str] = None
    author_id: int  # @notNull @ref User.id many-to-one
    status: str = 'draft'  # @default draft
    published_at: Optional[datetime] = None
    created_at: datetime = None

@dataclass
class Comment:
    id: int  # @pk
    post_id: int  # @notNull @ref Post.id many-to-one
    user_id: int  # @notNull @ref User.id many-to-one
    content: str  # @notNull
    created_at: datetime = None
`

func parsePy(t *testing.T, src string) []*annotation.Class {
	t.Helper()
	classes, err := annotation.ParsePython("sample.py", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return classes
}

func TestParsePython_Sample(t *testing.T) {
	classes := parsePy(t, samplePython)

	if len(classes) != 3 {
		t.Fatalf("Expected 3 classes, got %d", len(classes))
	}

	user := classes[0]
	if user.Name != "User" {
		t.Errorf("Expected first class User, got %s", user.Name)
	}
	if len(user.Fields) != 6 {
		t.Fatalf("Expected 6 fields on User, got %d", len(user.Fields))
	}
	if !user.Fields[0].Anno.PK {
		t.Error("User.id should carry @pk")
	}
	if user.Fields[0].Type != "int" {
		t.Errorf("User.id canonical type: expected int, got %s", user.Fields[0].Type)
	}

	username := user.Fields[1]
	if !username.Anno.Unique || !username.Anno.NotNull {
		t.Error("User.username should be @unique @notNull")
	}
	if username.Type != "varchar" {
		t.Errorf("User.username canonical type: expected varchar, got %s", username.Type)
	}

	updated := user.Fields[5]
	if !updated.Optional {
		t.Error("User.updated_at should be optional (Optional[datetime])")
	}
	if updated.Type != "datetime" {
		t.Errorf("User.updated_at canonical type: expected datetime, got %s", updated.Type)
	}

	post := classes[1]
	author := post.Fields[3]
	if author.Anno.Ref == nil {
		t.Fatal("Post.author_id should carry @ref")
	}
	if author.Anno.Ref.Entity != "User" || author.Anno.Ref.Field != "id" {
		t.Errorf("Post.author_id ref target: expected User.id, got %s.%s",
			author.Anno.Ref.Entity, author.Anno.Ref.Field)
	}
	if author.Anno.Ref.Cardinality != "many-to-one" {
		t.Errorf("Expected many-to-one, got %s", author.Anno.Ref.Cardinality)
	}

	status := post.Fields[4]
	if status.Anno.Default == nil || *status.Anno.Default != "draft" {
		t.Error("Post.status should carry @default draft")
	}
	if status.Default == nil || *status.Default != "draft" {
		t.Error("Post.status declaration default should be draft")
	}
}

func TestParsePython_RefCardinalityDefault(t *testing.T) {
	src := `
class Order:
    id: int  # @pk
    user_id: int  # @ref User.id
`
	classes := parsePy(t, src)
	ref := classes[0].Fields[1].Anno.Ref
	if ref == nil {
		t.Fatal("Expected a ref")
	}
	if ref.Cardinality != "many-to-one" {
		t.Errorf("Omitted cardinality should default to many-to-one, got %s", ref.Cardinality)
	}
}

func TestParsePython_Malformed(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unrecognized tag", "class A:\n    id: int  # @pk\n    x: int  # @indexed\n"},
		{"ref missing args", "class A:\n    id: int  # @pk\n    x: int  # @ref\n"},
		{"ref bad target", "class A:\n    id: int  # @pk\n    x: int  # @ref User\n"},
		{"ref unknown cardinality", "class A:\n    id: int  # @pk\n    x: int  # @ref User.id sometimes\n"},
		{"default missing value", "class A:\n    id: int  # @pk\n    x: str  # @default\n"},
		{"notNull with null default", "class A:\n    id: int  # @pk\n    x: str  # @notNull @default null\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := annotation.ParsePython("bad.py", strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("Expected error but got none")
			}
			var malformed *annotation.MalformedAnnotationError
			if !errors.As(err, &malformed) {
				t.Fatalf("Expected MalformedAnnotationError, got %T: %v", err, err)
			}
			if malformed.Class != "A" {
				t.Errorf("Error should name the offending class, got %q", malformed.Class)
			}
		})
	}
}

func TestParsePython_PlainCommentsIgnored(t *testing.T) {
	src := `
class A:
    id: int  # @pk
    status: str  # draft, published, archived
`
	classes := parsePy(t, src)
	status := classes[0].Fields[1]
	if status.Anno.PK || status.Anno.Unique || status.Anno.NotNull || status.Anno.Default != nil || status.Anno.Ref != nil {
		t.Error("Free-text comment without tags should produce no annotations")
	}
}

package schema_test

import (
	"testing"

	"anno-schema/internal/schema"
)

func TestSortByDependencies_Simple(t *testing.T) {
	// Users -> Orders -> OrderItems
	entities := []*schema.Entity{
		{Name: "OrderItem", Dependencies: []string{"Order"}},
		{Name: "Order", Dependencies: []string{"User"}},
		{Name: "User", Dependencies: []string{}},
	}

	sorted := schema.SortByDependencies(entities)

	if sorted[0].Name != "User" {
		t.Errorf("Expected User first, got %s", sorted[0].Name)
	}
	if sorted[1].Name != "Order" {
		t.Errorf("Expected Order second, got %s", sorted[1].Name)
	}
	if sorted[2].Name != "OrderItem" {
		t.Errorf("Expected OrderItem third, got %s", sorted[2].Name)
	}
}

func TestSortByDependencies_ComplexCircular(t *testing.T) {
	// A -> B -> C -> D -> E -> A (cycle), F -> E, G independent
	entities := []*schema.Entity{
		{Name: "A", Dependencies: []string{"B"}},
		{Name: "B", Dependencies: []string{"C"}},
		{Name: "C", Dependencies: []string{"D"}},
		{Name: "D", Dependencies: []string{"E"}},
		{Name: "E", Dependencies: []string{"A"}},
		{Name: "F", Dependencies: []string{"E"}},
		{Name: "G", Dependencies: []string{}},
	}

	sorted := schema.SortByDependencies(entities)

	if len(sorted) != len(entities) {
		t.Fatalf("Expected %d entities, got %d", len(entities), len(sorted))
	}

	visited := make(map[string]bool)
	for _, e := range sorted {
		visited[e.Name] = true
	}
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		if !visited[name] {
			t.Errorf("Entity %s missing from sorted output", name)
		}
	}

	if sorted[0].Name != "G" {
		t.Errorf("Independent entity G should come first, got %s", sorted[0].Name)
	}
}

func TestSortByDependencies_Deterministic(t *testing.T) {
	build := func() []*schema.Entity {
		return []*schema.Entity{
			{Name: "X", Dependencies: []string{"Y"}},
			{Name: "Y", Dependencies: []string{"X"}},
		}
	}

	first := schema.SortByDependencies(build())
	for i := 0; i < 5; i++ {
		again := schema.SortByDependencies(build())
		for j := range first {
			if first[j].Name != again[j].Name {
				t.Fatalf("Sort order changed between runs: %s vs %s", first[j].Name, again[j].Name)
			}
		}
	}
}

package engine

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"anno-schema/internal/schema"
)

var seededRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// GenerateValue produces a fake value for one field of row n (1-based).
// Primary keys are sequential so child entities can reference them; unique
// fields get an n-derived component so a batch never collides with itself.
// Reference fields are not handled here; the pumper picks those from the
// FK pool.
func GenerateValue(f *schema.Field, entityName string, n int) interface{} {
	if f.PrimaryKey {
		switch f.Type {
		case "int", "bigint":
			return n
		default:
			return gofakeit.UUID()
		}
	}

	// declared defaults are used as-is for non-unique fields
	if f.Default != nil && !f.Unique {
		return typedDefault(f)
	}

	if f.Unique {
		return uniqueValue(f, n)
	}

	// sprinkle NULLs over nullable fields
	if f.Nullable && seededRand.Intn(5) == 0 {
		return nil
	}

	return heuristicValue(f)
}

// heuristicValue picks a generator from the field name first, the canonical
// type second.
func heuristicValue(f *schema.Field) interface{} {
	name := strings.ToLower(f.Name)

	if f.Type == "varchar" || f.Type == "text" {
		switch {
		case strings.Contains(name, "email"):
			return gofakeit.Email()
		case strings.Contains(name, "username") || strings.Contains(name, "login"):
			return gofakeit.Username()
		case strings.Contains(name, "first_name"):
			return gofakeit.FirstName()
		case strings.Contains(name, "last_name"):
			return gofakeit.LastName()
		case strings.Contains(name, "name"):
			return gofakeit.Name()
		case strings.Contains(name, "phone") || strings.Contains(name, "tel"):
			return gofakeit.Phone()
		case strings.Contains(name, "password") || strings.Contains(name, "hash"):
			return gofakeit.Password(true, true, true, false, false, 24)
		case strings.Contains(name, "url") || strings.Contains(name, "link"):
			return gofakeit.URL()
		case strings.Contains(name, "city"):
			return gofakeit.City()
		case strings.Contains(name, "country"):
			return gofakeit.Country()
		case strings.Contains(name, "address"):
			return gofakeit.Street()
		case strings.Contains(name, "zip") || strings.Contains(name, "postal"):
			return gofakeit.Zip()
		case strings.Contains(name, "title") || strings.Contains(name, "subject"):
			return gofakeit.Sentence(3)
		case strings.Contains(name, "body") || strings.Contains(name, "content") ||
			strings.Contains(name, "description") || strings.Contains(name, "comment"):
			return gofakeit.Paragraph(1, 3, 8, " ")
		case strings.Contains(name, "status") || strings.Contains(name, "state"):
			return gofakeit.RandomString([]string{"draft", "published", "archived"})
		}
		if f.Type == "text" {
			return gofakeit.Paragraph(1, 3, 8, " ")
		}
		return gofakeit.Word()
	}

	switch f.Type {
	case "int":
		return gofakeit.Number(1, 50000)
	case "bigint":
		return gofakeit.Number(1, 1<<31)
	case "float":
		return gofakeit.Float64Range(0.01, 9999.99)
	case "decimal":
		return gofakeit.Price(0.99, 999.99)
	case "bool":
		return gofakeit.Bool()
	case "date", "datetime":
		return gofakeit.DateRange(time.Now().AddDate(-1, 0, 0), time.Now())
	case "blob":
		return []byte(gofakeit.Word())
	default:
		return gofakeit.Word()
	}
}

// uniqueValue derives a collision-free value for @unique fields from the row
// ordinal.
func uniqueValue(f *schema.Field, n int) interface{} {
	name := strings.ToLower(f.Name)
	switch f.Type {
	case "int", "bigint":
		return n
	case "varchar", "text":
		switch {
		case strings.Contains(name, "email"):
			return fmt.Sprintf("%s%d@%s", gofakeit.Username(), n, gofakeit.DomainName())
		case strings.Contains(name, "username") || strings.Contains(name, "login") || strings.Contains(name, "name"):
			return fmt.Sprintf("%s_%d", gofakeit.Username(), n)
		default:
			return fmt.Sprintf("%s-%d", gofakeit.Word(), n)
		}
	case "float", "decimal":
		return float64(n) + gofakeit.Float64Range(0.01, 0.99)
	default:
		return n
	}
}

// typedDefault converts a declared default token into a driver-friendly value.
func typedDefault(f *schema.Field) interface{} {
	v := *f.Default
	switch f.Type {
	case "int", "bigint":
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	case "float", "decimal":
		if fl, err := strconv.ParseFloat(v, 64); err == nil {
			return fl
		}
	case "bool":
		return strings.EqualFold(v, "true") || v == "1"
	}
	return v
}

package dialect

import (
	"strings"

	"github.com/jinzhu/inflection"
)

// TableName maps an entity name to its table name: snake_case, pluralized
// (User -> users, OrderItem -> order_items).
func TableName(entity string) string {
	return inflection.Plural(toSnake(entity))
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

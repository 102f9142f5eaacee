package engine

import (
	"fmt"
	"io"
	"strings"

	"anno-schema/internal/dialect"
	"anno-schema/internal/schema"
)

// WriteScript emits an INSERT script for count rows per entity without
// touching a database. The FK pool is fed from the generated primary keys,
// so the script replays cleanly in dependency order.
func WriteScript(w io.Writer, d dialect.Dialect, entities []*schema.Entity, count int) error {
	fkPool := make(map[string][]interface{})

	for _, e := range entities {
		table := dialect.TableName(e.Name)
		pk := e.PrimaryKey()

		cols := make([]string, 0, len(e.Fields))
		for _, f := range e.Fields {
			cols = append(cols, d.Quote(f.Name))
		}

		if _, err := fmt.Fprintf(w, "-- %s\n", table); err != nil {
			return err
		}

		usedUnique := make(map[string]map[interface{}]bool)
		for _, f := range e.Fields {
			if f.Unique {
				usedUnique[f.Name] = make(map[interface{}]bool)
			}
		}

		written := 0
		attempts := 0
		for written < count && attempts < count*10 {
			attempts++
			values, ok := generateRow(e, fkPool, attempts)
			if !ok {
				break
			}

			skip := false
			for i, f := range e.Fields {
				if f.Unique && usedUnique[f.Name][values[i]] {
					skip = true
					break
				}
			}
			if skip {
				continue
			}
			for i, f := range e.Fields {
				if f.Unique {
					usedUnique[f.Name][values[i]] = true
				}
			}

			literals := make([]string, len(values))
			for i, v := range values {
				literals[i] = d.Literal(v)
			}
			_, err := fmt.Fprintf(w, "INSERT INTO %s (%s) VALUES (%s);\n",
				d.Quote(table), strings.Join(cols, ", "), strings.Join(literals, ", "))
			if err != nil {
				return err
			}
			written++

			if pk != nil {
				fkPool[e.Name] = append(fkPool[e.Name], values[fieldIndex(e, pk.Name)])
			}
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func fieldIndex(e *schema.Entity, name string) int {
	for i, f := range e.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

package annotation

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

var (
	pyClassRe = regexp.MustCompile(`^class\s+([A-Za-z_]\w*)\s*(?:\([^)]*\))?\s*:`)
	pyFieldRe = regexp.MustCompile(`^\s+([A-Za-z_]\w*)\s*:\s*(.+)$`)
)

// pyTypeMap maps Python annotation types to canonical schema types.
var pyTypeMap = map[string]string{
	"int":      "int",
	"str":      "varchar",
	"float":    "float",
	"bool":     "bool",
	"bytes":    "blob",
	"datetime": "datetime",
	"date":     "date",
	"Decimal":  "decimal",
}

// ParsePython reads Python source and returns the annotated classes it
// declares. Field declarations follow the dataclass form
// `name: type = default  # @tags`. Classes without annotated fields are
// still returned; the schema builder decides what to reject.
func ParsePython(file string, r io.Reader) ([]*Class, error) {
	var classes []*Class
	var current *Class
	inDocstring := false
	lineNo := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		line := strings.TrimRight(raw, " \t")

		// module/class docstrings: toggle on unmatched triple quotes
		if n := strings.Count(line, `"""`) + strings.Count(line, `'''`); n%2 == 1 {
			inDocstring = !inDocstring
			continue
		}
		if inDocstring || strings.TrimSpace(line) == "" {
			continue
		}

		if m := pyClassRe.FindStringSubmatch(line); m != nil {
			current = &Class{Name: m[1], File: file}
			classes = append(classes, current)
			continue
		}
		if current == nil {
			continue
		}
		// dedent back to top level ends the class body
		if !strings.HasPrefix(line, " ") && !strings.HasPrefix(line, "\t") {
			current = nil
			continue
		}

		// split off the trailing comment before looking at the declaration
		decl, comment := splitPyComment(line)
		trimmed := strings.TrimSpace(decl)
		if trimmed == "" || strings.HasPrefix(trimmed, "@") || strings.HasPrefix(trimmed, "def ") {
			continue
		}

		m := pyFieldRe.FindStringSubmatch(decl)
		if m == nil {
			continue
		}
		name := m[1]
		rest := m[2]

		var defVal *string
		typeExpr := rest
		if idx := strings.Index(rest, "="); idx >= 0 {
			typeExpr = strings.TrimSpace(rest[:idx])
			defVal = pyDefaultValue(strings.TrimSpace(rest[idx+1:]))
		}

		declared := strings.TrimSpace(typeExpr)
		base, optional := stripPyOptional(declared)

		f := Field{
			Name:     name,
			Type:     canonicalPyType(base),
			Declared: declared,
			Line:     lineNo,
			Optional: optional,
			Default:  defVal,
		}

		if comment != "" && hasTags(comment) {
			at := loc{File: file, Line: lineNo, Class: current.Name, Field: name}
			anno, err := parseTags(comment, at)
			if err != nil {
				return nil, err
			}
			f.Anno = anno
		}

		current.Fields = append(current.Fields, f)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return classes, nil
}

// splitPyComment splits a line at the first # that is not inside quotes.
func splitPyComment(line string) (decl, comment string) {
	inSingle, inDouble := false, false
	for i, r := range line {
		switch r {
		case '\'':
			if !inDouble {
				inSingle = !inSingle
			}
		case '"':
			if !inSingle {
				inDouble = !inDouble
			}
		case '#':
			if !inSingle && !inDouble {
				return line[:i], strings.TrimSpace(line[i+1:])
			}
		}
	}
	return line, ""
}

// stripPyOptional unwraps Optional[T] and `T | None` forms.
func stripPyOptional(t string) (base string, optional bool) {
	s := strings.TrimSpace(t)
	for _, prefix := range []string{"Optional[", "typing.Optional["} {
		if strings.HasPrefix(s, prefix) && strings.HasSuffix(s, "]") {
			return strings.TrimSpace(s[len(prefix) : len(s)-1]), true
		}
	}
	if parts := strings.Split(s, "|"); len(parts) == 2 {
		for i, p := range parts {
			if strings.TrimSpace(p) == "None" {
				return strings.TrimSpace(parts[1-i]), true
			}
		}
	}
	return s, false
}

func canonicalPyType(t string) string {
	// drop module qualifiers: datetime.datetime -> datetime
	if idx := strings.LastIndex(t, "."); idx >= 0 {
		t = t[idx+1:]
	}
	if ct, ok := pyTypeMap[t]; ok {
		return ct
	}
	return "varchar"
}

// pyDefaultValue normalizes a declaration default. None and factory calls
// are not literal defaults.
func pyDefaultValue(v string) *string {
	if v == "" || v == "None" || strings.Contains(v, "(") {
		return nil
	}
	v = strings.Trim(v, `"'`)
	return &v
}

package annotation

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

var (
	javaClassRe = regexp.MustCompile(`^(?:public\s+|abstract\s+|final\s+)*class\s+([A-Za-z_]\w*)`)
	javaFieldRe = regexp.MustCompile(`^\s*(?:private|protected|public)\s+(?:static\s+|final\s+)*([\w.<>\[\]]+)\s+([A-Za-z_]\w*)\s*(?:=\s*([^;]+))?;`)
	jpaColumnRe = regexp.MustCompile(`^@Column\s*\((.*)\)`)
)

// javaTypeMap maps Java field types to canonical schema types.
var javaTypeMap = map[string]string{
	"int": "int", "Integer": "int", "short": "int", "Short": "int",
	"long": "bigint", "Long": "bigint", "BigInteger": "bigint",
	"String": "varchar", "char": "varchar", "Character": "varchar",
	"boolean": "bool", "Boolean": "bool",
	"float": "float", "Float": "float", "double": "float", "Double": "float",
	"BigDecimal": "decimal",
	"LocalDateTime": "datetime", "Timestamp": "datetime", "Instant": "datetime",
	"LocalDate": "date", "Date": "date",
	"byte[]": "blob",
}

// ParseJava reads Java source and returns the annotated classes it declares.
// Constraint tags are read from Javadoc blocks above each field; the JPA
// annotations @Id and @Column(unique=..., nullable=...) are honored as
// aliases for @pk, @unique and @notNull. @ManyToOne alone names no target
// column and is ignored; a @ref tag in the Javadoc carries the target.
// Field names are normalized to snake_case.
func ParseJava(file string, r io.Reader) ([]*Class, error) {
	var classes []*Class
	var current *Class

	// Javadoc/JPA state pending for the next field declaration
	var docLines []string
	var docStart int
	inDoc := false
	pendingID := false
	pendingUnique := false
	pendingNotNull := false

	reset := func() {
		docLines = nil
		inDoc = false
		pendingID = false
		pendingUnique = false
		pendingNotNull = false
	}

	lineNo := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if inDoc {
			if strings.Contains(line, "*/") {
				inDoc = false
				continue
			}
			docLines = append(docLines, strings.TrimSpace(strings.TrimPrefix(line, "*")))
			continue
		}
		if strings.HasPrefix(line, "/**") {
			inDoc = !strings.Contains(line, "*/")
			docStart = lineNo
			docLines = nil
			continue
		}
		if strings.HasPrefix(line, "//") || strings.HasPrefix(line, "import ") || strings.HasPrefix(line, "package ") {
			continue
		}

		if m := javaClassRe.FindStringSubmatch(line); m != nil {
			current = &Class{Name: m[1], File: file}
			classes = append(classes, current)
			reset()
			continue
		}
		if current == nil {
			continue
		}

		// JPA annotation lines between Javadoc and declaration
		if strings.HasPrefix(line, "@") {
			switch {
			case line == "@Id":
				pendingID = true
			case strings.HasPrefix(line, "@Column"):
				if m := jpaColumnRe.FindStringSubmatch(line); m != nil {
					args := m[1]
					if strings.Contains(args, "unique = true") || strings.Contains(args, "unique=true") {
						pendingUnique = true
					}
					if strings.Contains(args, "nullable = false") || strings.Contains(args, "nullable=false") {
						pendingNotNull = true
					}
				}
			}
			// @ManyToOne, @OneToMany etc. carry no column target; skipped
			continue
		}

		m := javaFieldRe.FindStringSubmatch(line)
		if m == nil {
			// any other statement invalidates the pending Javadoc
			reset()
			continue
		}
		declared := m[1]
		name := snakeCase(m[2])

		f := Field{
			Name:     name,
			Type:     canonicalJavaType(declared),
			Declared: declared,
			Line:     lineNo,
			Optional: true, // Java object fields are nullable unless constrained
		}

		if text := strings.Join(docLines, " "); hasTags(text) {
			at := loc{File: file, Line: docStart, Class: current.Name, Field: name}
			anno, err := parseTags(text, at)
			if err != nil {
				return nil, err
			}
			f.Anno = anno
		}
		// JPA aliases only add constraints; comment tags stay authoritative
		if pendingID {
			f.Anno.PK = true
		}
		if pendingUnique {
			f.Anno.Unique = true
		}
		if pendingNotNull {
			f.Anno.NotNull = true
		}

		current.Fields = append(current.Fields, f)
		reset()
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return classes, nil
}

func canonicalJavaType(t string) string {
	if idx := strings.LastIndex(t, "."); idx >= 0 {
		t = t[idx+1:]
	}
	if ct, ok := javaTypeMap[t]; ok {
		return ct
	}
	return "varchar"
}

// snakeCase converts camelCase identifiers to snake_case (authorId -> author_id).
func snakeCase(s string) string {
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

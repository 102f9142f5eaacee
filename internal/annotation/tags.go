package annotation

import (
	"regexp"
	"strings"
)

var refTargetRe = regexp.MustCompile(`^([A-Za-z_]\w*)\.([A-Za-z_]\w*)$`)

var cardinalities = map[string]bool{
	"many-to-one":  true,
	"one-to-one":   true,
	"many-to-many": true,
}

// loc carries error context while a front end walks a file.
type loc struct {
	File  string
	Line  int
	Class string
	Field string
}

func (l loc) malformed(tag, reason string) error {
	return &MalformedAnnotationError{
		File: l.File, Line: l.Line, Class: l.Class, Field: l.Field,
		Tag: tag, Reason: reason,
	}
}

// splitTagTokens splits annotation text into tokens, keeping quoted values
// (e.g. @default 'in review') in one piece.
func splitTagTokens(s string) []string {
	var out []string
	var buf []rune
	inSingle, inDouble := false, false

	flush := func() {
		if len(buf) > 0 {
			out = append(out, string(buf))
			buf = buf[:0]
		}
	}

	for _, r := range s {
		switch r {
		case '\'':
			if !inDouble {
				inSingle = !inSingle
				continue
			}
			buf = append(buf, r)
		case '"':
			if !inSingle {
				inDouble = !inDouble
				continue
			}
			buf = append(buf, r)
		default:
			if (r == ' ' || r == '\t') && !inSingle && !inDouble {
				flush()
				continue
			}
			buf = append(buf, r)
		}
	}
	flush()
	return out
}

// parseTags resolves the comment text of one field into Annotations.
// Text before the first @tag is treated as free comment and ignored.
// The tag set is closed: anything else is a MalformedAnnotation.
func parseTags(text string, at loc) (Annotations, error) {
	var a Annotations

	tokens := splitTagTokens(text)
	i := 0
	// skip free-text lead-in
	for i < len(tokens) && !strings.HasPrefix(tokens[i], "@") {
		i++
	}

	for i < len(tokens) {
		tag := strings.TrimPrefix(tokens[i], "@")
		i++

		// collect arguments up to the next @tag
		var args []string
		for i < len(tokens) && !strings.HasPrefix(tokens[i], "@") {
			args = append(args, tokens[i])
			i++
		}

		switch tag {
		case "pk":
			a.PK = true
		case "unique":
			a.Unique = true
		case "notNull":
			a.NotNull = true
		case "default":
			if len(args) == 0 {
				return a, at.malformed("default", "missing default value argument")
			}
			v := strings.Join(args, " ")
			a.Default = &v
		case "ref":
			if len(args) == 0 {
				return a, at.malformed("ref", "missing target argument (<Entity>.<Field> [cardinality])")
			}
			m := refTargetRe.FindStringSubmatch(args[0])
			if m == nil {
				return a, at.malformed("ref", "target must be <Entity>.<Field>, got "+args[0])
			}
			card := "many-to-one"
			if len(args) > 1 {
				card = args[1]
				if !cardinalities[card] {
					return a, at.malformed("ref", "unknown cardinality "+card)
				}
			}
			a.Ref = &Ref{Entity: m[1], Field: m[2], Cardinality: card}
		default:
			return a, at.malformed(tag, "unrecognized tag")
		}
	}

	// @notNull contradicts a null default
	if a.NotNull && a.Default != nil {
		switch strings.ToLower(*a.Default) {
		case "null", "none":
			return a, at.malformed("default", "null default on a @notNull field")
		}
	}

	return a, nil
}

// hasTags reports whether the comment text carries at least one @tag.
func hasTags(text string) bool {
	for _, tok := range strings.Fields(text) {
		if strings.HasPrefix(tok, "@") && len(tok) > 1 {
			return true
		}
	}
	return false
}

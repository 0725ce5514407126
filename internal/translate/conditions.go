package translate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ppiankov/geoshort/internal/tables"
)

var segmentNameRe = regexp.MustCompile(`^[A-Z]{2}$`)

// conditions translates the clause list after a point's '|' and joins the
// clauses with ", ". Clauses are separated by top-level ',' or '|'.
func (t *Translator) conditions(list string, depth int) string {
	var clauses []string
	for _, part := range splitTopLevel(list, ",|") {
		if part = strings.TrimSpace(part); part != "" {
			clauses = append(clauses, t.clause(part, depth+1))
		}
	}
	return strings.Join(clauses, ", ")
}

// clause renders one condition so it reads inside "such that ..."
func (t *Translator) clause(c string, depth int) string {
	if depth > t.maxDepth {
		return c
	}
	c = t.norm.Normalize(c)

	if n, side, polygon, ok := regularParts(c); ok {
		shape := t.tables.PolygonName(n)
		return fmt.Sprintf("%s is %s %s with side %s", polygon, tables.Article(shape), shape, side)
	}

	if strings.HasPrefix(c, polygonPrefix) && strings.Contains(c, "*") {
		name, code, _ := strings.Cut(c[len(polygonPrefix):], "*")
		return fmt.Sprintf("polygon %s is %s", strings.TrimSpace(name), t.tables.Predicate(strings.TrimSpace(code)))
	}

	if strings.HasPrefix(c, "{") {
		return "it lies at " + stripBraces(c)
	}

	if isConstruction(c) {
		return embed(t.translate(c, depth))
	}

	if m, ok := parseMeasure(areaRe, c); ok && !m.query {
		return fmt.Sprintf("the area of %s is %s", m.object, m.value)
	}
	if m, ok := parseMeasure(perimeterRe, c); ok && !m.query {
		return fmt.Sprintf("the perimeter of %s is %s", m.object, m.value)
	}
	if m, ok := parseAngle(c); ok && !m.query {
		return fmt.Sprintf("angle %s measures %s degrees", m.object, m.value)
	}

	if m := relationshipRe.FindStringSubmatch(c); m != nil && m[3] == "" {
		return fmt.Sprintf("%s are %s", strings.Join(splitList(m[1], ";"), " and "), t.relationTerm(m[2]))
	}
	if m := propertyRe.FindStringSubmatch(c); m != nil && m[3] == "" {
		return fmt.Sprintf("%s is %s", strings.TrimSpace(m[1]), t.tables.Predicate(m[2]))
	}

	if left, right, found := strings.Cut(c, "="); found {
		left, right = strings.TrimSpace(left), strings.TrimSpace(right)
		if segmentNameRe.MatchString(left) {
			return fmt.Sprintf("%s has length %s", left, right)
		}
		return fmt.Sprintf("%s equals %s", left, right)
	}

	return c
}

// embed turns a sentence into a clause: lower-case first letter, no
// trailing period
func embed(sentence string) string {
	sentence = strings.TrimSuffix(strings.TrimSpace(sentence), ".")
	r, size := utf8.DecodeRuneInString(sentence)
	if size == 0 {
		return sentence
	}
	return string(unicode.ToLower(r)) + sentence[size:]
}

// splitTopLevel splits s on any rune in seps that is not nested inside
// (), [] or {}
func splitTopLevel(s, seps string) []string {
	var parts []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 && strings.ContainsRune(seps, r) {
				parts = append(parts, s[start:i])
				start = i + len(string(r))
			}
		}
	}
	return append(parts, s[start:])
}

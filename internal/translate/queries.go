package translate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	querySuffix      = "?"
	proofQueryMarker = `\?`
	angleSymbol      = "∠"
)

var (
	areaRe      = regexp.MustCompile(`^\[([^\]]+)\]\s*(.*)$`)
	perimeterRe = regexp.MustCompile(`^\(([^)]+)\)\s*(.*)$`)

	// obj*CODE and obj;obj*CODE, each optionally followed by '?'
	propertyRe     = regexp.MustCompile(`^([^*=;]+)\*([^*=;\s?]+)\s*(\?)?$`)
	relationshipRe = regexp.MustCompile(`^([^*=]+;[^*=]+)\*([^*=;\s?]+)\s*(\?)?$`)
)

// measure is a bracket- or parenthesis-delimited object with an assignment
// or query suffix
type measure struct {
	object string
	value  string
	query  bool
}

func parseMeasure(re *regexp.Regexp, stmt string) (measure, bool) {
	m := re.FindStringSubmatch(stmt)
	if m == nil {
		return measure{}, false
	}
	object := strings.TrimSpace(m[1])
	suffix := strings.TrimSpace(m[2])

	switch {
	case suffix == querySuffix || suffix == "="+querySuffix:
		return measure{object: object, query: true}, true
	case strings.HasPrefix(suffix, "="):
		value := strings.TrimSpace(suffix[1:])
		if value == "" {
			return measure{}, false
		}
		return measure{object: object, value: value}, true
	}
	return measure{}, false
}

func classifyArea(_ *Translator, stmt string) Shape {
	if _, ok := parseMeasure(areaRe, stmt); ok {
		return ShapeArea
	}
	return ShapeNone
}

func (t *Translator) area(stmt string, _ Shape, _ int) string {
	m, _ := parseMeasure(areaRe, stmt)
	return renderMeasure("area", m)
}

func classifyPerimeter(_ *Translator, stmt string) Shape {
	if _, ok := parseMeasure(perimeterRe, stmt); ok {
		return ShapePerimeter
	}
	return ShapeNone
}

func (t *Translator) perimeter(stmt string, _ Shape, _ int) string {
	m, _ := parseMeasure(perimeterRe, stmt)
	return renderMeasure("perimeter", m)
}

func renderMeasure(quantity string, m measure) string {
	if m.query {
		return fmt.Sprintf("What is the %s of %s?", quantity, m.object)
	}
	return fmt.Sprintf("Let the %s of %s be %s.", quantity, m.object, m.value)
}

// parseAngle reads <ABC=90, ∠ABC=90°, <ABC? and <ABC=?
func parseAngle(stmt string) (measure, bool) {
	var body string
	switch {
	case strings.HasPrefix(stmt, "<"):
		body = stmt[1:]
	case strings.HasPrefix(stmt, angleSymbol):
		body = stmt[len(angleSymbol):]
	default:
		return measure{}, false
	}

	if name, value, found := strings.Cut(body, "="); found {
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)
		if name == "" || value == "" {
			return measure{}, false
		}
		if value == querySuffix {
			return measure{object: name, query: true}, true
		}
		return measure{object: name, value: strings.TrimSuffix(value, "°")}, true
	}
	if strings.HasSuffix(body, querySuffix) && !strings.HasSuffix(body, proofQueryMarker) {
		name := strings.TrimSpace(strings.TrimSuffix(body, querySuffix))
		if name == "" {
			return measure{}, false
		}
		return measure{object: name, query: true}, true
	}
	return measure{}, false
}

func classifyAngle(_ *Translator, stmt string) Shape {
	if _, ok := parseAngle(stmt); ok {
		return ShapeAngle
	}
	return ShapeNone
}

func (t *Translator) angle(stmt string, _ Shape, _ int) string {
	m, _ := parseAngle(stmt)
	if m.query {
		return fmt.Sprintf("What is the measure of angle %s?", m.object)
	}
	return fmt.Sprintf("Angle %s measures %s degrees.", m.object, m.value)
}

func isProofQuery(stmt string) bool {
	return strings.Contains(stmt, proofQueryMarker)
}

// classifyEquality skips property checks and proof queries; both may
// contain '=' as part of their own grammar
func classifyEquality(_ *Translator, stmt string) Shape {
	if !strings.Contains(stmt, "=") || isProofQuery(stmt) {
		return ShapeNone
	}
	if propertyRe.MatchString(stmt) || relationshipRe.MatchString(stmt) {
		return ShapeNone
	}
	if left, _, _ := strings.Cut(stmt, "="); strings.TrimSpace(left) == "" {
		return ShapeNone
	}
	return ShapeEquality
}

func (t *Translator) equality(stmt string, _ Shape, _ int) string {
	left, right, _ := strings.Cut(stmt, "=")
	left, right = strings.TrimSpace(left), strings.TrimSpace(right)

	switch {
	case right == querySuffix:
		return fmt.Sprintf("What is the value of %s?", left)
	case utf8.RuneCountInString(left) <= 3 && utf8.RuneCountInString(right) <= 3:
		return fmt.Sprintf("Let %s equal %s.", left, right)
	}
	return fmt.Sprintf("%s equals %s.", left, right)
}

func classifyProperty(_ *Translator, stmt string) Shape {
	if !isProofQuery(stmt) && propertyRe.MatchString(stmt) {
		return ShapeProperty
	}
	return ShapeNone
}

func (t *Translator) property(stmt string, _ Shape, _ int) string {
	m := propertyRe.FindStringSubmatch(stmt)
	object := strings.TrimSpace(m[1])
	predicate := t.tables.Predicate(m[2])
	if m[3] != "" {
		return fmt.Sprintf("Is %s %s?", object, predicate)
	}
	return fmt.Sprintf("%s is %s.", object, predicate)
}

func classifyRelationship(_ *Translator, stmt string) Shape {
	if !isProofQuery(stmt) && relationshipRe.MatchString(stmt) {
		return ShapeRelationship
	}
	return ShapeNone
}

func (t *Translator) relationship(stmt string, _ Shape, _ int) string {
	m := relationshipRe.FindStringSubmatch(stmt)
	objects := strings.Join(splitList(m[1], ";"), " and ")
	relation := t.relationTerm(m[2])
	if m[3] != "" {
		return fmt.Sprintf("Are %s %s?", objects, relation)
	}
	return fmt.Sprintf("%s are %s.", objects, relation)
}

// relationTerm prefers the relationship table; S means collinear here,
// not a property
func (t *Translator) relationTerm(code string) string {
	if term, ok := t.tables.Relationship(code); ok {
		return term
	}
	return t.tables.Predicate(code)
}

func classifyProofQuery(_ *Translator, stmt string) Shape {
	if isProofQuery(stmt) {
		return ShapeProofQuery
	}
	return ShapeNone
}

func (t *Translator) proofQuery(stmt string, _ Shape, _ int) string {
	content := strings.TrimSpace(strings.Replace(stmt, proofQueryMarker, "", 1))
	return fmt.Sprintf("Prove that %s.", strings.TrimSuffix(content, "."))
}

func classifyQuestion(_ *Translator, stmt string) Shape {
	if strings.HasSuffix(stmt, querySuffix) {
		return ShapeQuestion
	}
	return ShapeNone
}

func (t *Translator) question(stmt string, _ Shape, _ int) string {
	return fmt.Sprintf("What is %s?", strings.TrimSpace(strings.TrimSuffix(stmt, querySuffix)))
}

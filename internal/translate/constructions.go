package translate

import (
	"fmt"
	"regexp"
	"strings"
)

// Construction prefixes
const (
	pointPrefix   = "P:"
	segmentPrefix = "S:"
	linePrefix    = "L:"
	rayPrefix     = "W:"
	circlePrefix  = "C:"
	polygonPrefix = "J:"
	regularPrefix = "R:"
	graphPrefix   = "G:"
)

var constructionPrefixes = []string{
	pointPrefix, segmentPrefix, linePrefix, rayPrefix,
	circlePrefix, polygonPrefix, regularPrefix, graphPrefix,
}

var (
	intersectionRe = regexp.MustCompile(`^([^=.|]+)=([^=x]+)x([^=x]+)$`)

	// a segment name running straight into another construction, e.g.
	// S:ABP:C where the '/' before P:C was forgotten
	concatenatedRe = regexp.MustCompile(`^([A-Za-z]{2,3})([PSLWCJRG]:.+)$`)
	segmentListRe  = regexp.MustCompile(`^[A-Z]{2,3}(\s*,\s*[A-Z]{2,3})+$`)

	numericRe = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

func isConstruction(stmt string) bool {
	for _, p := range constructionPrefixes {
		if strings.HasPrefix(stmt, p) {
			return true
		}
	}
	return false
}

func classifyGraph(_ *Translator, stmt string) Shape {
	if strings.HasPrefix(stmt, graphPrefix) {
		return ShapeGraph
	}
	return ShapeNone
}

func (t *Translator) graph(stmt string, _ Shape, _ int) string {
	eq := strings.TrimSpace(stmt[len(graphPrefix):])
	eq = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(eq, "{"), "}"))
	return fmt.Sprintf("Graph the function %s.", eq)
}

func classifyPoint(_ *Translator, stmt string) Shape {
	if !strings.HasPrefix(stmt, pointPrefix) {
		return ShapeNone
	}
	rest := strings.TrimSpace(stmt[len(pointPrefix):])

	hasBar := strings.Contains(rest, "|")
	switch {
	case strings.Contains(rest, ",") && !hasBar && !strings.ContainsAny(rest, ".{"):
		return ShapePointMulti
	case !hasBar && isIntersection(rest):
		return ShapePointIntersection
	case hasBar:
		head, conds, _ := strings.Cut(rest, "|")
		if strings.Contains(head, ".") {
			return ShapePointOnObjectWithConditions
		}
		if strings.HasPrefix(strings.TrimSpace(conds), "{") {
			return ShapePointCoordinate
		}
		return ShapePointWithConditions
	case strings.Contains(rest, "{"):
		return ShapePointCoordinate
	case strings.Contains(rest, "."):
		return ShapePointOnObject
	}
	return ShapePoint
}

// parseIntersection splits `E=ABxCD` into its trimmed parts. Every part
// must be non-empty.
func parseIntersection(rest string) (name, a, b string, ok bool) {
	m := intersectionRe.FindStringSubmatch(rest)
	if m == nil {
		return "", "", "", false
	}
	name, a, b = strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), strings.TrimSpace(m[3])
	if name == "" || a == "" || b == "" {
		return "", "", "", false
	}
	return name, a, b, true
}

func isIntersection(rest string) bool {
	_, _, _, ok := parseIntersection(rest)
	return ok
}

func (t *Translator) point(stmt string, shape Shape, depth int) string {
	rest := strings.TrimSpace(stmt[len(pointPrefix):])

	switch shape {
	case ShapePointMulti:
		return fmt.Sprintf("Construct points %s.", strings.Join(splitList(rest, ","), ", "))

	case ShapePointIntersection:
		name, a, b, _ := parseIntersection(rest)
		return fmt.Sprintf("Let point %s be the intersection of %s and %s.", name, a, b)

	case ShapePointOnObjectWithConditions:
		head, conds, _ := strings.Cut(rest, "|")
		name, base, _ := strings.Cut(head, ".")
		return fmt.Sprintf("Construct point %s on %s such that %s.",
			strings.TrimSpace(name), strings.TrimSpace(base), t.conditions(conds, depth))

	case ShapePointCoordinate:
		name, coords, found := strings.Cut(rest, "|")
		if !found {
			i := strings.Index(rest, "{")
			name, coords = rest[:i], rest[i:]
		}
		return fmt.Sprintf("Let point %s be at %s.", strings.TrimSpace(name), stripBraces(coords))

	case ShapePointWithConditions:
		name, conds, _ := strings.Cut(rest, "|")
		return fmt.Sprintf("Construct point %s such that %s.", strings.TrimSpace(name), t.conditions(conds, depth))

	case ShapePointOnObject:
		name, base, _ := strings.Cut(rest, ".")
		return fmt.Sprintf("Construct point %s on %s.", strings.TrimSpace(name), strings.TrimSpace(base))
	}

	return fmt.Sprintf("Construct point %s.", rest)
}

func classifySegment(_ *Translator, stmt string) Shape {
	if !strings.HasPrefix(stmt, segmentPrefix) {
		return ShapeNone
	}
	rest := strings.TrimSpace(stmt[len(segmentPrefix):])
	switch {
	case concatenatedRe.MatchString(rest):
		return ShapeSegmentMalformed
	case segmentListRe.MatchString(rest):
		return ShapeSegmentList
	}
	return ShapeSegment
}

func (t *Translator) segment(stmt string, shape Shape, depth int) string {
	rest := strings.TrimSpace(stmt[len(segmentPrefix):])

	switch shape {
	case ShapeSegmentMalformed:
		m := concatenatedRe.FindStringSubmatch(rest)
		return fmt.Sprintf("Connect segment %s. [Possible missing '/' before \"%s\"; read as: %s]",
			m[1], m[2], t.translate(m[2], depth+1))
	case ShapeSegmentList:
		return fmt.Sprintf("Connect segments %s.", strings.Join(splitList(rest, ","), ", "))
	}
	return fmt.Sprintf("Connect segment %s.", rest)
}

func classifyLine(_ *Translator, stmt string) Shape {
	if strings.HasPrefix(stmt, linePrefix) {
		return ShapeLine
	}
	return ShapeNone
}

func (t *Translator) line(stmt string, _ Shape, _ int) string {
	return fmt.Sprintf("Connect line %s.", strings.TrimSpace(stmt[len(linePrefix):]))
}

func classifyRay(_ *Translator, stmt string) Shape {
	if strings.HasPrefix(stmt, rayPrefix) {
		return ShapeRay
	}
	return ShapeNone
}

func (t *Translator) ray(stmt string, _ Shape, _ int) string {
	return fmt.Sprintf("Construct ray %s.", strings.TrimSpace(stmt[len(rayPrefix):]))
}

// classifyCircle declines bodies that are not two or three parts so later
// rules get a chance at them
func classifyCircle(_ *Translator, stmt string) Shape {
	if !strings.HasPrefix(stmt, circlePrefix) {
		return ShapeNone
	}
	parts := trimAll(strings.Split(stmt[len(circlePrefix):], ";"))
	for _, part := range parts {
		if part == "" {
			return ShapeNone
		}
	}
	switch len(parts) {
	case 3:
		return ShapeCircleThreePoint
	case 2:
		if numericRe.MatchString(parts[1]) {
			return ShapeCircleCenterRadius
		}
		return ShapeCircleCenterPoint
	}
	return ShapeNone
}

func (t *Translator) circle(stmt string, shape Shape, _ int) string {
	parts := trimAll(strings.Split(stmt[len(circlePrefix):], ";"))

	switch shape {
	case ShapeCircleThreePoint:
		return fmt.Sprintf("Construct a circle through points %s, %s, and %s.", parts[0], parts[1], parts[2])
	case ShapeCircleCenterRadius:
		return fmt.Sprintf("Construct a circle with center %s and radius %s.", parts[0], parts[1])
	}
	return fmt.Sprintf("Construct a circle with center %s passing through point %s.", parts[0], parts[1])
}

func classifyPolygon(_ *Translator, stmt string) Shape {
	if !strings.HasPrefix(stmt, polygonPrefix) {
		return ShapeNone
	}
	if strings.Contains(stmt, "*") {
		return ShapePolygonProperty
	}
	return ShapePolygon
}

func (t *Translator) polygon(stmt string, shape Shape, _ int) string {
	rest := strings.TrimSpace(stmt[len(polygonPrefix):])
	if shape != ShapePolygonProperty {
		return fmt.Sprintf("Construct polygon %s.", rest)
	}

	name, code, _ := strings.Cut(rest, "*")
	name, code = strings.TrimSpace(name), strings.TrimSpace(code)
	return fmt.Sprintf("Construct %s polygon %s.", t.tables.Predicate(code), name)
}

// regularParts splits `n;side=polygon`
func regularParts(stmt string) (n, side, polygon string, ok bool) {
	if !strings.HasPrefix(stmt, regularPrefix) {
		return "", "", "", false
	}
	n, segPoly, found := strings.Cut(stmt[len(regularPrefix):], ";")
	if !found {
		return "", "", "", false
	}
	side, polygon, found = strings.Cut(segPoly, "=")
	if !found {
		return "", "", "", false
	}
	n, side, polygon = strings.TrimSpace(n), strings.TrimSpace(side), strings.TrimSpace(polygon)
	if n == "" || side == "" || polygon == "" {
		return "", "", "", false
	}
	return n, side, polygon, true
}

func classifyRegularPolygon(_ *Translator, stmt string) Shape {
	if _, _, _, ok := regularParts(stmt); ok {
		return ShapeRegularPolygon
	}
	return ShapeNone
}

func (t *Translator) regularPolygon(stmt string, _ Shape, _ int) string {
	n, side, polygon, _ := regularParts(stmt)
	return fmt.Sprintf("Construct %s %s with side %s.", t.tables.PolygonName(n), polygon, side)
}

// splitList splits on sep, trims, and drops empty items
func splitList(s, sep string) []string {
	var items []string
	for _, item := range strings.Split(s, sep) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func trimAll(items []string) []string {
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}
	return items
}

func stripBraces(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	return strings.TrimSpace(s)
}

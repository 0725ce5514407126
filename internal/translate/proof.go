package translate

import "strings"

const (
	proofPrefix              = `\p`
	contradictionProofPrefix = `\pC`
)

// markers are zero-argument statements matched exactly
var markers = map[string]struct {
	shape Shape
	text  string
}{
	`\q`:  {ShapeProofClose, "And that is what was to be shown."},
	`\qC`: {ShapeContradictionClose, "Achieving a contradiction."},
	`\bc`: {ShapeCausal, "Because"},
	`\th`: {ShapeCausal, "Therefore"},
}

func classifyProofWrapper(_ *Translator, stmt string) Shape {
	if _, ok := wrappedContent(stmt, contradictionProofPrefix); ok {
		return ShapeProofContradictionOpen
	}
	if _, ok := wrappedContent(stmt, proofPrefix); ok {
		return ShapeProofOpen
	}
	return ShapeNone
}

func (t *Translator) proofWrapper(stmt string, shape Shape, depth int) string {
	if shape == ShapeProofContradictionOpen {
		content, _ := wrappedContent(stmt, contradictionProofPrefix)
		return "We will prove by contradiction: " + t.translate(content, depth+1)
	}
	content, _ := wrappedContent(stmt, proofPrefix)
	return "We will prove: " + t.translate(content, depth+1)
}

// wrappedContent accepts both `\p:goal` and `\p{goal}`
func wrappedContent(stmt, prefix string) (string, bool) {
	if !strings.HasPrefix(stmt, prefix) {
		return "", false
	}
	rest := stmt[len(prefix):]
	switch {
	case strings.HasPrefix(rest, ":"):
		return rest[1:], true
	case strings.HasPrefix(rest, "{"):
		return strings.TrimSuffix(rest[1:], "}"), true
	}
	return "", false
}

func classifyMarker(_ *Translator, stmt string) Shape {
	if m, ok := markers[stmt]; ok {
		return m.shape
	}
	return ShapeNone
}

func (t *Translator) marker(stmt string, _ Shape, _ int) string {
	return markers[stmt].text
}

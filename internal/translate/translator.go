package translate

import (
	"strings"

	"github.com/ppiankov/geoshort/internal/normalize"
	"github.com/ppiankov/geoshort/internal/tables"
)

// DefaultMaxDepth bounds recursion through proof wrappers, conditions and
// casework main clauses
const DefaultMaxDepth = 16

// rule is one entry in the dispatch order. classify reports the shape the
// rule would produce, or ShapeNone to let the next rule try.
type rule struct {
	classify func(t *Translator, stmt string) Shape
	render   func(t *Translator, stmt string, shape Shape, depth int) string
}

// structuralRules see the raw statement, before any substitution pass
func structuralRules() []rule {
	return []rule{
		{classify: classifyCasework, render: (*Translator).casework},
		{classify: classifyProofWrapper, render: (*Translator).proofWrapper},
		{classify: classifyMarker, render: (*Translator).marker},
	}
}

// contentRules see the normalized statement. Constructions come before the
// generic equality/property/question rules because their own grammar uses
// '=', '*' and '?'.
func contentRules() []rule {
	return []rule{
		{classify: classifyGraph, render: (*Translator).graph},
		{classify: classifyPoint, render: (*Translator).point},
		{classify: classifySegment, render: (*Translator).segment},
		{classify: classifyLine, render: (*Translator).line},
		{classify: classifyRay, render: (*Translator).ray},
		{classify: classifyCircle, render: (*Translator).circle},
		{classify: classifyPolygon, render: (*Translator).polygon},
		{classify: classifyRegularPolygon, render: (*Translator).regularPolygon},
		{classify: classifyArea, render: (*Translator).area},
		{classify: classifyPerimeter, render: (*Translator).perimeter},
		{classify: classifyAngle, render: (*Translator).angle},
		{classify: classifyEquality, render: (*Translator).equality},
		{classify: classifyProperty, render: (*Translator).property},
		{classify: classifyRelationship, render: (*Translator).relationship},
		{classify: classifyProofQuery, render: (*Translator).proofQuery},
		{classify: classifyQuestion, render: (*Translator).question},
	}
}

// Translator turns one shorthand statement into English
type Translator struct {
	tables     *tables.Tables
	norm       *normalize.Normalizer
	maxDepth   int
	structural []rule
	content    []rule
}

// NewTranslator creates a translator over the given tables. A maxDepth of
// zero or less selects DefaultMaxDepth.
func NewTranslator(tbl *tables.Tables, maxDepth int) *Translator {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Translator{
		tables:     tbl,
		norm:       normalize.NewNormalizer(tbl),
		maxDepth:   maxDepth,
		structural: structuralRules(),
		content:    contentRules(),
	}
}

// Translate returns the English rendering of one statement. It never fails:
// statements no rule recognizes come back unchanged.
func (t *Translator) Translate(stmt string) string {
	_, out := t.Explain(stmt)
	return out
}

// Classify reports which dispatch rule a statement matches
func (t *Translator) Classify(stmt string) Shape {
	shape, _, _ := t.dispatch(strings.TrimSpace(stmt))
	return shape
}

// Explain returns both the matched shape and the translation
func (t *Translator) Explain(stmt string) (Shape, string) {
	stmt = strings.TrimSpace(stmt)
	if stmt == "" {
		return ShapeNone, ""
	}
	shape, text, r := t.dispatch(stmt)
	if r == nil {
		return shape, text
	}
	return shape, r.render(t, text, shape, 0)
}

// translate is the recursive entry point used by nested clauses
func (t *Translator) translate(stmt string, depth int) string {
	stmt = strings.TrimSpace(stmt)
	if stmt == "" {
		return ""
	}
	if depth > t.maxDepth {
		return stmt
	}
	shape, text, r := t.dispatch(stmt)
	if r == nil {
		return text
	}
	return r.render(t, text, shape, depth)
}

// dispatch finds the first matching rule. It returns the text the rule
// should render, which is the normalized statement for content rules. A nil
// rule means passthrough, and the returned text is then the statement
// itself unless normalization rewrote a reserved token.
func (t *Translator) dispatch(stmt string) (Shape, string, *rule) {
	for i := range t.structural {
		if shape := t.structural[i].classify(t, stmt); shape != ShapeNone {
			return shape, stmt, &t.structural[i]
		}
	}

	normalized := t.norm.Normalize(stmt)
	for i := range t.content {
		if shape := t.content[i].classify(t, normalized); shape != ShapeNone {
			return shape, normalized, &t.content[i]
		}
	}

	// echo the statement as written unless a reserved token was rewritten
	if normalized == t.norm.Canonical(stmt) {
		return ShapePassthrough, stmt, nil
	}
	return ShapePassthrough, normalized, nil
}

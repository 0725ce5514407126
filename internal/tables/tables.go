package tables

import "strings"

// Entry maps a shorthand code to its English term
type Entry struct {
	Code string
	Term string
}

// Tables holds every lookup table used by the normalizer and translator.
// A Tables value is built once and never mutated; all accessors return copies
// or scalar values so callers cannot alter shared state.
type Tables struct {
	properties    []Entry
	relationships []Entry
	theorems      []Entry
	constants     []Entry
	connectives   []Entry
	inequalities  []Entry
	symbols       []Entry
	polygonNames  map[string]string
}

// Default returns the standard shorthand tables
func Default() *Tables {
	return &Tables{
		properties: []Entry{
			{Code: "RT", Term: "right triangle"},
			{Code: "R", Term: "regular"},
			{Code: "CV", Term: "convex"},
			{Code: "CC", Term: "concave"},
			{Code: "TR", Term: "trapezoid"},
			{Code: "TP", Term: "tangential"},
			{Code: "T", Term: "triangle"},
			{Code: "OB", Term: "obtuse"},
			{Code: "AC", Term: "acute"},
			{Code: "SC", Term: "scalene"},
			{Code: "IS", Term: "isosceles"},
			{Code: "Q", Term: "quadrilateral"},
			{Code: "PL", Term: "parallelogram"},
			{Code: "EQ", Term: "equilateral"},
			{Code: "EA", Term: "equiangular"},
			{Code: "C", Term: "cyclic"},
		},

		// Each relationship has an ASCII code and a symbol
		relationships: []Entry{
			{Code: "PR", Term: "perpendicular"},
			{Code: "⊥", Term: "perpendicular"},
			{Code: "P", Term: "parallel"},
			{Code: "∥", Term: "parallel"},
			{Code: "CG", Term: "congruent"},
			{Code: "≅", Term: "congruent"},
			{Code: "SM", Term: "similar"},
			{Code: "∼", Term: "similar"},
			{Code: "~", Term: "similar"},
			{Code: "S", Term: "collinear"},
			{Code: "⋯", Term: "collinear"},
		},

		// Order matters: _ML must be tried before _M
		theorems: []Entry{
			{Code: "_TI", Term: "Triangle Inequality"},
			{Code: "_ST", Term: "Stewart's Theorem"},
			{Code: "_AT", Term: "Apollonius Theorem"},
			{Code: "_VT", Term: "Viviani's Theorem"},
			{Code: "_NP", Term: "Napoleon's Theorem"},
			{Code: "_EL", Term: "Euler Line"},
			{Code: "_9C", Term: "Nine-Point Circle"},
			{Code: "_SL", Term: "Simson Line"},
			{Code: "_CV", Term: "Ceva's Theorem"},
			{Code: "_ML", Term: "Menelaus' Theorem"},
			{Code: "_AB", Term: "Angle Bisector Theorem"},
			{Code: "_IE", Term: "Incenter-Excenter Lemma"},
			{Code: "_CT", Term: "Carnot's Theorem"},
			{Code: "_M", Term: "Miquel's Theorem"},
			{Code: "_ET", Term: "Euler's Theorem"},
			{Code: "_DT", Term: "Desargues' Theorem"},
			{Code: "_HF", Term: "Heron's Formula"},
			{Code: "_QF", Term: "Bretschneider's Formula"},
			{Code: "_BF", Term: "Brahmagupta's Formula"},
			{Code: "_JT", Term: "Japanese Theorem"},
			{Code: "_NT", Term: "Newton's Theorem"},
			{Code: "_PT", Term: "Ptolemy's Theorem"},
			{Code: "_PP", Term: "Power of a Point Theorem"},
			{Code: "_BT", Term: "Butterfly Theorem"},
			{Code: "_PC", Term: "Pascal's Theorem"},
			{Code: "_LC", Term: "Law of Cosines"},
			{Code: "_LS", Term: "Law of Sines"},
			{Code: "_LT", Term: "Law of Tangents"},
			{Code: "_PK", Term: "Pick's Theorem"},
			{Code: "_SH", Term: "Shoelace Theorem"},
		},

		constants: []Entry{
			{Code: `\pi`, Term: "π"},
			{Code: `\tau`, Term: "τ"},
			{Code: `\phi`, Term: "φ"},
		},

		connectives: []Entry{
			{Code: `\or`, Term: " or "},
			{Code: "∨", Term: " or "},
			{Code: `\and`, Term: " and "},
			{Code: "∧", Term: " and "},
			{Code: "=>", Term: " implies "},
			{Code: "⇒", Term: " implies "},
			{Code: `\A`, Term: "for all "},
			{Code: "∀", Term: "for all "},
			{Code: `\E`, Term: "there exists "},
			{Code: "∃", Term: "there exists "},
		},

		// ASCII spellings are folded onto the symbol before expansion
		symbols: []Entry{
			{Code: "!=", Term: "≠"},
			{Code: ">=", Term: "≥"},
			{Code: "<=", Term: "≤"},
		},
		inequalities: []Entry{
			{Code: "≠", Term: " is not equal to "},
			{Code: "≥", Term: " is greater than or equal to "},
			{Code: "≤", Term: " is less than or equal to "},
		},

		polygonNames: map[string]string{
			"3": "equilateral triangle",
			"4": "square",
			"5": "regular pentagon",
			"6": "regular hexagon",
			"8": "regular octagon",
		},
	}
}

// Property looks up a property code
func (t *Tables) Property(code string) (string, bool) {
	return lookup(t.properties, code)
}

// Relationship looks up a relationship code or symbol
func (t *Tables) Relationship(code string) (string, bool) {
	return lookup(t.relationships, code)
}

// Constant looks up a named-constant code
func (t *Tables) Constant(code string) (string, bool) {
	return lookup(t.constants, code)
}

// Theorem looks up a theorem citation code
func (t *Tables) Theorem(code string) (string, bool) {
	return lookup(t.theorems, code)
}

// PolygonName returns the shape name for a regular polygon with n sides
func (t *Tables) PolygonName(n string) string {
	if name, ok := t.polygonNames[n]; ok {
		return name
	}
	return "regular " + n + "-gon"
}

// Predicate renders a property or relationship code as it reads after
// "is"/"are". Properties win over relationships; unknown codes are returned
// verbatim.
func (t *Tables) Predicate(code string) string {
	if term, ok := t.Property(code); ok {
		return term
	}
	if term, ok := t.Relationship(code); ok {
		return term
	}
	return code
}

// Properties returns a copy of the property table
func (t *Tables) Properties() []Entry {
	return append([]Entry(nil), t.properties...)
}

// Relationships returns a copy of the relationship table
func (t *Tables) Relationships() []Entry {
	return append([]Entry(nil), t.relationships...)
}

// Theorems returns a copy of the theorem table in replacement order
func (t *Tables) Theorems() []Entry {
	return append([]Entry(nil), t.theorems...)
}

// Constants returns a copy of the constant table
func (t *Tables) Constants() []Entry {
	return append([]Entry(nil), t.constants...)
}

// Connectives returns a copy of the logical connective table
func (t *Tables) Connectives() []Entry {
	return append([]Entry(nil), t.connectives...)
}

// InequalitySymbols returns the ASCII to symbol folding table
func (t *Tables) InequalitySymbols() []Entry {
	return append([]Entry(nil), t.symbols...)
}

// Inequalities returns the symbol to English table
func (t *Tables) Inequalities() []Entry {
	return append([]Entry(nil), t.inequalities...)
}

// Article returns "a" or "an" for the given noun phrase
func Article(phrase string) string {
	if phrase == "" {
		return "a"
	}
	switch strings.ToLower(phrase[:1]) {
	case "a", "e", "i", "o", "u":
		return "an"
	}
	return "a"
}

func lookup(entries []Entry, code string) (string, bool) {
	for _, e := range entries {
		if e.Code == code {
			return e.Term, true
		}
	}
	return "", false
}

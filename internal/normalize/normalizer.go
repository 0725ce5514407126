package normalize

import (
	"strings"

	"github.com/ppiankov/geoshort/internal/tables"
	"golang.org/x/text/unicode/norm"
)

// Normalizer rewrites reserved tokens in a statement into English before
// shape dispatch. The passes run in a fixed order: connectives, inequalities,
// theorem citations, then named constants.
type Normalizer struct {
	connectives  []tables.Entry
	symbols      []tables.Entry
	inequalities []tables.Entry
	theorems     []tables.Entry
	constants    []tables.Entry
}

// NewNormalizer creates a normalizer over the given tables
func NewNormalizer(tbl *tables.Tables) *Normalizer {
	return &Normalizer{
		connectives:  tbl.Connectives(),
		symbols:      tbl.InequalitySymbols(),
		inequalities: tbl.Inequalities(),
		theorems:     tbl.Theorems(),
		constants:    tbl.Constants(),
	}
}

// Normalize applies every pass to the statement
func (n *Normalizer) Normalize(stmt string) string {
	stmt = n.Canonical(stmt)
	stmt = n.Connectives(stmt)
	stmt = n.Inequalities(stmt)
	stmt = n.Theorems(stmt)
	stmt = n.Constants(stmt)
	return stmt
}

// Canonical composes stmt to NFC so decomposed spellings of symbols match
// the tables. It is the first step of Normalize.
func (n *Normalizer) Canonical(stmt string) string {
	return norm.NFC.String(stmt)
}

// Connectives expands and/or/implies/for-all/exists in both spellings
func (n *Normalizer) Connectives(stmt string) string {
	if !containsAny(stmt, n.connectives) {
		return stmt
	}
	for _, e := range n.connectives {
		stmt = strings.ReplaceAll(stmt, e.Code, e.Term)
	}
	return collapseSpaces(stmt)
}

// Inequalities folds ASCII inequality operators onto their symbols and then
// expands the symbols
func (n *Normalizer) Inequalities(stmt string) string {
	for _, e := range n.symbols {
		stmt = strings.ReplaceAll(stmt, e.Code, e.Term)
	}
	if !containsAny(stmt, n.inequalities) {
		return stmt
	}
	for _, e := range n.inequalities {
		stmt = strings.ReplaceAll(stmt, e.Code, e.Term)
	}
	return collapseSpaces(stmt)
}

// Theorems replaces theorem codes with "[by <name>]" citations.
//
// Only the first occurrence of each code is replaced. A statement citing the
// same theorem twice keeps the second code as written.
func (n *Normalizer) Theorems(stmt string) string {
	if !strings.Contains(stmt, "_") {
		return stmt
	}
	for _, e := range n.theorems {
		if strings.Contains(stmt, e.Code) {
			stmt = strings.Replace(stmt, e.Code, "[by "+e.Term+"]", 1)
		}
	}
	return stmt
}

// Constants expands named constants. An occurrence directly followed by the
// construction marker ':' is left alone. None of the default codes is a
// construction prefix, so the guard only matters for tables that add a
// one-letter code such as "P".
func (n *Normalizer) Constants(stmt string) string {
	for _, e := range n.constants {
		stmt = replaceUnlessFollowedBy(stmt, e.Code, e.Term, ':')
	}
	return stmt
}

func replaceUnlessFollowedBy(s, code, term string, next byte) string {
	if !strings.Contains(s, code) {
		return s
	}

	var b strings.Builder
	for {
		i := strings.Index(s, code)
		if i < 0 {
			b.WriteString(s)
			break
		}
		end := i + len(code)
		b.WriteString(s[:i])
		if end < len(s) && s[end] == next {
			b.WriteString(code)
		} else {
			b.WriteString(term)
		}
		s = s[end:]
	}
	return b.String()
}

func containsAny(s string, entries []tables.Entry) bool {
	for _, e := range entries {
		if strings.Contains(s, e.Code) {
			return true
		}
	}
	return false
}

// collapseSpaces squeezes the padding left by phrase substitution
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

package translate

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	caseworkOpen  = "<<"
	caseworkClose = ">>"

	caseworkBegin = "Begin casework analysis."
	caseworkEnd   = "End casework."
)

// caseRe matches one N(A:explanation,result) entry. The A: tag is optional.
var caseRe = regexp.MustCompile(`(\d+)\(\s*(?:A:)?\s*([^,()]+?)\s*,\s*([^()]+?)\s*\)`)

type caseEntry struct {
	number      string
	explanation string
	result      string
}

func classifyCasework(_ *Translator, stmt string) Shape {
	if strings.Contains(stmt, caseworkOpen) || strings.Contains(stmt, caseworkClose) {
		return ShapeCasework
	}
	return ShapeNone
}

// casework renders `<main><<case-list>>` as the main clause followed by one
// line per case. Blocks whose case list cannot be read degrade to a marker
// sentence for whichever delimiter half is present.
func (t *Translator) casework(stmt string, _ Shape, depth int) string {
	open := strings.Index(stmt, caseworkOpen)
	if open < 0 {
		return caseworkEnd
	}

	var lines []string
	if main := strings.TrimSpace(stmt[:open]); main != "" {
		lines = append(lines, t.translate(main, depth+1))
	}

	var cases []caseEntry
	body := stmt[open+len(caseworkOpen):]
	if end := strings.LastIndex(body, caseworkClose); end >= 0 {
		cases = parseCases(body[:end])
	}
	if len(cases) == 0 {
		return strings.Join(append(lines, caseworkBegin), "\n")
	}

	lines = append(lines, "Casework:")
	for _, c := range cases {
		explanation := t.norm.Normalize(c.explanation)
		result := strings.TrimSuffix(t.norm.Normalize(c.result), ".")
		lines = append(lines, fmt.Sprintf("Case %s: When %s, then %s.", c.number, explanation, result))
	}

	return strings.Join(lines, "\n")
}

// IsDegradedCasework reports whether a casework translation fell back to a
// marker sentence
func IsDegradedCasework(translation string) bool {
	return translation == caseworkEnd || strings.HasSuffix(translation, caseworkBegin)
}

func parseCases(list string) []caseEntry {
	var cases []caseEntry
	for _, m := range caseRe.FindAllStringSubmatch(list, -1) {
		cases = append(cases, caseEntry{
			number:      m[1],
			explanation: m[2],
			result:      m[3],
		})
	}
	return cases
}

package extract

import "strings"

const (
	// BlockMarker wraps a whole shorthand block: \\P:A/P:B\\
	BlockMarker = `\\`

	// Delimiter separates statements
	Delimiter = "/"
)

// Statement is one raw shorthand statement and its 1-based position
type Statement struct {
	Index int
	Text  string
}

// StatementExtractor splits raw shorthand input into statements
type StatementExtractor struct {
	marker    string
	delimiter string
}

// NewStatementExtractor creates an extractor for the standard notation
func NewStatementExtractor() *StatementExtractor {
	return &StatementExtractor{
		marker:    BlockMarker,
		delimiter: Delimiter,
	}
}

// Extract strips the optional outer block markers, splits on the statement
// delimiter and numbers the non-empty statements in order
func (e *StatementExtractor) Extract(input string) []Statement {
	text := e.stripMarkers(strings.TrimSpace(input))

	var statements []Statement
	for _, piece := range strings.Split(text, e.delimiter) {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		statements = append(statements, Statement{
			Index: len(statements) + 1,
			Text:  piece,
		})
	}

	return statements
}

// stripMarkers removes one leading and one trailing block marker when both
// are present
func (e *StatementExtractor) stripMarkers(text string) string {
	if len(text) < 2*len(e.marker) {
		return text
	}
	if strings.HasPrefix(text, e.marker) && strings.HasSuffix(text, e.marker) {
		return text[len(e.marker) : len(text)-len(e.marker)]
	}
	return text
}

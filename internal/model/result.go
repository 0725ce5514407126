package model

import (
	"strings"
	"time"
)

// Result is the translation of one statement
type Result struct {
	Index       int    `json:"index" yaml:"index"`                     // 1-based position in the input
	Original    string `json:"original" yaml:"original"`               // Statement as split from the input
	Translation string `json:"translation" yaml:"translation"`         // English rendering
	Shape       string `json:"shape,omitempty" yaml:"shape,omitempty"` // Matched dispatch rule, when requested
}

// Document is one translated input
type Document struct {
	ID           int64     `json:"id,omitempty" yaml:"id,omitempty"` // History row id, zero when not stored
	Source       string    `json:"source,omitempty" yaml:"source,omitempty"`
	Input        string    `json:"input" yaml:"input"`
	Results      []Result  `json:"results" yaml:"results"`
	TranslatedAt time.Time `json:"translated_at" yaml:"translated_at"`
}

// CopyText joins every translation with newlines, in index order
func (d *Document) CopyText() string {
	lines := make([]string, 0, len(d.Results))
	for _, r := range d.Results {
		lines = append(lines, r.Translation)
	}
	return strings.Join(lines, "\n")
}

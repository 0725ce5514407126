package model

// Coverage summarises how much of a document the translator recognized
type Coverage struct {
	Index      int            `json:"index" yaml:"index"`           // Recognized statements as a percentage (0-100)
	Confidence string         `json:"confidence" yaml:"confidence"` // "low", "medium", "high"
	Total      int            `json:"total" yaml:"total"`
	Recognized int            `json:"recognized" yaml:"recognized"`
	Shapes     map[string]int `json:"shapes" yaml:"shapes"` // Statements per matched rule
	Signals    []Signal       `json:"signals,omitempty" yaml:"signals,omitempty"`
}

// Signal is a diagnostic about part of a translation
type Signal struct {
	Type        SignalType     `json:"type" yaml:"type"`
	Severity    SignalSeverity `json:"severity" yaml:"severity"`
	Description string         `json:"description" yaml:"description"`
	Statements  []int          `json:"statements,omitempty" yaml:"statements,omitempty"` // Indices of affected statements
}

// SignalType classifies a diagnostic signal
type SignalType string

const (
	SignalUnrecognized     SignalType = "unrecognized"      // No rule matched; text echoed
	SignalMalformedSegment SignalType = "malformed_segment" // Likely missing '/' after a segment
	SignalDegradedCasework SignalType = "degraded_casework" // Casework delimiters without a readable case list
	SignalLowRecognition   SignalType = "low_recognition"   // Most statements were echoed
)

// SignalSeverity indicates the importance of the signal
type SignalSeverity string

const (
	SeverityInfo     SignalSeverity = "info"
	SeverityWarning  SignalSeverity = "warning"
	SeverityCritical SignalSeverity = "critical"
)

// CountSeverity returns how many signals carry the given severity
func (c Coverage) CountSeverity(s SignalSeverity) int {
	n := 0
	for _, sig := range c.Signals {
		if sig.Severity == s {
			n++
		}
	}
	return n
}

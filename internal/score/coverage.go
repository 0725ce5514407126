package score

import (
	"fmt"

	"github.com/ppiankov/geoshort/internal/model"
	"github.com/ppiankov/geoshort/internal/translate"
)

const lowRecognitionThreshold = 50

// Scorer measures how much of a translated document was recognized and
// raises signals for statements worth a second look
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Calculate builds the coverage summary for doc. Results must carry their
// shape names.
func (s *Scorer) Calculate(doc *model.Document) model.Coverage {
	cov := model.Coverage{
		Total:  len(doc.Results),
		Shapes: make(map[string]int),
	}

	var unrecognized, malformed, degraded []int
	for _, r := range doc.Results {
		cov.Shapes[r.Shape]++

		switch r.Shape {
		case translate.ShapePassthrough.String():
			unrecognized = append(unrecognized, r.Index)
			continue
		case translate.ShapeSegmentMalformed.String():
			malformed = append(malformed, r.Index)
		case translate.ShapeCasework.String():
			if translate.IsDegradedCasework(r.Translation) {
				degraded = append(degraded, r.Index)
			}
		}
		cov.Recognized++
	}

	cov.Index = 100
	if cov.Total > 0 {
		cov.Index = cov.Recognized * 100 / cov.Total
	}

	if len(unrecognized) > 0 {
		cov.Signals = append(cov.Signals, model.Signal{
			Type:        model.SignalUnrecognized,
			Severity:    model.SeverityWarning,
			Description: fmt.Sprintf("%d of %d statements matched no rule and were echoed unchanged", len(unrecognized), cov.Total),
			Statements:  unrecognized,
		})
	}
	if len(malformed) > 0 {
		cov.Signals = append(cov.Signals, model.Signal{
			Type:        model.SignalMalformedSegment,
			Severity:    model.SeverityWarning,
			Description: fmt.Sprintf("%d segment statements run into another construction", len(malformed)),
			Statements:  malformed,
		})
	}
	if len(degraded) > 0 {
		cov.Signals = append(cov.Signals, model.Signal{
			Type:        model.SignalDegradedCasework,
			Severity:    model.SeverityInfo,
			Description: fmt.Sprintf("%d casework blocks had no readable case list", len(degraded)),
			Statements:  degraded,
		})
	}
	if cov.Total > 0 && cov.Index < lowRecognitionThreshold {
		cov.Signals = append(cov.Signals, model.Signal{
			Type:        model.SignalLowRecognition,
			Severity:    model.SeverityCritical,
			Description: fmt.Sprintf("only %d%% of statements were recognized; is this shorthand?", cov.Index),
		})
	}

	cov.Confidence = confidence(cov)
	return cov
}

func confidence(cov model.Coverage) string {
	switch {
	case cov.Index >= 90 && len(cov.Signals) == 0:
		return "high"
	case cov.Index >= lowRecognitionThreshold:
		return "medium"
	}
	return "low"
}

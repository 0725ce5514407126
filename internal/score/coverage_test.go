package score

import (
	"testing"

	"github.com/ppiankov/geoshort/internal/model"
)

func doc(results ...model.Result) *model.Document {
	for i := range results {
		results[i].Index = i
	}
	return &model.Document{Results: results}
}

func TestScorer_Calculate(t *testing.T) {
	tests := []struct {
		name       string
		doc        *model.Document
		index      int
		recognized int
		confidence string
		signals    []model.SignalType
	}{
		{
			name:       "empty document",
			doc:        doc(),
			index:      100,
			confidence: "high",
		},
		{
			name: "fully recognized",
			doc: doc(
				model.Result{Shape: "point", Translation: "Construct point A."},
				model.Result{Shape: "segment", Translation: "Connect segment AB."},
			),
			index:      100,
			recognized: 2,
			confidence: "high",
		},
		{
			name: "mixed",
			doc: doc(
				model.Result{Shape: "passthrough", Translation: "hello"},
				model.Result{Shape: "point", Translation: "Construct point A."},
				model.Result{Shape: "segment-malformed", Translation: "Connect segment AB."},
				model.Result{Shape: "casework", Translation: "We split into cases.\nBegin casework analysis."},
			),
			index:      75,
			recognized: 3,
			confidence: "medium",
			signals: []model.SignalType{
				model.SignalUnrecognized,
				model.SignalMalformedSegment,
				model.SignalDegradedCasework,
			},
		},
		{
			name: "mostly prose",
			doc: doc(
				model.Result{Shape: "passthrough", Translation: "first"},
				model.Result{Shape: "passthrough", Translation: "second"},
				model.Result{Shape: "point", Translation: "Construct point A."},
			),
			index:      33,
			recognized: 1,
			confidence: "low",
			signals: []model.SignalType{
				model.SignalUnrecognized,
				model.SignalLowRecognition,
			},
		},
	}

	scorer := NewScorer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cov := scorer.Calculate(tt.doc)

			if cov.Index != tt.index {
				t.Errorf("expected index %d, got %d", tt.index, cov.Index)
			}
			if cov.Recognized != tt.recognized {
				t.Errorf("expected %d recognized, got %d", tt.recognized, cov.Recognized)
			}
			if cov.Total != len(tt.doc.Results) {
				t.Errorf("expected total %d, got %d", len(tt.doc.Results), cov.Total)
			}
			if cov.Confidence != tt.confidence {
				t.Errorf("expected confidence %q, got %q", tt.confidence, cov.Confidence)
			}
			if len(cov.Signals) != len(tt.signals) {
				t.Fatalf("expected %d signals, got %d: %+v", len(tt.signals), len(cov.Signals), cov.Signals)
			}
			for i, sig := range cov.Signals {
				if sig.Type != tt.signals[i] {
					t.Errorf("signal %d: expected %s, got %s", i, tt.signals[i], sig.Type)
				}
			}
		})
	}
}

func TestScorer_SignalStatements(t *testing.T) {
	cov := NewScorer().Calculate(doc(
		model.Result{Shape: "point", Translation: "Construct point A."},
		model.Result{Shape: "passthrough", Translation: "x"},
		model.Result{Shape: "casework", Translation: "End casework."},
	))

	if len(cov.Signals) != 2 {
		t.Fatalf("expected 2 signals, got %d", len(cov.Signals))
	}
	if got := cov.Signals[0].Statements; len(got) != 1 || got[0] != 1 {
		t.Errorf("expected unrecognized statement [1], got %v", got)
	}
	if got := cov.Signals[1].Statements; len(got) != 1 || got[0] != 2 {
		t.Errorf("expected degraded casework statement [2], got %v", got)
	}
	if cov.CountSeverity(model.SeverityInfo) != 1 {
		t.Errorf("expected one info signal, got %d", cov.CountSeverity(model.SeverityInfo))
	}
}

func TestScorer_ShapeCounts(t *testing.T) {
	cov := NewScorer().Calculate(doc(
		model.Result{Shape: "point"},
		model.Result{Shape: "point"},
		model.Result{Shape: "ray"},
	))

	if cov.Shapes["point"] != 2 {
		t.Errorf("expected 2 points, got %d", cov.Shapes["point"])
	}
	if cov.Shapes["ray"] != 1 {
		t.Errorf("expected 1 ray, got %d", cov.Shapes["ray"])
	}
}

func TestScorer_CaseworkFullIsNotFlagged(t *testing.T) {
	cov := NewScorer().Calculate(doc(
		model.Result{Shape: "casework", Translation: "Case 1: x > 0.\nCase 2: x < 0."},
	))
	if len(cov.Signals) != 0 {
		t.Errorf("expected no signals, got %+v", cov.Signals)
	}
}

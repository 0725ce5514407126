package model

import "testing"

func TestDocument_CopyText(t *testing.T) {
	doc := &Document{
		Results: []Result{
			{Index: 1, Original: "P:A", Translation: "Construct point A."},
			{Index: 2, Original: "S:AB", Translation: "Connect segment AB."},
		},
	}

	expected := "Construct point A.\nConnect segment AB."
	if got := doc.CopyText(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}

	empty := &Document{}
	if got := empty.CopyText(); got != "" {
		t.Errorf("expected empty copy text, got %q", got)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Translate.MaxDepth != 16 {
		t.Errorf("expected max depth 16, got %d", cfg.Translate.MaxDepth)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("expected text format, got %q", cfg.Output.Format)
	}
	if !cfg.Cache.Enabled {
		t.Error("expected cache enabled by default")
	}
	if cfg.History.Enabled {
		t.Error("expected history disabled by default")
	}
	if cfg.Concurrency.Workers < 1 {
		t.Errorf("expected at least one worker, got %d", cfg.Concurrency.Workers)
	}
}

package worker

import (
	"context"
	"path/filepath"
	"testing"
)

// allow takes a token for path without waiting
func allow(l *Limiter, path string) bool {
	return l.getLimiter(SourceKey(path)).Allow()
}

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(10, 5)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewLimiter(10, -1)
	if l2.defaultBurst != 5 {
		t.Errorf("expected default burst 5 for negative input, got %d", l2.defaultBurst)
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "proofs/one.txt"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
	if err := limiter.Wait(ctx, "drafts/two.txt"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_PerSource(t *testing.T) {
	limiter := NewLimiter(1, 1)

	if err := limiter.Wait(context.Background(), "proofs/one.txt"); err != nil {
		t.Errorf("first wait failed: %v", err)
	}

	// same directory shares the exhausted bucket
	if allow(limiter, "proofs/two.txt") {
		t.Error("expected allow to fail for the same source")
	}

	if !allow(limiter, "drafts/one.txt") {
		t.Error("expected allow for another source")
	}
}

func TestLimiter_SetSourceRate(t *testing.T) {
	limiter := NewLimiter(10, 10)
	limiter.SetSourceRate("slow", 0.1, 1)

	if !allow(limiter, filepath.Join("slow", "a.txt")) {
		t.Error("first read should pass")
	}
	if allow(limiter, filepath.Join("slow", "b.txt")) {
		t.Error("second read should fail")
	}
	if !allow(limiter, filepath.Join("fast", "a.txt")) {
		t.Error("other source should pass")
	}
}

func TestLimiter_Unlimited(t *testing.T) {
	limiter := NewLimiter(0, 1)
	for i := 0; i < 20; i++ {
		if !allow(limiter, "proofs/one.txt") {
			t.Fatalf("expected unlimited limiter to allow read %d", i)
		}
	}
}

func TestLimiter_SetSourceRateUnlimited(t *testing.T) {
	limiter := NewLimiter(1, 1)
	limiter.SetSourceRate("./fast", 0, 1)

	for i := 0; i < 10; i++ {
		if !allow(limiter, filepath.Join("fast", "a.txt")) {
			t.Fatalf("expected unlimited source to allow read %d", i)
		}
	}
}

func TestSourceKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"proofs/one.txt", "proofs"},
		{"one.txt", "."},
		{"-", "-"},
		{"a/b/../c/x.txt", filepath.Join("a", "c")},
	}

	for _, tt := range tests {
		if got := SourceKey(filepath.FromSlash(tt.input)); got != tt.expected {
			t.Errorf("SourceKey(%q): expected %q, got %q", tt.input, tt.expected, got)
		}
	}
}

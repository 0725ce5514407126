package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/geoshort/internal/cache"
	"github.com/ppiankov/geoshort/internal/model"
)

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	return cfg
}

func TestPipeline_Translate(t *testing.T) {
	p := NewPipeline(testConfig())

	doc, err := p.Translate(context.Background(), `\\P:A/ S:AB /C:O;5/\q\\`)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	expected := []model.Result{
		{Index: 1, Original: "P:A", Translation: "Construct point A.", Shape: "point"},
		{Index: 2, Original: "S:AB", Translation: "Connect segment AB.", Shape: "segment"},
		{Index: 3, Original: "C:O;5", Translation: "Construct a circle with center O and radius 5.", Shape: "circle-center-radius"},
		{Index: 4, Original: `\q`, Translation: "And that is what was to be shown.", Shape: "proof-close"},
	}

	if len(doc.Results) != len(expected) {
		t.Fatalf("expected %d results, got %d", len(expected), len(doc.Results))
	}
	for i := range expected {
		if doc.Results[i] != expected[i] {
			t.Errorf("result %d:\n  expected %+v\n  got      %+v", i, expected[i], doc.Results[i])
		}
	}

	if doc.TranslatedAt.IsZero() {
		t.Error("expected TranslatedAt to be set")
	}
	if !strings.HasPrefix(doc.CopyText(), "Construct point A.\nConnect segment AB.") {
		t.Errorf("unexpected copy text %q", doc.CopyText())
	}
}

func TestPipeline_EmptyInput(t *testing.T) {
	p := NewPipeline(testConfig())

	for _, input := range []string{"", "   ", `\\\\`, "///"} {
		doc, err := p.Translate(context.Background(), input)
		if err != nil {
			t.Fatalf("Translate(%q) failed: %v", input, err)
		}
		if len(doc.Results) != 0 {
			t.Errorf("Translate(%q): expected no results, got %d", input, len(doc.Results))
		}
	}
}

func TestPipeline_ConcurrentMatchesSequential(t *testing.T) {
	var parts []string
	for i := 0; i < 60; i++ {
		parts = append(parts, fmt.Sprintf("P:X%d", i), "AB;CD*PR?", "x^2=4<<1(A:x>0,x=2)>>")
	}
	input := strings.Join(parts, "/")

	sequential := NewPipeline(testConfig())

	cfg := testConfig()
	cfg.Concurrency.Workers = 8
	concurrent := NewPipeline(cfg)

	want, err := sequential.Translate(context.Background(), input)
	if err != nil {
		t.Fatal(err)
	}
	got, err := concurrent.Translate(context.Background(), input)
	if err != nil {
		t.Fatal(err)
	}

	if len(got.Results) != len(want.Results) {
		t.Fatalf("expected %d results, got %d", len(want.Results), len(got.Results))
	}
	for i := range want.Results {
		if got.Results[i] != want.Results[i] {
			t.Errorf("result %d: expected %+v, got %+v", i, want.Results[i], got.Results[i])
		}
		if got.Results[i].Index != i+1 {
			t.Errorf("expected index %d, got %d", i+1, got.Results[i].Index)
		}
	}
}

func TestPipeline_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		cfg := testConfig()
		cfg.Concurrency.Workers = workers
		p := NewPipeline(cfg)

		if _, err := p.Translate(ctx, "P:A/P:B/P:C"); !errors.Is(err, context.Canceled) {
			t.Errorf("workers=%d: expected context.Canceled, got %v", workers, err)
		}
	}
}

func TestPipeline_CacheHit(t *testing.T) {
	mem := cache.NewMemoryCache(time.Minute, time.Minute)
	data, _ := json.Marshal(cachedTranslation{Shape: "point", Translation: "from cache"})
	_ = mem.Set(cache.CacheKey(EngineVersion, "P:A"), data, 0)

	p := NewPipeline(testConfig()).WithCache(mem)

	doc, err := p.Translate(context.Background(), "P:A/P:B")
	if err != nil {
		t.Fatal(err)
	}

	if doc.Results[0].Translation != "from cache" {
		t.Errorf("expected cached translation, got %q", doc.Results[0].Translation)
	}
	if doc.Results[1].Translation != "Construct point B." {
		t.Errorf("expected fresh translation, got %q", doc.Results[1].Translation)
	}

	// the miss was written back
	if _, found := mem.Get(cache.CacheKey(EngineVersion, "P:B")); !found {
		t.Error("expected translation to be cached after a miss")
	}
}

func TestPipeline_CorruptCacheEntry(t *testing.T) {
	mem := cache.NewMemoryCache(time.Minute, time.Minute)
	_ = mem.Set(cache.CacheKey(EngineVersion, "P:A"), []byte("{not json"), 0)

	p := NewPipeline(testConfig()).WithCache(mem)

	doc, err := p.Translate(context.Background(), "P:A")
	if err != nil {
		t.Fatal(err)
	}
	if doc.Results[0].Translation != "Construct point A." {
		t.Errorf("expected corrupt entry to be ignored, got %q", doc.Results[0].Translation)
	}
}

func TestPipeline_LayeredCacheFromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Enabled = true
	cfg.Cache.Dir = t.TempDir()

	first := NewPipeline(cfg)
	if _, err := first.Translate(context.Background(), "S:AB"); err != nil {
		t.Fatal(err)
	}

	// a new pipeline over the same directory reads the disk layer
	disk := cache.NewDiskCache(cfg.Cache.Dir, cfg.Cache.TTL)
	if _, found := disk.Get(cache.CacheKey(EngineVersion, "S:AB")); !found {
		t.Error("expected translation persisted to disk cache")
	}
}

func TestPipeline_Deterministic(t *testing.T) {
	p := NewPipeline(testConfig())
	input := `\\P:C.AB|AC=3/R:3;AB=ABC/[ABC]?/ABC*IS?/AB;BC*PR?/\p:AB=BC\\`

	first, _ := p.Translate(context.Background(), input)
	second, _ := p.Translate(context.Background(), input)

	if first.CopyText() != second.CopyText() {
		t.Errorf("expected identical output:\n%s\n---\n%s", first.CopyText(), second.CopyText())
	}
}

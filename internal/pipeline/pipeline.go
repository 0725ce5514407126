package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/ppiankov/geoshort/internal/cache"
	"github.com/ppiankov/geoshort/internal/extract"
	"github.com/ppiankov/geoshort/internal/model"
	"github.com/ppiankov/geoshort/internal/tables"
	"github.com/ppiankov/geoshort/internal/translate"
	"github.com/ppiankov/geoshort/internal/worker"
)

// EngineVersion salts cache keys; bump it whenever translations change
const EngineVersion = "1"

// Pipeline turns a raw shorthand input into a translated document
type Pipeline struct {
	extractor  *extract.StatementExtractor
	translator *translate.Translator
	cache      cache.Cache // nil when caching is disabled
	cacheTTL   time.Duration
	workers    int
	verbose    bool
	now        func() time.Time
}

// NewPipeline creates a pipeline from the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.TTL)
	}

	return &Pipeline{
		extractor:  extract.NewStatementExtractor(),
		translator: translate.NewTranslator(tables.Default(), cfg.Translate.MaxDepth),
		cache:      c,
		cacheTTL:   cfg.Cache.TTL,
		workers:    cfg.Concurrency.Workers,
		verbose:    cfg.Output.Verbose,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// WithCache replaces the statement cache; nil disables caching
func (p *Pipeline) WithCache(c cache.Cache) *Pipeline {
	p.cache = c
	return p
}

// Translator exposes the underlying statement translator
func (p *Pipeline) Translator() *translate.Translator {
	return p.translator
}

// Translate splits input into statements and translates each one. Results
// are ordered by statement index whatever the worker count. The only error
// is ctx's.
func (p *Pipeline) Translate(ctx context.Context, input string) (*model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("translate: %w", err)
	}

	statements := p.extractor.Extract(input)

	var results []model.Result
	if p.workers <= 1 || len(statements) < 2 {
		results = make([]model.Result, 0, len(statements))
		for _, stmt := range statements {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("translate: %w", err)
			}
			results = append(results, p.translateStatement(stmt))
		}
	} else {
		jobs := make([]worker.Job, len(statements))
		for i, stmt := range statements {
			jobs[i] = &statementJob{stmt: stmt, pipeline: p}
		}
		for _, r := range worker.Run(ctx, p.workers, jobs) {
			results = append(results, r.(*statementResult).result)
		}
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("translate: %w", err)
		}
		sort.Slice(results, func(i, j int) bool {
			return results[i].Index < results[j].Index
		})
	}

	return &model.Document{
		Input:        input,
		Results:      results,
		TranslatedAt: p.now(),
	}, nil
}

// cachedTranslation is the cache payload for one statement
type cachedTranslation struct {
	Shape       string `json:"shape"`
	Translation string `json:"translation"`
}

func (p *Pipeline) translateStatement(stmt extract.Statement) model.Result {
	result := model.Result{Index: stmt.Index, Original: stmt.Text}

	var key string
	if p.cache != nil {
		key = cache.CacheKey(EngineVersion, stmt.Text)
		if data, found := p.cache.Get(key); found {
			var cached cachedTranslation
			if err := json.Unmarshal(data, &cached); err == nil {
				result.Shape = cached.Shape
				result.Translation = cached.Translation
				return result
			}
		}
	}

	shape, text := p.translator.Explain(stmt.Text)
	result.Shape = shape.String()
	result.Translation = text

	if p.cache != nil {
		data, err := json.Marshal(cachedTranslation{Shape: result.Shape, Translation: result.Translation})
		if err == nil {
			err = p.cache.Set(key, data, p.cacheTTL)
		}
		if err != nil && p.verbose {
			fmt.Fprintf(os.Stderr, "Warning: cache write failed: %v\n", err)
		}
	}

	return result
}

// statementJob adapts one statement to the worker pool
type statementJob struct {
	stmt     extract.Statement
	pipeline *Pipeline
}

func (j *statementJob) Execute(_ context.Context) worker.Result {
	return &statementResult{result: j.pipeline.translateStatement(j.stmt)}
}

type statementResult struct {
	result model.Result
}

func (r *statementResult) GetError() error {
	return nil
}

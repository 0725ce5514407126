package worker

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ppiankov/geoshort/internal/model"
)

// DocumentTranslator translates one shorthand input into a document
type DocumentTranslator interface {
	Translate(ctx context.Context, input string) (*model.Document, error)
}

// SourceLoader reads the text of one input file
type SourceLoader interface {
	Load(path string) (string, error)
}

type rawLoader struct{}

func (rawLoader) Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FileJob translates the contents of one shorthand file
type FileJob struct {
	Index      int
	Path       string
	Translator DocumentTranslator
	Loader     SourceLoader
	Limiter    *Limiter
}

// Execute reads and translates the file
func (j *FileJob) Execute(ctx context.Context) Result {
	result := &FileResult{Index: j.Index, Path: j.Path}

	if j.Limiter != nil {
		if err := j.Limiter.Wait(ctx, j.Path); err != nil {
			result.Error = fmt.Errorf("rate limit: %w", err)
			return result
		}
	}

	loader := j.Loader
	if loader == nil {
		loader = rawLoader{}
	}
	text, err := loader.Load(j.Path)
	if err != nil {
		result.Error = fmt.Errorf("read file: %w", err)
		return result
	}

	doc, err := j.Translator.Translate(ctx, text)
	if err != nil {
		result.Error = fmt.Errorf("translate: %w", err)
		return result
	}
	doc.Source = j.Path
	result.Document = doc

	return result
}

// FileResult is the outcome of one FileJob
type FileResult struct {
	Index    int
	Path     string
	Document *model.Document
	Error    error
}

// GetError returns the error from the file result
func (r *FileResult) GetError() error {
	return r.Error
}

// BatchProcessor translates many files concurrently
type BatchProcessor struct {
	translator  DocumentTranslator
	loader      SourceLoader
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a processor. filesPerSecond applies per source
// directory; zero disables throttling.
func NewBatchProcessor(translator DocumentTranslator, concurrency int, filesPerSecond float64, burst int) *BatchProcessor {
	return &BatchProcessor{
		translator:  translator,
		concurrency: concurrency,
		limiter:     NewLimiter(filesPerSecond, burst),
	}
}

// SetSourceRate overrides the read rate for files in dir
func (b *BatchProcessor) SetSourceRate(dir string, filesPerSecond float64, burst int) {
	b.limiter.SetSourceRate(dir, filesPerSecond, burst)
}

// WithLoader replaces the plain file read used for each input
func (b *BatchProcessor) WithLoader(l SourceLoader) *BatchProcessor {
	b.loader = l
	return b
}

// ProcessFiles translates every path and returns results in input order.
// Files not reached before ctx is done are reported with ctx's error.
func (b *BatchProcessor) ProcessFiles(ctx context.Context, paths []string) []*FileResult {
	if len(paths) == 0 {
		return []*FileResult{}
	}

	jobs := make([]Job, len(paths))
	for i, path := range paths {
		jobs[i] = &FileJob{
			Index:      i,
			Path:       path,
			Translator: b.translator,
			Loader:     b.loader,
			Limiter:    b.limiter,
		}
	}

	byIndex := make(map[int]*FileResult, len(paths))
	for _, r := range Run(ctx, b.concurrency, jobs) {
		fr := r.(*FileResult)
		byIndex[fr.Index] = fr
	}

	results := make([]*FileResult, len(paths))
	for i, path := range paths {
		if fr, ok := byIndex[i]; ok {
			results[i] = fr
			continue
		}
		err := ctx.Err()
		if err == nil {
			err = errors.New("not processed")
		}
		results[i] = &FileResult{Index: i, Path: path, Error: err}
	}

	return results
}

// ProcessList reads file paths from a list file and translates them
func (b *BatchProcessor) ProcessList(ctx context.Context, listPath string) ([]*FileResult, error) {
	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read paths: %w", err)
	}

	return b.ProcessFiles(ctx, paths), nil
}

// ReadPathsFromFile reads file paths (one per line), skipping blank lines
// and # comments. Relative paths resolve against the list file's directory.
func ReadPathsFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	base := filepath.Dir(listPath)
	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !filepath.IsAbs(line) {
			line = filepath.Join(base, line)
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}

// ExpandPaths replaces each directory argument with the regular, non-hidden
// files directly inside it, sorted by name. Duplicates are dropped.
func ExpandPaths(args []string) ([]string, error) {
	var paths []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			add(arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("read dir %s: %w", arg, err)
		}
		var names []string
		for _, e := range entries {
			if e.Type().IsRegular() && !strings.HasPrefix(e.Name(), ".") {
				names = append(names, e.Name())
			}
		}
		sort.Strings(names)
		for _, name := range names {
			add(filepath.Join(arg, name))
		}
	}

	return paths, nil
}

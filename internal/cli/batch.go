package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/geoshort/internal/pipeline"
	"github.com/ppiankov/geoshort/internal/score"
	"github.com/ppiankov/geoshort/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchFormat  string
	batchTimeout time.Duration
	fromList     bool
	filesPerSec  float64
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file|dir>...",
	Short: "Translate many shorthand files in parallel",
	Long: `Batch translates shorthand files concurrently:
- Directories expand to the files directly inside them
- Files are read with a per-directory rate limit
- One output file per input is written to --output-dir

Example:
  geoshort batch proofs/
  geoshort batch a.txt b.txt --format markdown --output-dir ./out
  geoshort batch --list inputs.txt --concurrency 8`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of files translated in parallel")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./geoshort-out", "output directory")
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "", "output format: text, markdown, json, yaml, html (default from config)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&fromList, "list", false, "treat each argument as a file listing input paths, one per line")
	batchCmd.Flags().Float64Var(&filesPerSec, "rate", 0, "files read per second per directory (default from config, 0 = unlimited)")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in markdown and html output")
	batchCmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record these translations in history")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = batchFormat
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency.BatchWorkers = concurrency
	}
	if cmd.Flags().Changed("rate") {
		cfg.RateLimiting.FilesPerSecond = filesPerSec
	}
	if noFooter {
		cfg.Output.IncludeFooter = false
	}

	format, err := pipeline.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	paths, err := collectPaths(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  geoshort Batch Translation\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Inputs:       %d files\n", len(paths))
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", cfg.Concurrency.BatchWorkers)
	fmt.Fprintf(os.Stderr, "  Format:       %s\n", format)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p := pipeline.NewPipeline(cfg)
	processor := worker.NewBatchProcessor(p, cfg.Concurrency.BatchWorkers,
		cfg.RateLimiting.FilesPerSecond, cfg.RateLimiting.BurstSize).
		WithLoader(pipeline.NewLoader(pipeline.DefaultMaxInputBytes))
	for _, src := range cfg.RateLimiting.Sources {
		processor.SetSourceRate(src.Dir, src.FilesPerSecond, src.Burst)
	}

	results := processor.ProcessFiles(ctx, paths)

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	scorer := score.NewScorer()
	names := newNameAllocator()
	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		outPath := filepath.Join(outputDir, names.next(sanitizeFilename(pipeline.Subject(result.Path)))+format.Extension())
		if err := renderer.RenderFile(result.Document, format, outPath); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write output: %v\n", result.Path, err)
			continue
		}

		if cfg.History.Enabled && !noHistory {
			recordHistory(cfg, result.Document)
		}

		successCount++
		cov := scorer.Calculate(result.Document)
		fmt.Fprintf(os.Stderr, "✓ %s → %s (%d statements, index %d%%)\n", result.Path, outPath, cov.Total, cov.Index)
		if cfg.Output.Verbose {
			for _, sig := range cov.Signals {
				fmt.Fprintf(os.Stderr, "    [%s] %s\n", sig.Severity, sig.Description)
			}
		}
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d files\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	if failureCount > 0 {
		return fmt.Errorf("%d of %d files failed", failureCount, len(results))
	}
	return nil
}

// collectPaths expands the arguments into input files, reading list files
// when --list is set
func collectPaths(args []string) ([]string, error) {
	if !fromList {
		paths, err := worker.ExpandPaths(args)
		if err != nil {
			return nil, fmt.Errorf("collect inputs: %w", err)
		}
		return paths, nil
	}

	var paths []string
	for _, list := range args {
		listed, err := worker.ReadPathsFromFile(list)
		if err != nil {
			return nil, fmt.Errorf("read list %s: %w", list, err)
		}
		paths = append(paths, listed...)
	}
	return paths, nil
}

// sanitizeFilename makes s safe to use as a file name
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		" ", "-",
	)
	s = replacer.Replace(s)

	if s == "" || s == "." || s == ".." {
		s = "output"
	}
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// nameAllocator hands out unique base names: a, a-2, a-3...
type nameAllocator struct {
	used map[string]int
}

func newNameAllocator() *nameAllocator {
	return &nameAllocator{used: make(map[string]int)}
}

func (a *nameAllocator) next(base string) string {
	a.used[base]++
	if n := a.used[base]; n > 1 {
		return fmt.Sprintf("%s-%d", base, n)
	}
	return base
}

package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/geoshort/internal/history"
	"github.com/ppiankov/geoshort/internal/model"
	"github.com/ppiankov/geoshort/internal/pipeline"
	"github.com/ppiankov/geoshort/internal/score"
)

var (
	inputText        string
	outFormat        string
	outFile          string
	copyOnly         bool
	workers          int
	maxDepth         int
	translateTimeout time.Duration
	noFooter         bool
	noHistory        bool
)

// translateCmd represents the translate command
var translateCmd = &cobra.Command{
	Use:   "translate [file|-]",
	Short: "Translate one shorthand input",
	Long: `Translate reads shorthand from --input, a file, or standard input and
prints one English sentence per statement.

Example:
  geoshort translate --input 'P:A,B,C/S:AB/C:O;5'
  geoshort translate proof.txt --format markdown -o proof.md
  echo '\\P:A/\q\\' | geoshort translate --copy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&inputText, "input", "i", "", "shorthand text to translate (instead of a file)")
	translateCmd.Flags().StringVarP(&outFormat, "format", "f", "", "output format: text, markdown, json, yaml, html (default from config)")
	translateCmd.Flags().StringVarP(&outFile, "output", "o", "", "write output to a file instead of stdout")
	translateCmd.Flags().BoolVar(&copyOnly, "copy", false, "print only the translations, one per line")
	translateCmd.Flags().IntVar(&workers, "workers", 0, "statement workers (default from config)")
	translateCmd.Flags().IntVar(&maxDepth, "max-depth", 0, "nesting bound for proofs, conditions and casework (default from config)")
	translateCmd.Flags().DurationVar(&translateTimeout, "timeout", time.Minute, "overall timeout")
	translateCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in markdown and html output")
	translateCmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record this translation in history")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyTranslateFlags(cmd, cfg)

	format, err := pipeline.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	source, input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), translateTimeout)
	defer cancel()

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Translating: %s\n", pipeline.Subject(source))
		fmt.Fprintf(os.Stderr, "Workers: %d\n", cfg.Concurrency.Workers)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg)
	doc, err := p.Translate(ctx, input)
	if err != nil {
		return fmt.Errorf("translate failed: %w", err)
	}
	doc.Source = source

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "✓ Translated %d statements\n", len(doc.Results))
		printCoverage(score.NewScorer().Calculate(doc))
	}

	if cfg.History.Enabled && !noHistory {
		recordHistory(cfg, doc)
	}

	return writeOutput(cfg, doc, format)
}

func applyTranslateFlags(cmd *cobra.Command, cfg *model.Config) {
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = outFormat
	}
	if flags.Changed("workers") {
		cfg.Concurrency.Workers = workers
	}
	if flags.Changed("max-depth") {
		cfg.Translate.MaxDepth = maxDepth
	}
	if noFooter {
		cfg.Output.IncludeFooter = false
	}
}

// readInput returns the source path (empty for --input and stdin) and the
// text. With neither --input nor a file argument, standard input is read.
func readInput(cmd *cobra.Command, args []string) (string, string, error) {
	if cmd.Flags().Changed("input") {
		if len(args) > 0 {
			return "", "", fmt.Errorf("use either --input or a file argument, not both")
		}
		return "", inputText, nil
	}

	path := pipeline.StdinPath
	if len(args) == 1 {
		path = args[0]
	}

	text, err := pipeline.NewLoader(pipeline.DefaultMaxInputBytes).Load(path)
	if err != nil {
		return "", "", fmt.Errorf("read input: %w", err)
	}
	if path == pipeline.StdinPath {
		return "", text, nil
	}
	return path, text, nil
}

func writeOutput(cfg *model.Config, doc *model.Document, format pipeline.Format) error {
	if copyOnly {
		text := doc.CopyText()
		if outFile != "" {
			if err := os.WriteFile(outFile, []byte(text+"\n"), 0644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		}
		fmt.Println(text)
		return nil
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	if outFile != "" {
		if err := renderer.RenderFile(doc, format, outFile); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		if cfg.Output.Verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote %s: %s\n", format, outFile)
		}
		return nil
	}

	if err := renderer.Render(os.Stdout, doc, format); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}

func printCoverage(cov model.Coverage) {
	fmt.Fprintf(os.Stderr, "  Recognized: %d/%d (index %d, confidence: %s)\n",
		cov.Recognized, cov.Total, cov.Index, cov.Confidence)
	for _, sig := range cov.Signals {
		fmt.Fprintf(os.Stderr, "  [%s] %s", sig.Severity, sig.Description)
		if len(sig.Statements) > 0 {
			fmt.Fprintf(os.Stderr, " (statements %v)", sig.Statements)
		}
		fmt.Fprintln(os.Stderr)
	}
}

// recordHistory stores doc. Failures are reported as warnings.
func recordHistory(cfg *model.Config, doc *model.Document) {
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: history unavailable: %v\n", err)
		return
	}
	defer func() { _ = store.Close() }()

	id, err := store.Save(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to record history: %v\n", err)
		return
	}
	doc.ID = id

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "✓ Recorded history entry #%d\n", id)
	}
}

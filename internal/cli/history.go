package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ppiankov/geoshort/internal/history"
	"github.com/ppiankov/geoshort/internal/pipeline"
)

var (
	historyLimit  int
	historyFormat string
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse previously translated documents",
	Long: `History lists, shows and clears translations recorded in the SQLite
history database (history.path). Recording is enabled with history.enabled
in the config file or GEOSHORT_HISTORY_ENABLED=true.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded translations, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		summaries, err := store.List(historyLimit)
		if err != nil {
			return err
		}
		if len(summaries) == 0 {
			fmt.Fprintln(os.Stderr, "No history recorded")
			return nil
		}

		for _, s := range summaries {
			label := s.Source
			if label == "" {
				label = "-"
			}
			fmt.Printf("#%-5d %s  %-20s %3d statements  %s\n",
				s.ID, s.TranslatedAt.Local().Format("2006-01-02 15:04"), label, s.StatementCount, truncate(s.FirstStatement, 40))
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one recorded translation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", args[0], err)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("format") {
			cfg.Output.Format = historyFormat
		}
		format, err := pipeline.ParseFormat(cfg.Output.Format)
		if err != nil {
			return err
		}

		store, err := openHistory()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		doc, err := store.Get(id)
		if errors.Is(err, history.ErrNotFound) {
			return fmt.Errorf("no history entry #%d", id)
		}
		if err != nil {
			return err
		}

		return pipeline.NewRenderer(cfg.Output.IncludeFooter).Render(os.Stdout, doc, format)
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded translations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		n, err := store.Clear()
		if err != nil {
			return err
		}
		fmt.Printf("✓ Removed %d history entries\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)

	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum entries to list (0 = all)")
	historyShowCmd.Flags().StringVarP(&historyFormat, "format", "f", "", "output format: text, markdown, json, yaml, html (default from config)")
}

func openHistory() (*history.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return store, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/markpadhq/markpad/internal/ui/pretty"
	"github.com/markpadhq/markpad/pkg/config"
	"github.com/markpadhq/markpad/pkg/match"
)

type historyFlags struct {
	limit int
	clear bool
}

func newHistoryCommand() *cobra.Command {
	flags := &historyFlags{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent search queries and replacements",
		Long: `Show the persisted history of search queries and replacement texts,
most recent first.

Examples:
  markpad history             # Show all history
  markpad history --limit 5   # Show the five most recent entries
  markpad history --clear     # Delete the history file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistory(cmd, flags)
		},
	}

	cmd.Flags().IntVar(&flags.limit, "limit", 0, "show at most this many entries per section")
	cmd.Flags().BoolVar(&flags.clear, "clear", false, "delete the history file")

	return cmd
}

func runHistory(cmd *cobra.Command, flags *historyFlags) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}

	path := historyPath(cfg)
	if path == "" {
		return fmt.Errorf("no history location available")
	}

	if flags.clear {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("clear history: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
		return nil
	}

	history, err := match.LoadHistory(path, cfg.Search.HistoryLimit)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd), out))

	if len(history.Queries) == 0 && len(history.Replacements) == 0 {
		fmt.Fprintln(out, styles.Dim.Render("No history yet"))
		return nil
	}

	printSection(cmd, cfg, styles, "Queries", history.Queries, flags.limit)
	printSection(cmd, cfg, styles, "Replacements", history.Replacements, flags.limit)

	return nil
}

// printSection lists one history section, most recent first.
func printSection(cmd *cobra.Command, _ *config.Config, styles *pretty.Styles, title string, entries []string, limit int) {
	if len(entries) == 0 {
		return
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styles.Bold.Render(title+":"))

	shown := len(entries)
	if limit > 0 && limit < shown {
		shown = limit
	}

	for i := 0; i < shown; i++ {
		fmt.Fprintf(out, "  %2d  %s\n", i+1, entries[i])
	}

	if shown < len(entries) {
		fmt.Fprintln(out, styles.Dim.Render(fmt.Sprintf("  ... and %d more", len(entries)-shown)))
	}
}

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/markpadhq/markpad/internal/logging"
	"github.com/markpadhq/markpad/internal/ui/pretty"
	"github.com/markpadhq/markpad/pkg/config"
	"github.com/markpadhq/markpad/pkg/match"
)

type searchFlags struct {
	regex         bool
	caseSensitive bool
	patternFlags  string
	noWrap        bool
	format        string
}

func newSearchCommand() *cobra.Command {
	flags := &searchFlags{}

	cmd := &cobra.Command{
		Use:   "search <query> <file>",
		Short: "Find matches in a document",
		Long: `Find all occurrences of a query in a document and list them with
their exact positions. Use "-" as the file to read from stdin.

Queries are literal text by default; --regex switches to regular
expressions with optional extra flags (i, m, s, U).

Examples:
  markpad search cat notes.md             # Literal, case-insensitive
  markpad search -c Cat notes.md          # Case-sensitive
  markpad search -r '\d+' notes.md        # Regex
  markpad search -r --flags m '^#' notes.md
  cat notes.md | markpad search cat -     # Read from stdin
  markpad search cat notes.md --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args[0], args[1], flags)
		},
	}

	addSearchFlags(cmd, flags)
	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, table, json")

	return cmd
}

// addSearchFlags registers the matching flags shared with replace.
func addSearchFlags(cmd *cobra.Command, flags *searchFlags) {
	cmd.Flags().BoolVarP(&flags.regex, "regex", "r", false, "treat the query as a regular expression")
	cmd.Flags().BoolVarP(&flags.caseSensitive, "case-sensitive", "c", false, "match case exactly")
	cmd.Flags().StringVar(&flags.patternFlags, "flags", "", "extra regex flags (i, m, s, U)")
	cmd.Flags().BoolVar(&flags.noWrap, "no-wrap", false, "do not wrap navigation at boundaries")
}

// applySearchFlags folds explicitly set flags into the configuration.
func (f *searchFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("regex") {
		cfg.Search.Regex = f.regex
	}
	if cmd.Flags().Changed("case-sensitive") {
		cfg.Search.CaseSensitive = f.caseSensitive
	}
	if cmd.Flags().Changed("flags") {
		cfg.Search.Flags = f.patternFlags
	}
	if cmd.Flags().Changed("no-wrap") {
		cfg.Search.WrapAround = !f.noWrap
	}
	if cmd.Flags().Changed("format") {
		format, _ := cmd.Flags().GetString("format")
		cfg.Format = config.OutputFormat(format)
	}
}

// searchOptions converts the resolved config into engine options.
func searchOptions(cfg *config.Config) match.Options {
	return match.Options{
		Regex:         cfg.Search.Regex,
		CaseSensitive: cfg.Search.CaseSensitive,
		Flags:         cfg.Search.Flags,
		WrapAround:    cfg.Search.WrapAround,
	}
}

func runSearch(cmd *cobra.Command, query, path string, flags *searchFlags) error {
	logger := logging.Default()

	cfg, err := loadConfig(cmd, func(cfg *config.Config) {
		flags.apply(cmd, cfg)
	})
	if err != nil {
		return err
	}

	source, err := readSource(cmd, path)
	if err != nil {
		return err
	}

	engine := match.NewEngine()
	if err := engine.Reindex(source, query, searchOptions(cfg)); err != nil {
		return fmt.Errorf("index %q: %w", query, err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	rememberQuery(ctx, cfg, query)

	spans := engine.Matches()
	logger.Debug("search complete",
		logging.FieldQuery, query,
		logging.FieldMatches, len(spans),
	)

	// Park the cursor on the first match.
	engine.Next()

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd), out))
	rows := pretty.BuildMatchRows(source, spans)

	switch cfg.Format {
	case config.FormatJSON:
		if err := writeSearchJSON(out, query, engine, rows); err != nil {
			return err
		}
	case config.FormatTable:
		fmt.Fprint(out, styles.FormatSearchSummary(query, len(spans), engine.Counter()))
		fmt.Fprint(out, pretty.NewTableFormatter(styles, terminalWidth()).FormatMatchTable(rows, engine.Current()))
	default:
		fmt.Fprint(out, styles.FormatSearchSummary(query, len(spans), engine.Counter()))
		fmt.Fprint(out, styles.FormatMatchList(rows, engine.Current()))
	}

	if len(spans) == 0 {
		return ErrNoMatchesFound
	}
	return nil
}

// searchJSON is the --format json payload.
type searchJSON struct {
	Query   string      `json:"query"`
	Total   int         `json:"total"`
	Counter string      `json:"counter"`
	Matches []matchJSON `json:"matches"`
}

type matchJSON struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Text   string `json:"text"`
}

func writeSearchJSON(out io.Writer, query string, engine *match.Engine, rows []pretty.MatchRow) error {
	payload := searchJSON{
		Query:   query,
		Total:   len(rows),
		Counter: engine.Counter(),
		Matches: make([]matchJSON, 0, len(rows)),
	}

	spans := engine.Matches()
	for i, row := range rows {
		payload.Matches = append(payload.Matches, matchJSON{
			Start:  spans[i].Start,
			End:    spans[i].End,
			Line:   row.Line,
			Column: row.Column,
			Text:   row.Text(),
		})
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// rememberQuery persists the query to the history file. History is a
// convenience; failures are logged, never fatal.
func rememberQuery(ctx context.Context, cfg *config.Config, query string) {
	path := historyPath(cfg)
	if path == "" {
		return
	}

	history, err := match.LoadHistory(path, cfg.Search.HistoryLimit)
	if err != nil {
		logging.Default().Debug("load history", logging.FieldError, err)
		return
	}
	history.AddQuery(query)
	if err := history.Save(ctx, path); err != nil {
		logging.Default().Debug("save history", logging.FieldError, err)
	}
}

// terminalWidth reports the stdout width, or 0 when not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}

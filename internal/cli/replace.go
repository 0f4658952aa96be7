package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/markpadhq/markpad/internal/logging"
	"github.com/markpadhq/markpad/internal/ui/pretty"
	"github.com/markpadhq/markpad/pkg/config"
	"github.com/markpadhq/markpad/pkg/edit"
	"github.com/markpadhq/markpad/pkg/fsutil"
	"github.com/markpadhq/markpad/pkg/match"
)

type replaceFlags struct {
	search searchFlags
	first  bool
	dryRun bool
	backup bool
	noDiff bool
}

func newReplaceCommand() *cobra.Command {
	flags := &replaceFlags{}

	cmd := &cobra.Command{
		Use:   "replace <query> <replacement> <files...>",
		Short: "Replace matches in documents",
		Long: `Replace occurrences of a query in one or more documents. Files are
rewritten in place; use "-" as the only file to filter stdin to stdout.

All matches are replaced by default; --first replaces only the first.
In regex mode the replacement may reference capture groups ($1, $2,
${name}).

Examples:
  markpad replace cat dog notes.md             # Replace every cat
  markpad replace --first cat dog notes.md     # Replace the first cat
  markpad replace -r '(\w+)@(\w+)' '$2:$1' notes.md
  markpad replace cat dog notes.md --dry-run   # Preview as a diff
  markpad replace cat dog notes.md --backup    # Keep a .markpad.bak copy
  cat in.md | markpad replace cat dog -        # Filter stdin`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplace(cmd, args[0], args[1], args[2:], flags)
		},
	}

	addSearchFlags(cmd, &flags.search)
	cmd.Flags().BoolVar(&flags.first, "first", false, "replace only the first match")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "show changes without writing")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "write a backup before modifying each file")
	cmd.Flags().BoolVar(&flags.noDiff, "no-diff", false, "suppress the diff in dry-run output")

	return cmd
}

func runReplace(cmd *cobra.Command, query, replacement string, paths []string, flags *replaceFlags) error {
	cfg, err := loadConfig(cmd, func(cfg *config.Config) {
		flags.search.apply(cmd, cfg)
		if cmd.Flags().Changed("dry-run") {
			cfg.DryRun = flags.dryRun
		}
		if cmd.Flags().Changed("backup") {
			cfg.Backups = flags.backup
		}
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd), out))

	rememberReplacement(ctx, cfg, query, replacement)

	if len(paths) == 1 && paths[0] == "-" {
		return replaceStdin(cmd, cfg, styles, query, replacement, flags)
	}

	totalReplaced := 0
	var firstErr error

	for _, path := range paths {
		count, err := replaceFile(ctx, cmd, cfg, styles, path, query, replacement, flags)
		if err != nil {
			if errors.Is(err, match.ErrNoMatch) {
				continue
			}
			if firstErr == nil {
				firstErr = err
			}
			logging.Default().Error("replace failed",
				logging.FieldPath, path,
				logging.FieldError, err,
			)
			continue
		}
		totalReplaced += count
	}

	if firstErr != nil {
		return firstErr
	}
	if totalReplaced == 0 {
		fmt.Fprint(out, styles.FormatReplaceSummary(0, "", cfg.DryRun))
		return ErrNoMatchesFound
	}
	return nil
}

// replaceFile applies the replacement to one file and reports the count.
func replaceFile(
	ctx context.Context,
	cmd *cobra.Command,
	cfg *config.Config,
	styles *pretty.Styles,
	path, query, replacement string,
	flags *replaceFlags,
) (int, error) {
	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return 0, err
	}
	source := string(content)

	modified, count, err := applyReplacement(source, query, replacement, cfg, flags.first)
	if err != nil {
		return 0, err
	}

	out := cmd.OutOrStdout()

	if cfg.DryRun {
		if !flags.noDiff {
			fmt.Fprint(out, styles.FormatDiff(edit.NewDiff(path, source, modified)))
		}
		fmt.Fprint(out, styles.FormatReplaceSummary(count, path, true))
		return count, nil
	}

	// Refuse to clobber a file that changed while we worked on it.
	changed, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		return 0, err
	}
	if changed {
		return 0, fmt.Errorf("%s: file changed during replace; not writing", path)
	}

	if cfg.Backups {
		if _, err := fsutil.CreateBackup(ctx, path); err != nil {
			return 0, fmt.Errorf("create backup: %w", err)
		}
	}

	if err := fsutil.WriteAtomic(ctx, path, []byte(modified), info.Mode); err != nil {
		return 0, err
	}

	fmt.Fprint(out, styles.FormatReplaceSummary(count, path, false))

	logging.Default().Debug("file rewritten",
		logging.FieldPath, path,
		logging.FieldReplaced, count,
	)

	return count, nil
}

// replaceStdin filters stdin to stdout. Dry-run prints a diff instead.
func replaceStdin(
	cmd *cobra.Command,
	cfg *config.Config,
	styles *pretty.Styles,
	query, replacement string,
	flags *replaceFlags,
) error {
	source, err := readSource(cmd, "-")
	if err != nil {
		return err
	}

	modified, count, err := applyReplacement(source, query, replacement, cfg, flags.first)
	if err != nil {
		if errors.Is(err, match.ErrNoMatch) {
			fmt.Fprint(cmd.OutOrStdout(), source)
			return ErrNoMatchesFound
		}
		return err
	}

	if cfg.DryRun {
		out := cmd.OutOrStdout()
		if !flags.noDiff {
			fmt.Fprint(out, styles.FormatDiff(edit.NewDiff("stdin", source, modified)))
		}
		fmt.Fprint(out, styles.FormatReplaceSummary(count, "", true))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), modified)
	return nil
}

// applyReplacement runs the engine over one source snapshot.
func applyReplacement(source, query, replacement string, cfg *config.Config, firstOnly bool) (string, int, error) {
	engine := match.NewEngine()
	if err := engine.Reindex(source, query, searchOptions(cfg)); err != nil {
		return "", 0, fmt.Errorf("index %q: %w", query, err)
	}

	if firstOnly {
		engine.Next()
		span, ok := engine.CurrentSpan()
		if !ok {
			return "", 0, match.ErrNoMatch
		}
		selection := source[span.Start:span.End]
		modified, replaced, err := engine.ReplaceCurrent(selection, replacement)
		if err != nil {
			return "", 0, err
		}
		if !replaced {
			return "", 0, match.ErrNoMatch
		}
		return modified, 1, nil
	}

	modified, count, err := engine.ReplaceAll(replacement)
	if err != nil {
		return "", 0, err
	}
	return modified, count, nil
}

// rememberReplacement persists both sides of the operation to history.
func rememberReplacement(ctx context.Context, cfg *config.Config, query, replacement string) {
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
	history.AddReplacement(replacement)
	if err := history.Save(ctx, path); err != nil {
		logging.Default().Debug("save history", logging.FieldError, err)
	}
}

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/markpadhq/markpad/internal/logging"
	"github.com/markpadhq/markpad/internal/ui/pretty"
	"github.com/markpadhq/markpad/pkg/config"
	"github.com/markpadhq/markpad/pkg/render"
	"github.com/markpadhq/markpad/pkg/runner"
)

type renderFlags struct {
	write     bool
	outputDir string
	summary   bool
	ignore    []string
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [paths...]",
		Short: "Render Markdown files to HTML",
		Long: `Render Markdown files to HTML.

By default, renders all .md and .markdown files under the current
directory and prints the HTML to stdout. With --write, each output is
written next to its source (or under --output) as an .html file.

Examples:
  markpad render README.md           # Print HTML to stdout
  markpad render docs/ --write       # Write docs/**.html in place
  markpad render docs/ -w -o site/   # Mirror docs/ under site/
  markpad render --highlight         # Syntax-highlight code fences`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "write HTML files instead of printing")
	cmd.Flags().StringVarP(&flags.outputDir, "output", "o", "", "output directory (implies --write)")
	cmd.Flags().IntP("jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().Bool("highlight", false, "syntax-highlight fenced code blocks")
	cmd.Flags().String("style", "", "highlighter style name")
	cmd.Flags().Bool("detect-language", false, "guess the language of untagged code fences")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a full summary block")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, flags *renderFlags) error {
	logger := logging.Default()

	cfg, err := loadConfig(cmd, func(cfg *config.Config) {
		if cmd.Flags().Changed("highlight") {
			cfg.Render.Highlight, _ = cmd.Flags().GetBool("highlight")
		}
		if cmd.Flags().Changed("style") {
			cfg.Render.HighlightStyle, _ = cmd.Flags().GetString("style")
		}
		if cmd.Flags().Changed("detect-language") {
			cfg.Render.DetectLanguage, _ = cmd.Flags().GetBool("detect-language")
		}
		if cmd.Flags().Changed("jobs") {
			cfg.Jobs, _ = cmd.Flags().GetInt("jobs")
		}
		if len(flags.ignore) > 0 {
			cfg.Ignore = append(cfg.Ignore, flags.ignore...)
		}
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	renderer := render.New(render.Options{
		Highlight:      cfg.Render.Highlight,
		HighlightStyle: cfg.Render.HighlightStyle,
		DetectLanguage: cfg.Render.DetectLanguage,
	})

	write := flags.write || flags.outputDir != ""

	runOpts := runner.Options{
		Paths:        args,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		OutputDir:    flags.outputDir,
		Write:        write,
	}

	logger.Debug("starting render run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := runner.New(renderer).Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("render run failed"), err)
	}

	for _, file := range result.Files {
		if file.Error != nil {
			logger.Error("render failed",
				logging.FieldPath, file.Path,
				logging.FieldError, file.Error,
			)
		}
	}

	out := cmd.OutOrStdout()

	if !write {
		for _, file := range result.Files {
			if file.Error == nil {
				fmt.Fprint(out, file.HTML)
			}
		}
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd), out))
	if flags.summary {
		fmt.Fprint(out, styles.FormatRenderSummary(result.Stats))
	} else if write {
		fmt.Fprint(out, styles.FormatRenderSummaryOneLine(result.Stats))
	}

	if result.HasFailures() {
		return ErrRenderFailures
	}
	return nil
}

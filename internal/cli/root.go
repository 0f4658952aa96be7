// Package cli provides the Cobra command structure for markpad.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/markpadhq/markpad/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root markpad command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "markpad",
		Short: "A Markdown text engine with rendering and find/replace",
		Long: `markpad renders Markdown documents to HTML and provides a precise
find/replace engine for working with document text.

The renderer handles headings, lists, blockquotes, tables, code fences,
inline emphasis, links, and backslash escapes. The search engine indexes
literal or regex matches with exact byte spans, so replacements never
corrupt surrounding text.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newSearchCommand())
	rootCmd.AddCommand(newReplaceCommand())
	rootCmd.AddCommand(newHistoryCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

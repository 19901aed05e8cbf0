package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aretw0/lifecycle"
	"github.com/spf13/cobra"
)

var (
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "slidekit",
	Short: "Assemble per-slide markdown files into a single Marp deck",
	Long: `slidekit keeps every slide in its own markdown file and combines them
into one presentation with a shared style frontmatter.
It also ships the editor hooks that lint and format Python sources with ruff.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). Cobra prints command errors itself.
func Execute() {
	ctx := lifecycle.NewSignalContext(context.Background())

	err := rootCmd.ExecuteContext(ctx)
	ctx.Stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

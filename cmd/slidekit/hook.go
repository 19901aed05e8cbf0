package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/slidekit/pkg/hooks"
	"github.com/spf13/cobra"
)

var (
	ruffBinary string
	rulesPath  string
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Editor post-edit hooks",
	Long: `Hooks read the editor payload ({"tool_input": {"file_path": ...}}) from stdin
and exit with 0 (continue), 1 (warn) or 2 (block).`,
}

var hookCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Lint the edited Python file with ruff check --fix",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		rules, err := hooks.LoadRules(rulesPath)
		if err != nil {
			// Hook problems never block the editor.
			fmt.Fprintf(os.Stderr, "Hook error: %v\n", err)
			os.Exit(int(hooks.Warn))
		}

		h := hooks.NewCheckHook(ruffBinary, rules, slog.Default())
		os.Exit(int(h.Handle(cmd.Context(), os.Stdin, streams())))
	},
}

var hookFormatCmd = &cobra.Command{
	Use:   "format",
	Short: "Format the edited Python file with ruff format",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		h := hooks.NewFormatHook(ruffBinary, slog.Default())
		os.Exit(int(h.Handle(cmd.Context(), os.Stdin, streams())))
	},
}

func streams() hooks.Streams {
	return hooks.Streams{Stdout: os.Stdout, Stderr: os.Stderr}
}

func init() {
	rootCmd.AddCommand(hookCmd)
	hookCmd.AddCommand(hookCheckCmd, hookFormatCmd)
	hookCmd.PersistentFlags().StringVar(&ruffBinary, "binary", "ruff", "ruff executable")
	hookCheckCmd.Flags().StringVar(&rulesPath, "rules", "", "YAML file with select/ignore rule lists (defaults to the built-in set)")
}

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/slidekit"
	"github.com/aretw0/slidekit/pkg/core"
	"github.com/spf13/cobra"
)

var (
	stylePath   string
	pattern     string
	combineJSON bool
)

var combineCmd = &cobra.Command{
	Use:   "combine [slide_directory]",
	Short: "Combine slide markdown files into combined_slides.md",
	Long: `Combine every *.md file in the directory (except combined_slides.md,
README.md and CLAUDE.md) into combined_slides.md, in file name order.

The frontmatter comes from style.yaml in the same directory. If it is missing
and --style points to a template, the template is copied to style.yaml first.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := args[0]

		svc, err := slidekit.New(dir,
			slidekit.WithPattern(pattern),
			slidekit.WithLogger(slog.Default()),
		)
		if err != nil {
			if errors.Is(err, core.ErrNotDirectory) {
				fmt.Fprintf(os.Stderr, "Error: %s is not a directory\n", dir)
				os.Exit(1)
			}
			fatal("Failed to open deck", err)
		}

		res, err := svc.Combine(cmd.Context(), stylePath)
		switch {
		case errors.Is(err, core.ErrNoSlides):
			fmt.Fprintf(os.Stderr, "No markdown files found in %s\n", dir)
			os.Exit(1)
		case errors.Is(err, core.ErrNoStyle):
			fmt.Fprintf(os.Stderr, "Error: No %s found in %s and no default provided\n", core.StyleFileName, dir)
			os.Exit(1)
		case err != nil:
			fatal("Failed to combine slides", err)
		}

		slog.Debug("combine finished", "state", svc.State())

		if combineJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(res); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		if res.StyleCreated {
			fmt.Printf("Created %s from default template\n", res.StylePath)
		}
		fmt.Printf("Combined %d slides into %s\n", res.Slides, res.OutputPath)
	},
}

func init() {
	rootCmd.AddCommand(combineCmd)
	combineCmd.Flags().StringVar(&stylePath, "style", "", "Path to default style.yaml template")
	combineCmd.Flags().StringVar(&pattern, "pattern", core.FragmentPattern, "Glob selecting slide files")
	combineCmd.Flags().BoolVar(&combineJSON, "json", false, "Output the result in JSON format")
}

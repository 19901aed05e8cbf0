package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/slidekit"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of slidekit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("slidekit version %s\n", strings.TrimSpace(slidekit.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

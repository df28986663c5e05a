package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/synthetica/internal/olympiad"
)

var classicsCmd = &cobra.Command{
	Use:   "classics",
	Short: "List the built-in classic problems",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for i, p := range olympiad.ClassicProblems() {
			fmt.Fprintf(out, "%d. %s\n   %s\n", i+1, p.Name, p.Prompt)
		}
	},
}

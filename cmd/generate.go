package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/synthetica/internal/i18n"
	"github.com/abhisek/synthetica/internal/olympiad"
	"github.com/abhisek/synthetica/internal/synth"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new olympiad problem",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, difficulty, err := subjectAndDifficulty(cmd)
		if err != nil {
			return err
		}
		concepts, _ := cmd.Flags().GetString("concepts")

		rt, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		gp, err := rt.client.Generate(cmd.Context(), synth.GenerateRequest{
			Subject:     subject,
			Difficulty:  difficulty,
			Language:    rt.lang,
			KeyConcepts: concepts,
		})
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(cmd.OutOrStdout(), gp)
		}
		t := i18n.For(rt.lang)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s, %s)\n\n%s\n", t.GeneratedProblemTitle,
			t.Subject(gp.Subject), t.Difficulty(gp.Difficulty), gp.Problem)
		return nil
	},
}

func init() {
	f := generateCmd.Flags()
	f.String("subject", string(olympiad.SubjectGeometry), "Subject: geometry, number-theory, algebra, combinatorics")
	f.String("difficulty", string(olympiad.DifficultyIMO), "Difficulty: high-school, undergraduate, imo, grand-challenge")
	f.String("concepts", "", "Key concepts the problem should involve")
	f.Bool("json", false, "Print the generated problem as JSON")
}

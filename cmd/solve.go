package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/synthetica/internal/diagram"
	"github.com/abhisek/synthetica/internal/i18n"
	"github.com/abhisek/synthetica/internal/olympiad"
	"github.com/abhisek/synthetica/internal/proof"
	"github.com/abhisek/synthetica/internal/synth"
)

var solveCmd = &cobra.Command{
	Use:   "solve [problem]",
	Short: "Synthesize solutions for a problem and print them",
	Example: `  synthetica solve "Prove that n^5 - n is divisible by 30." --subject nt --difficulty hs
  synthetica solve --classic 2 --svg-dir ./out`,
	RunE: func(cmd *cobra.Command, args []string) error {
		problem, err := problemFromArgs(cmd, args)
		if err != nil {
			return err
		}
		subject, difficulty, err := subjectAndDifficulty(cmd)
		if err != nil {
			return err
		}

		rt, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		res, err := rt.client.Synthesize(cmd.Context(), synth.SynthesizeRequest{
			Problem:    problem,
			Subject:    subject,
			Difficulty: difficulty,
			Language:   rt.lang,
		})
		if err != nil {
			return err
		}

		if strict, _ := cmd.Flags().GetBool("strict"); strict {
			for _, sol := range res.Solutions {
				if err := proof.Validate(sol.ReasoningTrace); err != nil {
					return fmt.Errorf("%s: %w", sol.MethodName, err)
				}
			}
		}

		if dir, _ := cmd.Flags().GetString("svg-dir"); dir != "" {
			if err := exportSVGs(rt.logger, dir, problem, res); err != nil {
				return err
			}
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(cmd.OutOrStdout(), res)
		}
		printSynthesis(cmd.OutOrStdout(), i18n.For(rt.lang), res)
		return nil
	},
}

func init() {
	f := solveCmd.Flags()
	f.String("subject", string(olympiad.SubjectGeometry), "Subject: geometry, number-theory, algebra, combinatorics")
	f.String("difficulty", string(olympiad.DifficultyIMO), "Difficulty: high-school, undergraduate, imo, grand-challenge")
	f.Int("classic", 0, "Solve the Nth classic problem (see 'synthetica classics')")
	f.String("svg-dir", "", "Write each solution's diagram and proof graph as SVG into this directory")
	f.Bool("json", false, "Print the raw synthesis result as JSON")
	f.Bool("strict", false, "Fail when a reasoning trace has dangling references or cycles")
}

// problemFromArgs takes the problem from --classic, the arguments, or
// stdin when the only argument is "-".
func problemFromArgs(cmd *cobra.Command, args []string) (string, error) {
	if n, _ := cmd.Flags().GetInt("classic"); n != 0 {
		classics := olympiad.ClassicProblems()
		if n < 1 || n > len(classics) {
			return "", fmt.Errorf("--classic must be between 1 and %d", len(classics))
		}
		return classics[n-1].Prompt, nil
	}
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read problem from stdin: %w", err)
		}
		args = []string{string(data)}
	}
	problem := strings.TrimSpace(strings.Join(args, " "))
	if problem == "" {
		return "", fmt.Errorf("a problem statement is required (or use --classic N)")
	}
	return problem, nil
}

func subjectAndDifficulty(cmd *cobra.Command) (olympiad.Subject, olympiad.Difficulty, error) {
	sv, _ := cmd.Flags().GetString("subject")
	dv, _ := cmd.Flags().GetString("difficulty")
	subject, err := olympiad.ParseSubject(sv)
	if err != nil {
		return "", "", err
	}
	difficulty, err := olympiad.ParseDifficulty(dv)
	if err != nil {
		return "", "", err
	}
	return subject, difficulty, nil
}

func exportSVGs(logger *zap.Logger, dir, problem string, res *olympiad.SynthesisResult) error {
	stem := fileStem(problem)
	for i, sol := range res.Solutions {
		name := fmt.Sprintf("%s-m%d", stem, i+1)
		if g, err := proof.Layout(sol.ReasoningTrace); err != nil {
			warnf("skipping proof graph for %q: %v", sol.MethodName, err)
		} else {
			path, err := diagram.Save(dir, name+"-proof", proof.RenderSVG(g))
			if err != nil {
				return err
			}
			logger.Info("saved proof graph", zap.String("path", path))
			fmt.Fprintln(os.Stderr, "wrote", path)
		}
		if !sol.HasDiagram() {
			continue
		}
		path, err := diagram.Save(dir, name+"-diagram", sol.GeometricVisualization)
		if err != nil {
			return err
		}
		logger.Info("saved diagram", zap.String("path", path))
		fmt.Fprintln(os.Stderr, "wrote", path)
	}
	return nil
}

func fileStem(problem string) string {
	words := strings.Fields(strings.ToLower(problem))
	if len(words) > 5 {
		words = words[:5]
	}
	if len(words) == 0 {
		return "problem"
	}
	return strings.Join(words, "-")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printSynthesis(w io.Writer, t *i18n.Strings, res *olympiad.SynthesisResult) {
	sep := strings.Repeat("\u2500", 72)

	fmt.Fprintf(w, "%s: %s   %s: %s   %s: %.1fs\n",
		t.DomainLabel, t.Subject(res.Subject),
		t.DifficultyLabel, t.Difficulty(res.Difficulty),
		t.StatusSolveTime, res.SolveTime)

	for i, sol := range res.Solutions {
		fmt.Fprintln(w, sep)
		fmt.Fprintf(w, "%d. %s  [%s: %s]\n", i+1, sol.MethodName, t.SolutionElegance, t.Elegance(sol.Elegance))
		fmt.Fprintln(w, sep)
		fmt.Fprintf(w, "%s:\n  %s\n\n", t.FormalizationTitle, sol.Formalization)
		fmt.Fprintf(w, "%s:\n", t.ReasoningTraceTitle)
		printSteps(w, t, sol.ReasoningTrace)
		if err := proof.Validate(sol.ReasoningTrace); err != nil {
			fmt.Fprintf(w, "  (warning) %v\n", err)
		}
	}

	if len(res.Interconnections) > 0 {
		fmt.Fprintln(w, sep)
		fmt.Fprintf(w, "%s:\n", t.InterconnectTitle)
		for _, ic := range res.Interconnections {
			fmt.Fprintf(w, "  %s -> %s\n", ic.Source, ic.Target)
		}
	}
}

func printSteps(w io.Writer, t *i18n.Strings, steps []olympiad.ReasoningStep) {
	for _, s := range steps {
		fmt.Fprintf(w, "  %-4s %-11s %s\n", s.ID, s.Type, s.Statement)
		if s.Justification != "" {
			fmt.Fprintf(w, "       %s: %s\n", t.StepJustification, s.Justification)
		}
		if len(s.Dependencies) > 0 {
			fmt.Fprintf(w, "       %s: %s\n", t.StepDependencies, strings.Join(s.Dependencies, ", "))
		}
	}
	fmt.Fprintln(w)
}

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/synthetica/internal/i18n"
	"github.com/abhisek/synthetica/internal/olympiad"
	"github.com/abhisek/synthetica/internal/synth"
)

// verifyOutput is the --json result: the verdict plus the step list with
// the formalized step appended when accepted.
type verifyOutput struct {
	Verification *olympiad.VerificationResult `json:"verification"`
	Steps        []olympiad.ReasoningStep     `json:"steps"`
}

var verifyCmd = &cobra.Command{
	Use:   "verify <proposed step>",
	Short: "Check a proposed proof step against the steps accepted so far",
	Long: "Verify asks the model whether the proposed step follows from the problem and the " +
		"accepted steps. Accepted steps are read from a JSON array (--steps); with --json the " +
		"updated array is printed so it can be fed to the next call.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		problem, _ := cmd.Flags().GetString("problem")
		if strings.TrimSpace(problem) == "" {
			p, err := problemFromArgs(cmd, nil)
			if err != nil {
				return errors.New("a problem statement is required: pass --problem or --classic")
			}
			problem = p
		}

		var steps []olympiad.ReasoningStep
		var err error
		if path, _ := cmd.Flags().GetString("steps"); path != "" {
			steps, err = readSteps(path)
			if err != nil {
				return err
			}
		}

		rt, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		v, err := rt.client.VerifyStep(cmd.Context(), synth.VerifyRequest{
			Problem:       problem,
			AcceptedSteps: steps,
			ProposedStep:  strings.Join(args, " "),
			Language:      rt.lang,
		})
		if err != nil {
			return err
		}
		if v.Accepted() {
			steps = append(steps, *v.FormalizedStep)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			if steps == nil {
				steps = []olympiad.ReasoningStep{}
			}
			return writeJSON(cmd.OutOrStdout(), verifyOutput{Verification: v, Steps: steps})
		}

		t := i18n.For(rt.lang)
		out := cmd.OutOrStdout()
		mark := "✗"
		if v.IsValid {
			mark = "✓"
		}
		fmt.Fprintf(out, "%s %s\n\n", mark, v.Feedback)
		if v.Accepted() {
			fmt.Fprintf(out, "%s:\n", t.WorkbenchProofSteps)
			printSteps(out, t, steps)
		}
		if len(v.Suggestions) > 0 {
			fmt.Fprintf(out, "%s:\n", t.WorkbenchAISuggestions)
			for i, s := range v.Suggestions {
				fmt.Fprintf(out, "  %d. %s\n", i+1, s)
			}
		}
		return nil
	},
}

func init() {
	f := verifyCmd.Flags()
	f.String("problem", "", "Problem statement the proof is for")
	f.Int("classic", 0, "Use the Nth classic problem as the problem statement")
	f.String("steps", "", "JSON file with the accepted steps so far")
	f.Bool("json", false, "Print the verdict and the updated step list as JSON")
}

func readSteps(path string) ([]olympiad.ReasoningStep, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read steps: %w", err)
	}
	var steps []olympiad.ReasoningStep
	if err := json.Unmarshal(data, &steps); err != nil {
		// Accept the output of a previous --json run as well.
		var prev verifyOutput
		if err2 := json.Unmarshal(data, &prev); err2 != nil || prev.Steps == nil {
			return nil, fmt.Errorf("parse steps %s: %w", path, err)
		}
		steps = prev.Steps
	}
	return steps, nil
}

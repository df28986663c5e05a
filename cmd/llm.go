package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/synthetica/internal/llm"
	"github.com/abhisek/synthetica/internal/store"
	"github.com/spf13/cobra"
)

const timeLayout = "2006-01-02 15:04:05"

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded LLM calls",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM calls, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		session, _ := cmd.Flags().GetString("session")
		failed, _ := cmd.Flags().GetBool("failed")
		asJSON, _ := cmd.Flags().GetBool("json")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{
			Limit:      limit,
			Purpose:    purpose,
			SessionID:  session,
			FailedOnly: failed,
		})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		w := cmd.OutOrStdout()
		if asJSON {
			if events == nil {
				events = []store.LLMEventRecord{}
			}
			return writeJSON(w, events)
		}
		printEventList(w, events)
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full request and response of one call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q", args[0])
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}
		printEvent(cmd.OutOrStdout(), e)
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage per purpose and estimated cost per model",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		byModel, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}
		printStats(cmd.OutOrStdout(), byPurpose, byModel)
		return nil
	},
}

var llmPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete recorded calls older than a given age",
	RunE: func(cmd *cobra.Command, args []string) error {
		age, _ := cmd.Flags().GetDuration("older-than")
		if age <= 0 {
			return fmt.Errorf("--older-than must be positive")
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := s.EventRepo().PruneLLMEvents(cmd.Context(), time.Now().Add(-age))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d event(s) older than %s.\n", n, age)
		return nil
	},
}

func printEventList(w io.Writer, events []store.LLMEventRecord) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No LLM events found.")
		return
	}

	fmt.Fprintf(w, "%-5s  %-19s  %-14s  %-28s  %-6s  %-6s  %-7s  %s\n",
		"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
	fmt.Fprintln(w, strings.Repeat("─", 100))
	for _, e := range events {
		ok := "✓"
		switch {
		case !e.Success:
			ok = "✗"
		case e.Cached:
			ok = "✓ cached"
		}
		fmt.Fprintf(w, "%-5d  %-19s  %-14s  %-28s  %-6d  %-6d  %-7d  %s\n",
			e.ID, e.Timestamp.Local().Format(timeLayout), e.Purpose, truncate(e.Model, 28),
			e.InputTokens, e.OutputTokens, e.LatencyMs, ok)
	}
}

func printEvent(w io.Writer, e *store.LLMEventRecord) {
	field := func(label, value string) {
		if value != "" {
			fmt.Fprintf(w, "%-10s %s\n", label+":", value)
		}
	}
	field("ID", strconv.Itoa(e.ID))
	field("Time", e.Timestamp.Local().Format(timeLayout))
	field("Provider", e.Provider)
	field("Model", e.Model)
	field("Purpose", e.Purpose)
	field("Session", e.SessionID)
	field("Request", e.RequestID)
	field("Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens))
	field("Latency", fmt.Sprintf("%dms", e.LatencyMs))
	field("Success", strconv.FormatBool(e.Success))
	if e.Cached {
		field("Cached", "true")
	}
	field("Error", e.ErrorMessage)

	sep := strings.Repeat("─", 60)
	for _, part := range []struct{ title, body string }{
		{"REQUEST", e.RequestBody},
		{"RESPONSE", e.ResponseBody},
	} {
		fmt.Fprintf(w, "\n%s\n%s\n%s\n", sep, part.title, sep)
		if part.body == "" {
			fmt.Fprintln(w, "(not captured)")
		} else {
			fmt.Fprintln(w, part.body)
		}
	}
}

func printStats(w io.Writer, byPurpose []store.PurposeUsage, byModel []store.ModelUsage) {
	if len(byPurpose) == 0 {
		fmt.Fprintln(w, "No LLM usage recorded yet.")
		return
	}
	rule := strings.Repeat("─", 72)

	fmt.Fprintf(w, "Usage by Purpose\n%s\n", rule)
	fmt.Fprintf(w, "%-16s  %6s  %6s  %10s  %10s  %10s  %8s\n",
		"Purpose", "Calls", "Failed", "Input", "Output", "Total", "Avg Ms")
	fmt.Fprintln(w, rule)
	var calls, in, out int
	for _, u := range byPurpose {
		fmt.Fprintf(w, "%-16s  %6d  %6d  %10d  %10d  %10d  %8d\n",
			u.Purpose, u.Calls, u.Failures, u.InputTokens, u.OutputTokens, u.InputTokens+u.OutputTokens, u.AvgLatencyMs)
		calls += u.Calls
		in += u.InputTokens
		out += u.OutputTokens
	}
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-16s  %6d  %6s  %10d  %10d  %10d\n", "TOTAL", calls, "", in, out, in+out)

	if len(byModel) == 0 {
		return
	}
	fmt.Fprintf(w, "\nEstimated Cost (USD)\n%s\n", rule)
	fmt.Fprintf(w, "%-32s  %6s  %10s  %10s  %10s\n", "Model", "Calls", "Input", "Output", "Cost")
	fmt.Fprintln(w, rule)
	for _, u := range byModel {
		cost := "?"
		if c := llm.LookupCost(u.Model); c != nil {
			cost = formatCost(c.Cost(u.InputTokens, u.OutputTokens))
		}
		fmt.Fprintf(w, "%-32s  %6d  %10d  %10d  %10s\n", truncate(u.Model, 32), u.Calls, u.InputTokens, u.OutputTokens, cost)
	}
	total, unknown := llm.EstimateCost(byModel)
	label := "TOTAL"
	if len(unknown) > 0 {
		label = "TOTAL (partial)"
	}
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-32s  %6s  %10s  %10s  %10s\n", label, "", "", "", formatCost(total))
	if len(unknown) > 0 {
		fmt.Fprintf(w, "\nPricing unavailable for: %s\n", strings.Join(unknown, ", "))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (synthesize, generate, verify)")
	llmListCmd.Flags().String("session", "", "Filter by session ID")
	llmListCmd.Flags().Bool("failed", false, "Only show failed calls")
	llmListCmd.Flags().Bool("json", false, "Print events as JSON")
	llmPruneCmd.Flags().Duration("older-than", 30*24*time.Hour, "Delete events older than this age")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd, llmPruneCmd)
}

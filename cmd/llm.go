package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/mentorlabs/mentor/internal/llm"
	"github.com/mentorlabs/mentor/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM request events",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if purpose != "" {
			events = filterByPurpose(events, purpose)
		}
		if len(events) == 0 {
			fmt.Println("No LLM events found.")
			return nil
		}

		printEventTable(events)
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(byPurpose) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}
		printPurposeUsage(byPurpose)

		byModel, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}
		if len(byModel) > 0 {
			fmt.Println()
			printCostEstimate(byModel)
		}
		return nil
	},
}

func filterByPurpose(events []store.LLMEventRecord, purpose string) []store.LLMEventRecord {
	kept := events[:0]
	for _, e := range events {
		if e.Purpose == purpose {
			kept = append(kept, e)
		}
	}
	return kept
}

func printEventTable(events []store.LLMEventRecord) {
	w := tabwriter.NewWriter(os.Stdout, 2, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ID\tTIMESTAMP\tPURPOSE\tMODEL\tIN\tOUT\tMS\tOK")
	for _, e := range events {
		ok := "✓"
		if !e.Success {
			ok = "✗"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			e.ID,
			e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			e.Purpose,
			e.Model,
			e.InputTokens,
			e.OutputTokens,
			e.LatencyMs,
			ok,
		)
	}
}

func printPurposeUsage(stats []store.LLMUsageRecord) {
	fmt.Println("Usage by purpose")

	w := tabwriter.NewWriter(os.Stdout, 2, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "PURPOSE\tCALLS\tINPUT\tOUTPUT\tTOTAL\tAVG MS")
	var calls, in, out int
	for _, st := range stats {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\n",
			st.Purpose, st.Calls, st.InputTokens, st.OutputTokens,
			st.InputTokens+st.OutputTokens, st.AvgLatencyMs)
		calls += st.Calls
		in += st.InputTokens
		out += st.OutputTokens
	}
	fmt.Fprintf(w, "total\t%d\t%d\t%d\t%d\t\n", calls, in, out, in+out)
}

func printCostEstimate(stats []store.LLMUsageRecord) {
	fmt.Println("Estimated cost (USD)")

	w := tabwriter.NewWriter(os.Stdout, 2, 0, 2, ' ', 0)

	fmt.Fprintln(w, "MODEL\tCALLS\tINPUT\tOUTPUT\tCOST")
	var total float64
	var unpriced []string
	for _, st := range stats {
		pricing := llm.LookupCost(st.Model)
		if pricing == nil {
			unpriced = append(unpriced, st.Model)
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\tn/a\n",
				st.Model, st.Calls, st.InputTokens, st.OutputTokens)
			continue
		}
		cost := pricing.Cost(st.InputTokens, st.OutputTokens)
		total += cost
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n",
			st.Model, st.Calls, st.InputTokens, st.OutputTokens, formatCost(cost))
	}

	label := "total"
	if len(unpriced) > 0 {
		label = "total (partial)"
	}
	fmt.Fprintf(w, "%s\t\t\t\t%s\n", label, formatCost(total))
	w.Flush()

	if len(unpriced) > 0 {
		fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unpriced, ", "))
	}
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (tutor-chat, bank-gen)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmStatsCmd)
}

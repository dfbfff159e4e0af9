package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/mentorlabs/mentor/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		repo := st.EventRepo()

		accuracy, err := repo.OverallAccuracy(ctx)
		if err != nil {
			return fmt.Errorf("query accuracy: %w", err)
		}
		byLevel, err := repo.AccuracyByLevel(ctx)
		if err != nil {
			return fmt.Errorf("query level accuracy: %w", err)
		}
		sessions, err := repo.QuerySessionSummaries(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		if len(sessions) == 0 && len(byLevel) == 0 {
			fmt.Println("No practice data yet. Run a session first.")
			return nil
		}

		fmt.Printf("Overall accuracy: %d%%\n\n", int(accuracy*100))

		if len(byLevel) > 0 {
			fmt.Println("Accuracy by Level")
			fmt.Println(strings.Repeat("─", 40))
			fmt.Printf("%-6s  %9s  %8s  %9s\n", "Level", "Answered", "Correct", "Accuracy")
			for _, rec := range byLevel {
				pct := 0
				if rec.Answered > 0 {
					pct = rec.Correct * 100 / rec.Answered
				}
				fmt.Printf("%-6d  %9d  %8d  %8d%%\n", rec.Level, rec.Answered, rec.Correct, pct)
			}
			fmt.Println()
		}

		if len(sessions) > 0 {
			fmt.Println("Recent Sessions")
			fmt.Println(strings.Repeat("─", 72))
			fmt.Printf("%-19s  %9s  %8s  %6s  %5s  %8s\n",
				"When", "Questions", "Correct", "XP", "Peak", "Duration")
			for _, s := range sessions {
				fmt.Printf("%-19s  %9d  %8d  %6d  %5d  %5d:%02d\n",
					s.Timestamp.Local().Format("2006-01-02 15:04:05"),
					s.QuestionsServed,
					s.CorrectAnswers,
					s.ExperienceEarned,
					s.PeakLevel,
					s.DurationSecs/60, s.DurationSecs%60,
				)
			}
		}

		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of recent sessions to show")
}

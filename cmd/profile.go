package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/mentorlabs/mentor/internal/profile"
	"github.com/mentorlabs/mentor/internal/store"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update the learner profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		style, _ := cmd.Flags().GetString("style")
		language, _ := cmd.Flags().GetString("language")

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
		profiles := profile.Load(ctx, st.SnapshotRepo())

		if style != "" {
			if !validStyle(style) {
				return fmt.Errorf("unknown style %q (choose one of: %s)", style, strings.Join(profile.Styles, ", "))
			}
			profiles.SetStyle(style)
		}
		if language != "" {
			profiles.SetLanguage(language)
		}

		p := profiles.Current()
		fmt.Printf("Learning style:  %s\n", p.LearningStyle)
		fmt.Printf("Language:        %s\n", p.Language)
		fmt.Printf("Confidence:      %.2f\n", p.Confidence)
		fmt.Printf("Motivation:      %.2f\n", p.Motivation)
		fmt.Printf("Pace:            %.2f\n", p.Pace)
		fmt.Printf("Focus:           %.2f\n", p.Focus)
		return nil
	},
}

func validStyle(style string) bool {
	for _, s := range profile.Styles {
		if s == style {
			return true
		}
	}
	return false
}

func init() {
	profileCmd.Flags().String("style", "", "Set the learning style (visual, audio, game, text, mixed)")
	profileCmd.Flags().String("language", "", "Set the preferred language tag (e.g. en, es)")
}

package cmd

import (
	"github.com/spf13/cobra"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Jump straight into a practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "practice")
	},
}

func init() {
	practiceCmd.Flags().Bool("fresh", false, "Generate a fresh question bank with the configured LLM")
}

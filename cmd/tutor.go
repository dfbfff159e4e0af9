package cmd

import (
	"github.com/spf13/cobra"
)

var tutorCmd = &cobra.Command{
	Use:   "tutor",
	Short: "Open a chat with the mentor",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "tutor")
	},
}

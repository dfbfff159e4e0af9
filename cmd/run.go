package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mentorlabs/mentor/internal/app"
	"github.com/mentorlabs/mentor/internal/llm"
	"github.com/mentorlabs/mentor/internal/practice"
	"github.com/mentorlabs/mentor/internal/profile"
	"github.com/mentorlabs/mentor/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// start optionally names a screen to open on top of home.
func runApp(cmd *cobra.Command, start string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	profiles := profile.Load(ctx, st.SnapshotRepo())

	opts := app.Options{
		Bank:     practice.BuiltinBank(),
		Events:   eventRepo,
		Profiles: profiles,
		Start:    start,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The tutor will use offline replies.")
	} else {
		opts.Provider = provider

		if fresh, _ := cmd.Flags().GetBool("fresh"); fresh {
			fmt.Println("Generating a fresh question bank...")
			gen := practice.NewGenerator(provider, practice.DefaultGenConfig())
			bank, err := gen.Generate(ctx, profiles.Current())
			if err != nil {
				fmt.Fprintln(os.Stderr, "Bank generation failed:", err)
				fmt.Fprintln(os.Stderr, "Falling back to the built-in bank.")
			} else {
				opts.Bank = bank
			}
		}
	}

	return app.Run(opts)
}

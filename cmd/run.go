package cmd

import (
	"fmt"

	"github.com/aditir/eduterm/internal/app"
	"github.com/aditir/eduterm/internal/auth"
	"github.com/aditir/eduterm/internal/llm"
	"github.com/aditir/eduterm/internal/store"
	"github.com/aditir/eduterm/internal/tutor"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.RequestLogRepo())
	if err != nil {
		return fmt.Errorf("no API key found: %w", err)
	}

	opts := app.Options{
		Auth:  auth.NewService(st.UserRepo()),
		Tutor: tutor.NewService(provider),
	}

	return app.Run(opts)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizutani/kotoba/internal/app"
	"github.com/mizutani/kotoba/internal/logger"
	"github.com/mizutani/kotoba/internal/quiz"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, cfg, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	debug, _ := cmd.Flags().GetBool("debug")
	log, err := logger.New(debug)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	return app.Run(app.Options{
		Store:   st,
		Planner: quiz.NewPlanner(st, log),
		Config:  cfg,
	})
}

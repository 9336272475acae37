package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mizutani/kotoba/internal/config"
	"github.com/mizutani/kotoba/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "kotoba",
	Short: "Spaced-repetition Japanese vocabulary trainer",
	Long:  "Kotoba is a terminal trainer that drills kanji and vocabulary meanings and readings on a spaced-repetition schedule.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Database location: a SQLite file path or a postgres:// DSN (overrides KOTOBA_DB)")
	rootCmd.PersistentFlags().Bool("debug", false, "Log at debug level")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(unlockCmd)
	rootCmd.AddCommand(subjectCmd)
	rootCmd.AddCommand(mnemonicCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDSN returns the database location using --db flag (highest
// priority), then the configured database_url, then the default XDG path.
func resolveDSN(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		if strings.HasPrefix(p, "postgres://") || strings.HasPrefix(p, "postgresql://") {
			return p, nil
		}
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DatabaseURL != "" {
		return cfg.DatabaseURL, nil
	}
	return store.DefaultDBPath()
}

// openStore loads the configuration and opens the store behind cmd.
func openStore(cmd *cobra.Command) (*store.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	dsn, err := resolveDSN(cmd, cfg)
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(dsn)
	if err != nil {
		return nil, nil, err
	}
	return st, cfg, nil
}

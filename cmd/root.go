package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"skillcheck/internal/config"
	"skillcheck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "skillcheck",
	Short: "LLM-powered skill assessments",
	Long:  "Skillcheck generates multiple-choice skill assessments with an LLM, grades them, and keeps per-topic leaderboards and certificates.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SKILLCHECK_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ~/.config/skillcheck/config.yaml)")
	rootCmd.PersistentFlags().StringP("user", "u", "", "Username to act as")

	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(certCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file named by --config, or the default
// location when the flag is unset.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then SKILLCHECK_DB / the default XDG
// path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.Database != "" {
		return cfg.Database, store.EnsureDir(cfg.Database)
	}
	return store.DefaultDBPath()
}

// openStore loads config and opens the database in one step, since
// every subcommand needs both.
func openStore(cmd *cobra.Command) (*store.Store, config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, cfg, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, cfg, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, cfg, fmt.Errorf("open database: %w", err)
	}
	return st, cfg, nil
}

// requireUser resolves the --user flag to a stored user, creating the
// account on first use.
func requireUser(cmd *cobra.Command, st *store.Store) (*store.User, error) {
	username, _ := cmd.Flags().GetString("user")
	if username == "" {
		return nil, fmt.Errorf("--user is required")
	}
	return st.Users().Ensure(cmd.Context(), username)
}

package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/config"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "logos",
	Short: "Adaptive scheduling core for language learning",
	Long: "Logos schedules language items per learner by combining IRT ability\n" +
		"estimation, a forgetting-curve memory model, and value/cost priority\n" +
		"ranking over the candidate pool.",
}

func Execute() error {
	// Missing .env is fine; the environment may already be set.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LOGOS_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to JSON configuration file")

	rootCmd.AddCommand(calibrateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then LOGOS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveConfig loads the --config file, or the defaults when none is given.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return config.Load(p)
	}
	return config.Default(), nil
}

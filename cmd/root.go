package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seralk/lingua/internal/kvstore"
)

var rootCmd = &cobra.Command{
	Use:   "lingua",
	Short: "Language learning in the terminal",
	Long:  "Lingua — a terminal language tutor that tracks lesson mastery, schedules weak-item review, and keeps your XP and streak.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LINGUA_DB env var)")

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(placeCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LINGUA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, kvstore.EnsureDir(p)
	}
	return kvstore.DefaultDBPath()
}

// newLogger builds the CLI logger. Output stays quiet unless LINGUA_DEBUG
// is set, so session prompts are not interleaved with log lines.
func newLogger() *zap.Logger {
	if os.Getenv("LINGUA_DEBUG") == "" {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/iqorum/internal/bank"
	"github.com/abhisek/iqorum/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "iqorum",
	Short: "Political compass and IQ test in your terminal",
	Long:  "IQorum — terminal self-assessment app: a political orientation survey and a timed cognitive test, with local-only result storage.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides IQORUM_DB env var)")
	rootCmd.PersistentFlags().String("feed", "", "Path to a question feed JSON file (overrides IQORUM_FEED env var)")

	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(llmCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then IQORUM_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveQuestions loads the question feed: --feed flag, then
// IQORUM_FEED env var, then the embedded default set. A broken external
// feed falls back to the builtin set with a warning.
func resolveQuestions(cmd *cobra.Command) ([]bank.Question, error) {
	path, _ := cmd.Flags().GetString("feed")
	if path == "" {
		path = os.Getenv("IQORUM_FEED")
	}
	if path == "" {
		return bank.Builtin()
	}

	questions, err := bank.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: question feed %s: %v\n", path, err)
		fmt.Fprintln(os.Stderr, "falling back to the builtin question set")
		return bank.Builtin()
	}
	return questions, nil
}

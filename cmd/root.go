package cmd

import (
	"github.com/spf13/cobra"

	"github.com/siddiq-x/AI-tutor/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "eduai",
	Short: "AI-powered study tools in your terminal",
	Long:  "EduAI Hub — doubt solving, quiz generation, assignments, humanizing, plagiarism checks and a searchable prompt vault, all in one terminal app.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EDUAI_DB env var)")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath picks the database path: the --db flag wins, then the
// EDUAI_DB env var, then the default XDG location.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

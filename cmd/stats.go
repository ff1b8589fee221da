package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/siddiq-x/AI-tutor/internal/assignment"
	"github.com/siddiq-x/AI-tutor/internal/humanize"
	"github.com/siddiq-x/AI-tutor/internal/plagiarism"
	"github.com/siddiq-x/AI-tutor/internal/store"
	"github.com/siddiq-x/AI-tutor/internal/vault"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show vault statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		svc := vault.New(st.VaultRepo(), nil)
		svc.BridgeReports(plagiarism.NewHistory(st.KV()))
		svc.BridgeAssignments(assignment.NewArchive(st.KV()))
		svc.BridgeRewrites(humanize.NewArchive(st.KV()))
		labels, counts, err := svc.CountByTool(ctx)
		if err != nil {
			return fmt.Errorf("count: %w", err)
		}

		total := 0
		for _, label := range labels {
			total += counts[label]
		}
		fmt.Printf("Vault: %d items across %d tools\n", total, len(labels))
		for _, label := range labels {
			fmt.Printf("  %-22s %d\n", label, counts[label])
		}
		return nil
	},
}

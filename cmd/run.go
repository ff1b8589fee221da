package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/siddiq-x/AI-tutor/internal/ai"
	"github.com/siddiq-x/AI-tutor/internal/app"
	"github.com/siddiq-x/AI-tutor/internal/assignment"
	"github.com/siddiq-x/AI-tutor/internal/auth"
	"github.com/siddiq-x/AI-tutor/internal/doubt"
	"github.com/siddiq-x/AI-tutor/internal/humanize"
	"github.com/siddiq-x/AI-tutor/internal/plagiarism"
	"github.com/siddiq-x/AI-tutor/internal/quiz"
	"github.com/siddiq-x/AI-tutor/internal/store"
	"github.com/siddiq-x/AI-tutor/internal/vault"
)

// runApp opens the store, builds the services, and launches the TUI.
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

	authSvc := auth.New(st.KV())
	if _, err := authSvc.LoadSession(ctx); err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	history := plagiarism.NewHistory(st.KV())
	drafts := assignment.NewArchive(st.KV())
	rewrites := humanize.NewArchive(st.KV())

	vaultSvc := vault.New(st.VaultRepo(), authSvc)
	vaultSvc.BridgeReports(history)
	vaultSvc.BridgeAssignments(drafts)
	vaultSvc.BridgeRewrites(rewrites)
	if err := vaultSvc.SeedDemo(ctx); err != nil {
		return fmt.Errorf("seed vault: %w", err)
	}

	// The remote backend is optional. The tools run on their local engines
	// either way; a misconfigured backend only costs a warning.
	aiCfg := ai.ConfigFromEnv()
	if err := aiCfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "AI backend not configured:", err)
		fmt.Fprintln(os.Stderr, "Falling back to the built-in engines.")
		aiCfg = ai.DefaultConfig()
	}
	provider, err := ai.NewProvider(aiCfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "AI backend unavailable:", err)
		provider = ai.NewMockProvider()
	}

	opts := app.Options{
		Auth:        authSvc,
		AI:          provider,
		Vault:       vaultSvc,
		Solver:      doubt.NewSolver(),
		Quizzes:     quiz.NewGenerator(),
		Assignments: assignment.NewGenerator(),
		Drafts:      drafts,
		Rewriter:    humanize.NewRewriter(),
		Rewrites:    rewrites,
		Checker:     plagiarism.NewChecker(),
		History:     history,
	}

	return app.Run(opts)
}

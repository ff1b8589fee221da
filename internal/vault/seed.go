package vault

import (
	"context"
	"time"

	"github.com/siddiq-x/AI-tutor/internal/store"
)

// SeedDemo inserts a couple of sample items so a fresh vault is not empty.
// It does nothing when the vault already has items.
func (s *Service) SeedDemo(ctx context.Context) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	base := s.now()
	seeds := []store.VaultItem{
		{
			ID:        s.newID(),
			Tool:      ToolDoubtSolver,
			Prompt:    "What is photosynthesis?",
			Response:  "Photosynthesis is the process by which plants convert light energy into chemical energy, producing glucose and oxygen from carbon dioxide and water.",
			CreatedAt: base.Add(-48 * time.Hour),
		},
		{
			ID:        s.newID(),
			Tool:      ToolQuizGenerator,
			Prompt:    "Create a quiz about World War II",
			Response:  "Generated a 5-question quiz covering major events, key figures, and turning points of World War II.",
			CreatedAt: base.Add(-24 * time.Hour),
		},
	}
	for _, it := range seeds {
		if err := s.repo.Insert(ctx, it); err != nil {
			return err
		}
	}
	return nil
}

package vault

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/siddiq-x/AI-tutor/internal/assignment"
	"github.com/siddiq-x/AI-tutor/internal/auth"
	"github.com/siddiq-x/AI-tutor/internal/humanize"
	"github.com/siddiq-x/AI-tutor/internal/plagiarism"
	"github.com/siddiq-x/AI-tutor/internal/store"
)

// ErrNotSignedIn is returned when a save is attempted without a session.
var ErrNotSignedIn = errors.New("vault: sign in to save items")

// Tool labels as they appear on saved items and in the tool filter.
// Manual Entry tags items typed straight into the vault.
const (
	ToolDoubtSolver     = "Doubt Solver"
	ToolQuizGenerator   = "Quiz Generator"
	ToolAssignmentMaker = "AI Assignment Maker"
	ToolHumanizer       = "AI Humanizer"
	ToolPlagiarism      = "Plagiarism Checker"
	ToolManualEntry     = "Manual Entry"
)

// Stats summarizes the vault contents.
type Stats struct {
	Total    int
	Tools    int
	Filtered int
}

// ReportSource lists plagiarism check reports kept outside the vault table.
type ReportSource interface {
	List(ctx context.Context) ([]plagiarism.Report, error)
}

// AssignmentSource lists generated assignments kept outside the vault table.
type AssignmentSource interface {
	List(ctx context.Context) ([]assignment.Saved, error)
}

// RewriteSource lists humanizer rewrites kept outside the vault table.
type RewriteSource interface {
	List(ctx context.Context) ([]humanize.Saved, error)
}

// Service is the prompt vault. Every tool screen saves through it, and the
// vault screen reads, searches and deletes through it.
type Service struct {
	repo        store.VaultRepo
	auth        *auth.Service
	reports     ReportSource
	assignments AssignmentSource
	rewrites    RewriteSource
	now         func() time.Time
	newID       func() string
}

// New creates a vault service over the given repository.
func New(repo store.VaultRepo, authSvc *auth.Service) *Service {
	return &Service{
		repo:  repo,
		auth:  authSvc,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Save stores a prompt/response pair under the given tool label. It fails
// when no user is signed in.
func (s *Service) Save(ctx context.Context, tool, prompt, response string) (store.VaultItem, error) {
	if s.auth != nil && s.auth.Session() == nil {
		return store.VaultItem{}, ErrNotSignedIn
	}
	item := store.VaultItem{
		ID:        s.newID(),
		Tool:      tool,
		Prompt:    prompt,
		Response:  response,
		CreatedAt: s.now(),
	}
	if err := s.repo.Insert(ctx, item); err != nil {
		return store.VaultItem{}, err
	}
	return item, nil
}

// BridgeReports merges the given check history into the read side of the
// vault, so past plagiarism checks show up next to saved items. Bridged
// entries are read-only; Delete does not touch them.
func (s *Service) BridgeReports(src ReportSource) {
	s.reports = src
}

// BridgeAssignments merges the assignment archive into the read side.
func (s *Service) BridgeAssignments(src AssignmentSource) {
	s.assignments = src
}

// BridgeRewrites merges the humanizer archive into the read side.
func (s *Service) BridgeRewrites(src RewriteSource) {
	s.rewrites = src
}

// List returns all items, newest first, with bridged entries interleaved.
func (s *Service) List(ctx context.Context) ([]store.VaultItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	bridged, err := s.bridged(ctx)
	if err != nil {
		return nil, err
	}
	if len(bridged) == 0 {
		return items, nil
	}
	items = append(items, bridged...)
	sort.SliceStable(items, func(a, b int) bool {
		return items[a].CreatedAt.After(items[b].CreatedAt)
	})
	return items, nil
}

// bridged converts every attached source's entries into read-only items.
func (s *Service) bridged(ctx context.Context) ([]store.VaultItem, error) {
	var items []store.VaultItem
	if s.reports != nil {
		reports, err := s.reports.List(ctx)
		if err != nil {
			return nil, err
		}
		for i, r := range reports {
			items = append(items, store.VaultItem{
				ID:        fmt.Sprintf("check-%d-%d", r.CheckedAt.Unix(), i),
				Tool:      ToolPlagiarism,
				Prompt:    r.Excerpt,
				Response:  r.RenderReport(),
				CreatedAt: r.CheckedAt,
			})
		}
	}
	if s.assignments != nil {
		saved, err := s.assignments.List(ctx)
		if err != nil {
			return nil, err
		}
		for i, a := range saved {
			items = append(items, store.VaultItem{
				ID:        fmt.Sprintf("assignment-%d-%d", a.CreatedAt.Unix(), i),
				Tool:      ToolAssignmentMaker,
				Prompt:    a.Prompt,
				Response:  a.Content.Render(),
				CreatedAt: a.CreatedAt,
			})
		}
	}
	if s.rewrites != nil {
		saved, err := s.rewrites.List(ctx)
		if err != nil {
			return nil, err
		}
		for i, r := range saved {
			items = append(items, store.VaultItem{
				ID:        fmt.Sprintf("humanized-%d-%d", r.CreatedAt.Unix(), i),
				Tool:      ToolHumanizer,
				Prompt:    r.Original,
				Response:  r.Rewritten,
				CreatedAt: r.CreatedAt,
			})
		}
	}
	return items, nil
}

// Delete removes the item with the given id. It reports whether an item
// was actually removed.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}

// Search filters items by a case-insensitive substring over tool, prompt
// and response, and by an exact tool label. Either filter may be empty.
func (s *Service) Search(ctx context.Context, query, toolFilter string) ([]store.VaultItem, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	out := items[:0:0]
	for _, it := range items {
		if toolFilter != "" && it.Tool != toolFilter {
			continue
		}
		if q != "" && !matches(it, q) {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func matches(it store.VaultItem, q string) bool {
	return strings.Contains(strings.ToLower(it.Tool), q) ||
		strings.Contains(strings.ToLower(it.Prompt), q) ||
		strings.Contains(strings.ToLower(it.Response), q)
}

// CountByTool returns per-tool item counts, labels sorted alphabetically.
func (s *Service) CountByTool(ctx context.Context) ([]string, map[string]int, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	counts := make(map[string]int)
	for _, it := range items {
		counts[it.Tool]++
	}
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels, counts, nil
}

// StatsFor computes vault stats against the given filtered view.
func (s *Service) StatsFor(ctx context.Context, filtered []store.VaultItem) (Stats, error) {
	items, err := s.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	tools := make(map[string]struct{})
	for _, it := range items {
		tools[it.Tool] = struct{}{}
	}
	return Stats{Total: len(items), Tools: len(tools), Filtered: len(filtered)}, nil
}

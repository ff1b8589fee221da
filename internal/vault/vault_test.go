package vault

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/siddiq-x/AI-tutor/internal/assignment"
	"github.com/siddiq-x/AI-tutor/internal/auth"
	"github.com/siddiq-x/AI-tutor/internal/humanize"
	"github.com/siddiq-x/AI-tutor/internal/plagiarism"
	"github.com/siddiq-x/AI-tutor/internal/store"
)

func newTestService(t *testing.T, signedIn bool) (*Service, *auth.Service) {
	t.Helper()
	kv := store.NewMemKV()
	authSvc := auth.New(kv, auth.WithDelay(0))
	if signedIn {
		if _, err := authSvc.SignInWithPassword(context.Background(), "a@b.com", "pw"); err != nil {
			t.Fatalf("sign in: %v", err)
		}
	}
	svc := New(store.NewMemVaultRepo(), authSvc)
	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	base := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		ts := base
		base = base.Add(time.Minute)
		return ts
	}
	return svc, authSvc
}

func TestSaveRequiresSession(t *testing.T) {
	svc, _ := newTestService(t, false)
	_, err := svc.Save(context.Background(), ToolDoubtSolver, "q", "a")
	if !errors.Is(err, ErrNotSignedIn) {
		t.Fatalf("Save err = %v, want ErrNotSignedIn", err)
	}
	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("vault has %d items after rejected save, want 0", len(items))
	}
}

func TestSaveAndListNewestFirst(t *testing.T) {
	svc, _ := newTestService(t, true)
	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		prompt := fmt.Sprintf("prompt %d", i)
		if _, err := svc.Save(ctx, ToolDoubtSolver, prompt, "answer"); err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
	}
	items, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}
	if items[0].Prompt != "prompt 3" || items[2].Prompt != "prompt 1" {
		t.Errorf("items not newest first: %q ... %q", items[0].Prompt, items[2].Prompt)
	}
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	svc, _ := newTestService(t, true)
	ctx := context.Background()
	var target string
	for i := 0; i < 3; i++ {
		it, err := svc.Save(ctx, ToolHumanizer, fmt.Sprintf("p%d", i), "r")
		if err != nil {
			t.Fatalf("Save: %v", err)
		}
		if i == 1 {
			target = it.ID
		}
	}
	ok, err := svc.Delete(ctx, target)
	if err != nil || !ok {
		t.Fatalf("Delete = (%v, %v), want (true, nil)", ok, err)
	}
	items, _ := svc.List(ctx)
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	for _, it := range items {
		if it.ID == target {
			t.Errorf("deleted item %s still listed", target)
		}
	}
	if items[0].Prompt != "p2" || items[1].Prompt != "p0" {
		t.Errorf("remaining order wrong: %q, %q", items[0].Prompt, items[1].Prompt)
	}

	ok, err = svc.Delete(ctx, "missing")
	if err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
	if ok {
		t.Error("Delete of missing id reported true")
	}
}

func TestSearch(t *testing.T) {
	svc, _ := newTestService(t, true)
	ctx := context.Background()
	svc.Save(ctx, ToolDoubtSolver, "Explain mitosis", "Cell division happens in phases")
	svc.Save(ctx, ToolQuizGenerator, "Quiz on algebra", "Generated 5 questions")
	svc.Save(ctx, ToolHumanizer, "Rewrite my essay", "The essay now reads naturally")

	got, err := svc.Search(ctx, "MITOSIS", "")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].Tool != ToolDoubtSolver {
		t.Errorf("query match = %+v, want single doubt solver item", got)
	}

	got, _ = svc.Search(ctx, "essay", "")
	if len(got) != 1 || got[0].Tool != ToolHumanizer {
		t.Errorf("response-field match failed: %+v", got)
	}

	got, _ = svc.Search(ctx, "", ToolQuizGenerator)
	if len(got) != 1 || got[0].Prompt != "Quiz on algebra" {
		t.Errorf("tool filter = %+v, want quiz item", got)
	}

	got, _ = svc.Search(ctx, "essay", ToolQuizGenerator)
	if len(got) != 0 {
		t.Errorf("combined filters matched %d items, want 0", len(got))
	}

	got, _ = svc.Search(ctx, "", "")
	if len(got) != 3 {
		t.Errorf("empty filters returned %d items, want all 3", len(got))
	}
}

func TestSeedDemoOnlyOnEmptyVault(t *testing.T) {
	svc, _ := newTestService(t, true)
	ctx := context.Background()
	if err := svc.SeedDemo(ctx); err != nil {
		t.Fatalf("SeedDemo: %v", err)
	}
	items, _ := svc.List(ctx)
	if len(items) != 2 {
		t.Fatalf("seeded %d items, want 2", len(items))
	}
	if err := svc.SeedDemo(ctx); err != nil {
		t.Fatalf("second SeedDemo: %v", err)
	}
	items, _ = svc.List(ctx)
	if len(items) != 2 {
		t.Errorf("re-seed grew vault to %d items", len(items))
	}
}

func TestStats(t *testing.T) {
	svc, _ := newTestService(t, true)
	ctx := context.Background()
	svc.Save(ctx, ToolDoubtSolver, "a", "r")
	svc.Save(ctx, ToolDoubtSolver, "b", "r")
	svc.Save(ctx, ToolPlagiarism, "c", "r")

	filtered, _ := svc.Search(ctx, "", ToolDoubtSolver)
	stats, err := svc.StatsFor(ctx, filtered)
	if err != nil {
		t.Fatalf("StatsFor: %v", err)
	}
	if stats.Total != 3 || stats.Tools != 2 || stats.Filtered != 2 {
		t.Errorf("stats = %+v, want {Total:3 Tools:2 Filtered:2}", stats)
	}
}

type stubReports struct {
	reports []plagiarism.Report
}

func (s stubReports) List(_ context.Context) ([]plagiarism.Report, error) {
	return s.reports, nil
}

func TestBridgedReportsAppearInList(t *testing.T) {
	svc, _ := newTestService(t, true)
	ctx := context.Background()

	if _, err := svc.Save(ctx, ToolDoubtSolver, "older prompt", "answer"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	checked := time.Date(2025, time.June, 2, 9, 30, 0, 0, time.UTC)
	svc.BridgeReports(stubReports{reports: []plagiarism.Report{{
		Result: plagiarism.Result{
			Percentage:  12,
			RiskLevel:   plagiarism.RiskLow,
			Explanation: "Minor matches found.",
			CheckedAt:   checked,
		},
		Excerpt: "an essay about volcanoes",
	}}})

	items, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("List returned %d items, want 2", len(items))
	}
	// The check is newer than the saved item, so it comes first.
	if items[0].Tool != ToolPlagiarism {
		t.Errorf("items[0].Tool = %q, want %q", items[0].Tool, ToolPlagiarism)
	}
	if items[0].Prompt != "an essay about volcanoes" {
		t.Errorf("items[0].Prompt = %q", items[0].Prompt)
	}

	// Bridged entries are read-only.
	ok, err := svc.Delete(ctx, items[0].ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if ok {
		t.Error("Delete removed a bridged report")
	}

	// Search and stats see the bridged entry.
	found, err := svc.Search(ctx, "volcanoes", "")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("Search found %d items, want 1", len(found))
	}
	stats, err := svc.StatsFor(ctx, found)
	if err != nil {
		t.Fatalf("StatsFor: %v", err)
	}
	if stats.Total != 2 || stats.Tools != 2 || stats.Filtered != 1 {
		t.Errorf("stats = %+v, want total 2, tools 2, filtered 1", stats)
	}
}

type stubAssignments struct {
	saved []assignment.Saved
}

func (s stubAssignments) List(_ context.Context) ([]assignment.Saved, error) {
	return s.saved, nil
}

type stubRewrites struct {
	saved []humanize.Saved
}

func (s stubRewrites) List(_ context.Context) ([]humanize.Saved, error) {
	return s.saved, nil
}

func TestBridgedArchivesAppearInList(t *testing.T) {
	svc, _ := newTestService(t, true)
	ctx := context.Background()

	gen := assignment.NewGeneratorWithDelay(0)
	svc.BridgeAssignments(stubAssignments{saved: []assignment.Saved{{
		Prompt:    "the water cycle",
		Content:   gen.Generate("the water cycle", ""),
		CreatedAt: time.Date(2025, time.June, 3, 8, 0, 0, 0, time.UTC),
	}}})
	svc.BridgeRewrites(stubRewrites{saved: []humanize.Saved{{
		Original:  "Furthermore, the data indicates growth.",
		Rewritten: "Plus, the data indicates growth.",
		CreatedAt: time.Date(2025, time.June, 3, 9, 0, 0, 0, time.UTC),
	}}})

	items, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("List returned %d items, want 2", len(items))
	}
	if items[0].Tool != ToolHumanizer || items[1].Tool != ToolAssignmentMaker {
		t.Errorf("tools = %q, %q, want humanizer then assignment maker", items[0].Tool, items[1].Tool)
	}
	if !strings.Contains(items[1].Response, "Assignment: the water cycle") {
		t.Errorf("assignment entry response = %q, want rendered document", items[1].Response)
	}

	found, err := svc.Search(ctx, "", ToolAssignmentMaker)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(found) != 1 || found[0].Prompt != "the water cycle" {
		t.Errorf("tool filter over bridged entries = %+v", found)
	}
}

package humanize

import (
	"context"
	"testing"
	"time"

	"github.com/siddiq-x/AI-tutor/internal/store"
)

func TestArchiveAppendListRoundTrip(t *testing.T) {
	a := NewArchive(store.NewMemKV())
	base := time.Date(2025, time.July, 1, 10, 0, 0, 0, time.UTC)
	a.now = func() time.Time {
		ts := base
		base = base.Add(time.Minute)
		return ts
	}
	ctx := context.Background()

	if err := a.Append(ctx, "Furthermore, results.", "Plus, results."); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := a.Append(ctx, "However, caveats.", "But, caveats."); err != nil {
		t.Fatalf("Append: %v", err)
	}

	saved, err := a.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(saved) != 2 {
		t.Fatalf("List returned %d entries, want 2", len(saved))
	}
	if saved[0].Original != "However, caveats." {
		t.Errorf("newest entry = %q, want the last appended rewrite", saved[0].Original)
	}
	if saved[0].Rewritten != "But, caveats." {
		t.Errorf("stored rewrite = %q", saved[0].Rewritten)
	}
}

func TestArchiveEmptyOnMissingKey(t *testing.T) {
	a := NewArchive(store.NewMemKV())
	saved, err := a.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(saved) != 0 {
		t.Errorf("List on empty store returned %d entries", len(saved))
	}
}

package assignment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/siddiq-x/AI-tutor/internal/store"
)

func newTestArchive() *Archive {
	a := NewArchive(store.NewMemKV())
	base := time.Date(2025, time.July, 1, 10, 0, 0, 0, time.UTC)
	a.now = func() time.Time {
		ts := base
		base = base.Add(time.Minute)
		return ts
	}
	return a
}

func TestArchiveAppendNewestFirst(t *testing.T) {
	a := newTestArchive()
	ctx := context.Background()
	gen := NewGeneratorWithDelay(0)

	for _, topic := range []string{"volcanoes", "photosynthesis"} {
		if err := a.Append(ctx, topic, gen.Generate(topic, "")); err != nil {
			t.Fatalf("Append %s: %v", topic, err)
		}
	}

	saved, err := a.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(saved) != 2 {
		t.Fatalf("List returned %d entries, want 2", len(saved))
	}
	if saved[0].Prompt != "photosynthesis" || saved[1].Prompt != "volcanoes" {
		t.Errorf("order = %q, %q, want newest first", saved[0].Prompt, saved[1].Prompt)
	}
	if saved[0].Content.Title != "Assignment: photosynthesis" {
		t.Errorf("stored title = %q", saved[0].Content.Title)
	}
	if !saved[0].CreatedAt.After(saved[1].CreatedAt) {
		t.Error("newest entry does not carry the latest timestamp")
	}
}

func TestArchiveEmptyOnMissingKey(t *testing.T) {
	a := newTestArchive()
	saved, err := a.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(saved) != 0 {
		t.Errorf("List on empty store returned %d entries", len(saved))
	}
}

func TestArchiveTrimsToMax(t *testing.T) {
	a := newTestArchive()
	ctx := context.Background()
	gen := NewGeneratorWithDelay(0)

	for i := 0; i < maxArchive+5; i++ {
		topic := fmt.Sprintf("topic %d", i)
		if err := a.Append(ctx, topic, gen.Generate(topic, "")); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}

	saved, err := a.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(saved) != maxArchive {
		t.Fatalf("List returned %d entries, want %d", len(saved), maxArchive)
	}
	if saved[0].Prompt != fmt.Sprintf("topic %d", maxArchive+4) {
		t.Errorf("newest entry = %q, want the last appended topic", saved[0].Prompt)
	}
}

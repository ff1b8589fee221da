package assignment

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/siddiq-x/AI-tutor/internal/store"
)

// maxArchive caps how many past generations are kept.
const maxArchive = 20

// Saved is a stored generation with its originating prompt.
type Saved struct {
	Prompt    string    `json:"prompt"`
	Content   Content   `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Archive persists past generations in the key-value store, newest first.
type Archive struct {
	kv  store.KV
	now func() time.Time
}

// NewArchive creates an Archive over the given store.
func NewArchive(kv store.KV) *Archive {
	return &Archive{kv: kv, now: time.Now}
}

// Append records a generation, trimming the list to maxArchive.
func (a *Archive) Append(ctx context.Context, prompt string, c Content) error {
	saved, err := a.List(ctx)
	if err != nil {
		return err
	}

	saved = append([]Saved{{Prompt: prompt, Content: c, CreatedAt: a.now()}}, saved...)
	if len(saved) > maxArchive {
		saved = saved[:maxArchive]
	}

	data, err := json.Marshal(saved)
	if err != nil {
		return err
	}
	return a.kv.Set(ctx, store.KeySavedAssignments, data)
}

// List returns stored generations, newest first. A missing key is an
// empty list.
func (a *Archive) List(ctx context.Context) ([]Saved, error) {
	data, err := a.kv.Get(ctx, store.KeySavedAssignments)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var saved []Saved
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, err
	}
	return saved, nil
}

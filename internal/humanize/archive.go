package humanize

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/siddiq-x/AI-tutor/internal/store"
)

// maxArchive caps how many past rewrites are kept.
const maxArchive = 20

// Saved is a stored rewrite with the text it came from.
type Saved struct {
	Original  string    `json:"original"`
	Rewritten string    `json:"rewritten"`
	CreatedAt time.Time `json:"created_at"`
}

// Archive persists past rewrites in the key-value store, newest first.
type Archive struct {
	kv  store.KV
	now func() time.Time
}

// NewArchive creates an Archive over the given store.
func NewArchive(kv store.KV) *Archive {
	return &Archive{kv: kv, now: time.Now}
}

// Append records a rewrite, trimming the list to maxArchive.
func (a *Archive) Append(ctx context.Context, original, rewritten string) error {
	saved, err := a.List(ctx)
	if err != nil {
		return err
	}

	saved = append([]Saved{{Original: original, Rewritten: rewritten, CreatedAt: a.now()}}, saved...)
	if len(saved) > maxArchive {
		saved = saved[:maxArchive]
	}

	data, err := json.Marshal(saved)
	if err != nil {
		return err
	}
	return a.kv.Set(ctx, store.KeySavedHumanized, data)
}

// List returns stored rewrites, newest first. A missing key is an empty list.
func (a *Archive) List(ctx context.Context) ([]Saved, error) {
	data, err := a.kv.Get(ctx, store.KeySavedHumanized)
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

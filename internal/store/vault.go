package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"
)

// VaultItem is one saved entry in the shared vault log.
type VaultItem struct {
	ID        string
	Tool      string
	Prompt    string
	Response  string
	CreatedAt time.Time
}

// VaultRepo is the persistence interface for vault items. The log is
// append-only in the general path: no update-in-place.
type VaultRepo interface {
	// List returns all items newest-first.
	List(ctx context.Context) ([]VaultItem, error)

	// Insert appends an item. Item IDs must be unique.
	Insert(ctx context.Context, item VaultItem) error

	// Delete removes the item with the given id. Returns false if no
	// item matched.
	Delete(ctx context.Context, id string) (bool, error)

	// Count returns the total number of items.
	Count(ctx context.Context) (int, error)
}

type vaultRepo struct {
	db *sql.DB
}

func (r *vaultRepo) List(ctx context.Context) ([]VaultItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, tool, prompt, response, created_at
		 FROM vault_items ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list vault items: %w", err)
	}
	defer rows.Close()

	var items []VaultItem
	for rows.Next() {
		var it VaultItem
		var created string
		if err := rows.Scan(&it.ID, &it.Tool, &it.Prompt, &it.Response, &created); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse created_at for %s: %w", it.ID, err)
		}
		it.CreatedAt = t
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *vaultRepo) Insert(ctx context.Context, item VaultItem) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO vault_items (id, tool, prompt, response, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		item.ID, item.Tool, item.Prompt, item.Response,
		item.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("insert vault item %s: %w", item.ID, err)
	}
	return nil
}

func (r *vaultRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vault_items WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete vault item %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *vaultRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vault_items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count vault items: %w", err)
	}
	return n, nil
}

// MemVaultRepo is an in-memory VaultRepo for tests.
type MemVaultRepo struct {
	mu    sync.RWMutex
	items []VaultItem
}

// NewMemVaultRepo creates an empty in-memory vault repo.
func NewMemVaultRepo() *MemVaultRepo {
	return &MemVaultRepo{}
}

func (m *MemVaultRepo) List(_ context.Context) ([]VaultItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	// Newest first; insertion order breaks ties (later insert wins).
	out := make([]VaultItem, 0, len(m.items))
	for i := len(m.items) - 1; i >= 0; i-- {
		out = append(out, m.items[i])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemVaultRepo) Insert(_ context.Context, item VaultItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.items {
		if it.ID == item.ID {
			return fmt.Errorf("duplicate vault item id %s", item.ID)
		}
	}
	m.items = append(m.items, item)
	return nil
}

func (m *MemVaultRepo) Delete(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, it := range m.items {
		if it.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *MemVaultRepo) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items), nil
}

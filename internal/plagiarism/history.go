package plagiarism

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/siddiq-x/AI-tutor/internal/store"
)

// maxHistory caps how many past reports are kept.
const maxHistory = 20

// Report is a stored check with a snippet of the checked content.
type Report struct {
	Result
	Excerpt string `json:"excerpt"`
}

// excerptLen is how much of the checked content a report keeps.
const excerptLen = 120

// History persists past reports in the key-value store, newest first.
type History struct {
	kv store.KV
}

// NewHistory creates a History over the given store.
func NewHistory(kv store.KV) *History {
	return &History{kv: kv}
}

// Append records a report, trimming the list to maxHistory.
func (h *History) Append(ctx context.Context, res Result, content string) error {
	reports, err := h.List(ctx)
	if err != nil {
		return err
	}

	excerpt := content
	if r := []rune(excerpt); len(r) > excerptLen {
		excerpt = string(r[:excerptLen]) + "…"
	}

	reports = append([]Report{{Result: res, Excerpt: excerpt}}, reports...)
	if len(reports) > maxHistory {
		reports = reports[:maxHistory]
	}

	data, err := json.Marshal(reports)
	if err != nil {
		return err
	}
	return h.kv.Set(ctx, store.KeyPlagiarismReports, data)
}

// List returns stored reports, newest first. A missing key is an empty list.
func (h *History) List(ctx context.Context) ([]Report, error) {
	data, err := h.kv.Get(ctx, store.KeyPlagiarismReports)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var reports []Report
	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

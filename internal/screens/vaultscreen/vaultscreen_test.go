package vaultscreen

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/siddiq-x/AI-tutor/internal/vault"
)

func TestTruncateKeepsShortStrings(t *testing.T) {
	if got := truncate("hello", 10); got != "hello" {
		t.Errorf("truncate(hello, 10) = %q", got)
	}
}

func TestTruncateFlattensNewlines(t *testing.T) {
	if got := truncate("one\ntwo", 20); got != "one two" {
		t.Errorf("truncate = %q, want %q", got, "one two")
	}
}

func TestTruncateCountsRunes(t *testing.T) {
	in := strings.Repeat("日本語のテキスト", 8)
	got := truncate(in, 12)
	if !utf8.ValidString(got) {
		t.Fatalf("truncate split a rune: %q", got)
	}
	r := []rune(got)
	if len(r) != 13 {
		t.Errorf("rune length = %d, want 13", len(r))
	}
	if r[len(r)-1] != '…' {
		t.Errorf("missing ellipsis: %q", got)
	}
	if !strings.HasPrefix(in, string(r[:12])) {
		t.Errorf("truncated text is not a prefix of the input: %q", got)
	}
}

func TestAddToolsDefaultsToManualEntry(t *testing.T) {
	if addTools[0] != vault.ToolManualEntry {
		t.Errorf("default add tool = %q, want %q", addTools[0], vault.ToolManualEntry)
	}
}

func TestToolFiltersIncludeManualEntry(t *testing.T) {
	for _, f := range toolFilters {
		if f == vault.ToolManualEntry {
			return
		}
	}
	t.Errorf("toolFilters missing %q", vault.ToolManualEntry)
}

package fileinput

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadPlainText(t *testing.T) {
	path := writeFile(t, "notes.txt", "mitosis has four phases")
	f, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if f.Name != "notes.txt" {
		t.Errorf("Name = %q", f.Name)
	}
	if f.Content != "mitosis has four phases" {
		t.Errorf("Content = %q", f.Content)
	}
}

func TestReadDocumentGetsPlaceholder(t *testing.T) {
	path := writeFile(t, "syllabus.pdf", "%PDF-1.4 binary gibberish")
	f, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !strings.Contains(f.Content, "[Extracted content from syllabus.pdf]") {
		t.Errorf("Content = %q, want extraction placeholder", f.Content)
	}
}

func TestReadRejectsUnsupportedType(t *testing.T) {
	path := writeFile(t, "photo.png", "not really an image")
	_, err := Read(path)
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("err = %v, want ErrUnsupportedType", err)
	}
}

func TestReadRejectsOversizedFile(t *testing.T) {
	path := writeFile(t, "big.txt", strings.Repeat("x", MaxSize+1))
	_, err := Read(path)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("err = %v, want ErrTooLarge", err)
	}
}

func TestReadTextRejectsDocuments(t *testing.T) {
	path := writeFile(t, "slides.pptx", "zip bytes")
	_, err := ReadText(path)
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("err = %v, want ErrUnsupportedType", err)
	}

	ok := writeFile(t, "lecture.txt", "enzymes lower activation energy")
	f, err := ReadText(ok)
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	if f.Content != "enzymes lower activation energy" {
		t.Errorf("Content = %q", f.Content)
	}
}

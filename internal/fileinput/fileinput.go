package fileinput

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MaxSize is the largest file an upload accepts.
const MaxSize = 10 << 20 // 10 MB

// ErrTooLarge is returned for files over MaxSize.
var ErrTooLarge = fmt.Errorf("file exceeds the %dMB limit", MaxSize>>20)

// ErrUnsupportedType is returned for files outside the allow-list.
var ErrUnsupportedType = errors.New("unsupported file type")

// documentExts are the reference document types. Their content is not
// parsed; Read substitutes an extraction placeholder.
var documentExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".ppt":  true,
	".pptx": true,
}

// File is an uploaded file with its extracted text.
type File struct {
	Name    string
	Size    int64
	Content string
}

// Read loads the file at path. Plain text files are read literally;
// document types get a placeholder body. Anything else is rejected.
func Read(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return File{}, err
	}
	if info.IsDir() {
		return File{}, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > MaxSize {
		return File{}, fmt.Errorf("%s: %w", info.Name(), ErrTooLarge)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return File{}, err
		}
		return File{Name: info.Name(), Size: info.Size(), Content: string(data)}, nil
	case documentExts[ext]:
		return File{Name: info.Name(), Size: info.Size(), Content: placeholder(info.Name())}, nil
	default:
		return File{}, fmt.Errorf("%s: %w (use txt, pdf, doc, docx, ppt or pptx)", info.Name(), ErrUnsupportedType)
	}
}

// ReadText loads a plain text file only. Used where the reference must be
// literal text, like lecture notes.
func ReadText(path string) (File, error) {
	if strings.ToLower(filepath.Ext(path)) != ".txt" {
		return File{}, fmt.Errorf("%s: %w (only txt is accepted here)", filepath.Base(path), ErrUnsupportedType)
	}
	return Read(path)
}

func placeholder(name string) string {
	return fmt.Sprintf("[Extracted content from %s]\n\nThis reference document will inform the structure and key points of the generated output.", name)
}

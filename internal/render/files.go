package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pablasso/prdkanban/internal/board"
	"github.com/pablasso/prdkanban/internal/util"
)

// DefaultBaseName names export files when the board title has no usable characters.
const DefaultBaseName = "board"

// BaseName derives a file name stem from the board title.
func BaseName(doc board.Document) string {
	name := util.ToKebabCase(doc.Title)
	if name == "" {
		return DefaultBaseName
	}
	return name
}

// ResolveBaseName returns a stem for which none of the format files exist in
// dir. If baseName is free it is returned as-is; otherwise -2, -3, etc. are
// appended until a free stem is found.
func ResolveBaseName(dir, baseName string, formats []Format) (string, error) {
	taken := func(name string) (bool, error) {
		for _, f := range formats {
			_, err := os.Stat(filepath.Join(dir, name+f.Extension()))
			if err == nil {
				return true, nil
			}
			if !os.IsNotExist(err) {
				return false, fmt.Errorf("failed to check export file: %w", err)
			}
		}
		return false, nil
	}

	for suffix := 1; ; suffix++ {
		candidate := baseName
		if suffix > 1 {
			candidate = fmt.Sprintf("%s-%d", baseName, suffix)
		}
		busy, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !busy {
			return candidate, nil
		}
	}
}

// WriteFiles renders doc in each format and writes the results to dir, which
// is created if needed. Returns the written paths in format order.
func WriteFiles(dir string, doc board.Document, formats []Format) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	name, err := ResolveBaseName(dir, BaseName(doc), formats)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		text, err := Render(doc, f)
		if err != nil {
			return paths, err
		}
		path := filepath.Join(dir, name+f.Extension())
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return paths, fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

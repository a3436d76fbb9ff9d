// Package export renders tabular marketplace reports (transaction ledgers,
// booking lists) into portable formats for admin consumption.
package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dataset defines tabular export content.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// Renderer turns a dataset into encoded bytes.
type Renderer interface {
	Render(data Dataset, title string) ([]byte, error)
	Extension() string
}

// WriteFile renders the dataset and writes it under dir as name.<ext>.
func WriteFile(r Renderer, data Dataset, title, dir, name string) (string, error) {
	content, err := r.Render(data, title)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, name+"."+r.Extension())
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}
	return path, nil
}

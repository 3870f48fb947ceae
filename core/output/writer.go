// Package output handles writing rendered scrape output to disk.
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer writes rendered output into a target directory.
type Writer struct {
	Dir string
}

// New creates a Writer targeting the given directory, creating it if
// needed. An empty dir means the current working directory.
func New(dir string) (*Writer, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		dir = wd
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{Dir: dir}, nil
}

// Write stores data under name inside the writer's directory and returns
// the full path. Write failures are wrapped, never swallowed.
func (w *Writer) Write(name string, data []byte) (string, error) {
	path := filepath.Join(w.Dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// Package output handles file naming and writing for mediumpress outputs:
// the WXR import document and per-post preview files.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write stores data under name in the output directory and returns the full
// path.
func (w *Writer) Write(name string, data []byte) (string, error) {
	path := filepath.Join(w.OutputDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// ForSource derives an output filename from an input filename by swapping
// the extension: "2019-07-04_Title-hash.html" → "2019-07-04_Title-hash.xml".
func ForSource(sourceName, ext string) string {
	base := strings.TrimSuffix(sourceName, filepath.Ext(sourceName))
	return base + ext
}

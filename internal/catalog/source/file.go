package source

import (
	"context"
	"fmt"
	"os"
)

// FileLoader reads a JSON snapshot from disk.
type FileLoader struct {
	Path string
}

// NewFileLoader returns a loader for the JSON document at path.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{Path: path}
}

// Load opens and decodes the file. ctx is only checked before reading.
func (loader *FileLoader) Load(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(loader.Path)
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", loader.Path, err)
	}
	defer file.Close()

	return Decode(file)
}

package swaggen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Render serializes a document to pretty-printed JSON with a trailing
// newline. Object keys render in construction order; absent attributes
// are omitted entirely.
func Render(doc *Document) ([]byte, error) {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("swaggen: render document: %w", err)
	}
	return append(out, '\n'), nil
}

// WriteFile renders doc and writes it to path atomically: the full
// output is built in memory, written to a temporary file in the target
// directory, and renamed into place. A failed render or write never
// leaves a truncated artifact at path.
func WriteFile(path string, doc *Document) error {
	out, err := Render(doc)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".swaggen-*")
	if err != nil {
		return fmt.Errorf("swaggen: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(out); err != nil {
		tmp.Close()
		return fmt.Errorf("swaggen: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("swaggen: write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("swaggen: write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("swaggen: write %s: %w", path, err)
	}
	return nil
}

package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dave/jennifer/jen"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Render formats a jennifer file into Go source.
func Render(f *jen.File) ([]byte, error) {
	var buf bytes.Buffer

	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("rendering Go source: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteFile writes content to path, creating the parent directory if it
// doesn't exist.
func WriteFile(path string, content []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, content, filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}
